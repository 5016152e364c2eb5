package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"

	"github.com/sposioggi/espositori-api/internal/domain"
)

// A4 portrait in millimeters. The layout is a fixed header followed by an
// accumulating vertical cursor, there is no layout engine.
const (
	pageWidth    = 210.0
	contentLeft  = 20.0
	contentWidth = 170.0
	lineHeight   = 7.0
	footerY      = 280.0

	maxGalleryImages = 2
	maxImageBytes    = 10 << 20
)

var whitespaceSeq = regexp.MustCompile(`\s+`)

// ExportError is a fatal document assembly failure. Per-image fetch
// problems never produce one, they only drop the affected image.
type ExportError struct {
	Err error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("pdf export failed: %v", e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// ExportFileName derives the download filename from the exhibitor name:
// lower-cased, whitespace runs replaced with hyphens, "-details.pdf" suffix.
func ExportFileName(name string) string {
	return whitespaceSeq.ReplaceAllString(strings.ToLower(name), "-") + "-details.pdf"
}

type ExportService struct {
	fieraRepo     FieraRepository
	categoriaRepo CategoriaRepository
	logoPath      string
	httpClient    *http.Client
}

func NewExportService(fieraRepo FieraRepository, categoriaRepo CategoriaRepository, logoPath string) *ExportService {
	return &ExportService{
		fieraRepo:     fieraRepo,
		categoriaRepo: categoriaRepo,
		logoPath:      logoPath,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Export renders a single-page profile document for one exhibitor and
// returns the PDF bytes. Images are fetched sequentially in a fixed order so
// assembly is deterministic; any individual image failure is logged and the
// image omitted.
func (s *ExportService) Export(ctx context.Context, espositore domain.Espositore) ([]byte, error) {
	fiere, err := s.fieraRepo.FindAll(ctx)
	if err != nil {
		return nil, &ExportError{Err: fmt.Errorf("s.fieraRepo.FindAll -> %w", err)}
	}

	categorie, err := s.categoriaRepo.FindAll(ctx)
	if err != nil {
		return nil, &ExportError{Err: fmt.Errorf("s.categoriaRepo.FindAll -> %w", err)}
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Sposi Oggi logo from the local asset path, skipped when unreadable.
	if logo, readErr := os.ReadFile(s.logoPath); readErr != nil {
		zap.L().Warn("organization logo not embedded", zap.Error(readErr))
	} else if _, ok := placeImage(pdf, "sposi-oggi-logo", logo, 10, 10, 40, 20); !ok {
		zap.L().Warn("organization logo not embedded", zap.String("path", s.logoPath))
	}

	pdf.SetFont("Helvetica", "B", 22)
	title := "Sposi Oggi Exhibitor"
	pdf.Text((pageWidth-pdf.GetStringWidth(title))/2, 20, title)

	pdf.SetFontSize(18)
	name := tr(espositore.Name)
	pdf.Text((pageWidth-pdf.GetStringWidth(name))/2, 30, name)

	pdf.SetDrawColor(233, 183, 206)
	pdf.SetLineWidth(0.5)
	pdf.Line(contentLeft, 35, pageWidth-contentLeft, 35)

	y := 45.0

	if espositore.LogoURL != "" {
		if data, fetchErr := s.fetchImage(ctx, espositore.LogoURL); fetchErr != nil {
			zap.L().Debug("exhibitor logo omitted", zap.String("url", espositore.LogoURL), zap.Error(fetchErr))
		} else if h, ok := placeImage(pdf, espositore.LogoURL, data, (pageWidth-40)/2, y, 40, 30); ok {
			y += h + lineHeight
		}
	}

	if labels := domain.CategorieLabels(espositore.Categories, categorie); len(labels) > 0 {
		pdf.SetFont("Helvetica", "I", 12)
		caption := tr(strings.Join(labels, ", "))
		pdf.Text((pageWidth-pdf.GetStringWidth(caption))/2, y, caption)
		y += 8
	}

	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(contentLeft, y, "Description:")
	descriptionLines := pdf.SplitText(tr(espositore.Description), contentWidth)
	for i, line := range descriptionLines {
		pdf.Text(contentLeft, y+10+float64(i)*lineHeight, line)
	}
	y += 10 + float64(len(descriptionLines))*lineHeight

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(contentLeft, y, "Contact Information")
	y += 10

	pdf.SetFont("Helvetica", "", 12)
	for _, contact := range []struct {
		label, value string
	}{
		{"Website", espositore.Website},
		{"Phone", espositore.PhoneNumber},
		{"Email", espositore.Email},
		{"Fair Location", espositore.FairLocation},
	} {
		if contact.value == "" {
			continue
		}

		pdf.Text(contentLeft, y, tr(contact.label+": "+contact.value))
		y += lineHeight
	}

	if labels := domain.FiereLabels(espositore.Fiere, fiere); len(labels) > 0 {
		y += 3
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Text(contentLeft, y, "Fairs")
		y += 8

		pdf.SetFont("Helvetica", "", 12)
		for _, label := range labels {
			pdf.Text(contentLeft+4, y, tr("• "+label))
			y += lineHeight
		}
	}

	if len(espositore.Images) > 0 {
		y += 3
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Text(contentLeft, y, "Gallery")
		y += 5

		placed := 0
		for _, url := range espositore.Images {
			if placed == maxGalleryImages {
				break
			}

			remaining := footerY - 5 - y
			if remaining <= 0 {
				break
			}

			data, fetchErr := s.fetchImage(ctx, url)
			if fetchErr != nil {
				zap.L().Debug("gallery image omitted", zap.String("url", url), zap.Error(fetchErr))
				continue
			}

			h, ok := placeImage(pdf, url, data, contentLeft, y, contentWidth, remaining)
			if !ok {
				continue
			}

			y += h + 5
			placed++
		}
	}

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 100, 100)
	generated := "Generated on " + time.Now().Format("02/01/2006")
	pdf.Text((pageWidth-pdf.GetStringWidth(generated))/2, footerY, generated)

	var buf bytes.Buffer
	if err = pdf.Output(&buf); err != nil {
		return nil, &ExportError{Err: err}
	}

	return buf.Bytes(), nil
}

// fetchImage probes the URL with a HEAD request, requires an image content
// type, then downloads the body.
func (s *ExportService) fetchImage(ctx context.Context, url string) ([]byte, error) {
	head, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}

	probe, err := s.httpClient.Do(head)
	if err != nil {
		return nil, fmt.Errorf("s.httpClient.Do -> %w", err)
	}
	probe.Body.Close()

	if probe.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("probe returned status %d", probe.StatusCode)
	}
	if contentType := probe.Header.Get("Content-Type"); !strings.HasPrefix(contentType, "image/") {
		return nil, fmt.Errorf("content type %q is not an image", contentType)
	}

	get, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}

	resp, err := s.httpClient.Do(get)
	if err != nil {
		return nil, fmt.Errorf("s.httpClient.Do -> %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll -> %w", err)
	}
	if len(data) > maxImageBytes {
		return nil, fmt.Errorf("image exceeds %d bytes", maxImageBytes)
	}

	return data, nil
}

// placeImage validates the bytes as an image, scales to the given width
// while keeping the aspect ratio inside maxH, and draws it. Returns the
// drawn height. Invalid image data is reported as not-placed, never as a
// document error. A full decode up front catches bytes that carry an intact
// header but a truncated or corrupt body.
func placeImage(pdf *fpdf.Fpdf, name string, data []byte, x, y, w, maxH float64) (float64, bool) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return 0, false
	}

	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return 0, false
	}

	h := w * float64(bounds.Dy()) / float64(bounds.Dx())
	if maxH > 0 && h > maxH {
		w = w * maxH / h
		h = maxH
	}

	opts := fpdf.ImageOptions{ImageType: format, ReadDpi: false}
	if !registerImage(pdf, name, opts, data) {
		return 0, false
	}

	pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")

	return h, true
}

// registerImage shields the document from fpdf's image decoders, which
// panic on malformed input and leave a sticky document error on failure.
// Either way the image is reported as not-placed and the document stays
// usable.
func registerImage(pdf *fpdf.Fpdf, name string, opts fpdf.ImageOptions, data []byte) (ok bool) {
	defer func() {
		if recover() != nil {
			if pdf.Err() {
				pdf.ClearError()
			}
			ok = false
		}
	}()

	info := pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	if info == nil || pdf.Err() {
		pdf.ClearError()

		return false
	}

	return true
}
