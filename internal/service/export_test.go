package service

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sposioggi/espositori-api/internal/domain"
)

func TestExportFileName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "lowercases and hyphenates",
			in:   "Studio Luce",
			want: "studio-luce-details.pdf",
		},
		{
			name: "collapses whitespace runs",
			in:   "Dolce   Banchetto\tCatering",
			want: "dolce-banchetto-catering-details.pdf",
		},
		{
			name: "single word",
			in:   "Fiorista",
			want: "fiorista-details.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExportFileName(tt.in))
		})
	}
}

type stubFieraRepo struct {
	fiere []domain.Fiera
}

func (r *stubFieraRepo) FindAll(_ context.Context) ([]domain.Fiera, error) {
	return r.fiere, nil
}

func (r *stubFieraRepo) Create(_ context.Context, f domain.Fiera) (domain.Fiera, error) {
	return f, nil
}

func (r *stubFieraRepo) Update(_ context.Context, f domain.Fiera) (domain.Fiera, error) {
	return f, nil
}

func (r *stubFieraRepo) Delete(_ context.Context, _ string) error {
	return nil
}

func pngBytes(t *testing.T) []byte {
	t.Helper()

	// Wide aspect so a full-width placement stays short and two gallery
	// images fit above the footer.
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 40, 4))))

	return buf.Bytes()
}

func newImageServer(t *testing.T, gets *atomic.Int32) *httptest.Server {
	t.Helper()

	data := pngBytes(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet && gets != nil {
			gets.Add(1)
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(data)
	}))
	t.Cleanup(server.Close)

	return server
}

func newExportService(t *testing.T, logoPath string) *ExportService {
	t.Helper()

	fiere := &stubFieraRepo{fiere: []domain.Fiera{
		{ID: "f-1", Nome: "Sposi Oggi Bari", Data: "10 e 11 gennaio 2025"},
	}}
	categorie := &stubCategoriaRepo{categorie: []domain.Categoria{
		{ID: "c-1", Nome: "Fotografia"},
	}}

	return NewExportService(fiere, categorie, logoPath)
}

func TestExportProducesPDF(t *testing.T) {
	server := newImageServer(t, nil)

	logoPath := filepath.Join(t.TempDir(), "logo.png")
	require.NoError(t, os.WriteFile(logoPath, pngBytes(t), 0o600))

	svc := newExportService(t, logoPath)

	espositore := domain.Espositore{
		ID:           "1",
		Name:         "Studio Luce",
		Description:  "Fotografi di matrimonio con oltre vent'anni di esperienza nel raccontare la giornata più importante della vostra vita.",
		LogoURL:      server.URL + "/logo.png",
		Website:      "https://studioluce.example.com",
		PhoneNumber:  "+39 080 1234567",
		Email:        "info@studioluce.example.com",
		FairLocation: "Padiglione A, Stand 12",
		Images:       []string{server.URL + "/a.png", server.URL + "/b.png"},
		Fiere:        []string{"f-1"},
		Categories:   []string{"c-1"},
	}

	document, err := svc.Export(context.Background(), espositore)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(document, []byte("%PDF-")), "output should be a PDF document")
}

func TestExportSurvivesUnreachableImages(t *testing.T) {
	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	dead.Close()

	svc := newExportService(t, filepath.Join(t.TempDir(), "missing-logo.png"))

	espositore := domain.Espositore{
		ID:          "1",
		Name:        "Studio Luce",
		Description: "Una descrizione sufficientemente lunga del servizio fotografico offerto agli sposi in occasione delle fiere del circuito.",
		LogoURL:     dead.URL + "/logo.png",
		Images:      []string{dead.URL + "/a.png"},
	}

	document, err := svc.Export(context.Background(), espositore)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(document, []byte("%PDF-")))
}

func TestExportSkipsNonImageContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>not an image</html>"))
	}))
	t.Cleanup(server.Close)

	svc := newExportService(t, "")

	espositore := domain.Espositore{
		ID:          "1",
		Name:        "Studio Luce",
		Description: "Una descrizione sufficientemente lunga del servizio fotografico offerto agli sposi in occasione delle fiere del circuito.",
		LogoURL:     server.URL + "/logo",
		Images:      []string{server.URL + "/gallery"},
	}

	document, err := svc.Export(context.Background(), espositore)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(document, []byte("%PDF-")))
}

func TestExportSkipsTruncatedImage(t *testing.T) {
	good := pngBytes(t)
	// Intact header, missing body: the kind of bytes a cut-off download
	// leaves behind.
	truncated := good[:40]

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		if strings.HasSuffix(r.URL.Path, "/truncated.png") {
			_, _ = w.Write(truncated)
			return
		}
		_, _ = w.Write(good)
	}))
	t.Cleanup(server.Close)

	svc := newExportService(t, "")

	espositore := domain.Espositore{
		ID:          "1",
		Name:        "Studio Luce",
		Description: "Una descrizione sufficientemente lunga del servizio fotografico offerto agli sposi in occasione delle fiere del circuito.",
		LogoURL:     server.URL + "/truncated.png",
		Images:      []string{server.URL + "/truncated.png", server.URL + "/good.png"},
	}

	document, err := svc.Export(context.Background(), espositore)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(document, []byte("%PDF-")))
}

func TestExportSkipsOversizedImage(t *testing.T) {
	oversized := make([]byte, maxImageBytes+1)
	copy(oversized, pngBytes(t))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(oversized)
	}))
	t.Cleanup(server.Close)

	svc := newExportService(t, "")

	espositore := domain.Espositore{
		ID:          "1",
		Name:        "Studio Luce",
		Description: "Una descrizione sufficientemente lunga del servizio fotografico offerto agli sposi in occasione delle fiere del circuito.",
		Images:      []string{server.URL + "/huge.png"},
	}

	document, err := svc.Export(context.Background(), espositore)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(document, []byte("%PDF-")))
}

func TestExportCapsGalleryAtTwoImages(t *testing.T) {
	var gets atomic.Int32
	server := newImageServer(t, &gets)

	svc := newExportService(t, "")

	espositore := domain.Espositore{
		ID:          "1",
		Name:        "Studio Luce",
		Description: "Una descrizione sufficientemente lunga del servizio fotografico offerto agli sposi in occasione delle fiere del circuito.",
		Images: []string{
			server.URL + "/a.png",
			server.URL + "/b.png",
			server.URL + "/c.png",
			server.URL + "/d.png",
		},
	}

	_, err := svc.Export(context.Background(), espositore)

	require.NoError(t, err)
	assert.Equal(t, int32(maxGalleryImages), gets.Load(), "only the first two gallery images should be downloaded")
}
