package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sposioggi/espositori-api/internal/domain"
	"github.com/sposioggi/espositori-api/internal/service"
)

type stubEspositoreService struct {
	listCategoriaID string
	listFiereIDs    []string
	legacyCreated   bool
	legacyUpdated   bool

	espositori map[string]domain.Espositore
}

func (s *stubEspositoreService) ListEspositori(_ context.Context, categoriaID string, fiereIDs []string) ([]domain.Espositore, error) {
	s.listCategoriaID = categoriaID
	s.listFiereIDs = fiereIDs

	all := make([]domain.Espositore, 0, len(s.espositori))
	for _, e := range s.espositori {
		all = append(all, e)
	}
	return all, nil
}

func (s *stubEspositoreService) GetEspositore(_ context.Context, id string) (domain.Espositore, error) {
	e, ok := s.espositori[id]
	if !ok {
		return domain.Espositore{}, service.ErrEspositoreNotFound
	}
	return e, nil
}

func (s *stubEspositoreService) CreateEspositore(_ context.Context, e domain.Espositore) (domain.Espositore, error) {
	e.ID = "created"
	return e, nil
}

func (s *stubEspositoreService) CreateFromLegacy(_ context.Context, legacy domain.LegacyEspositore) (domain.Espositore, error) {
	s.legacyCreated = true
	return domain.Espositore{ID: "created", Name: legacy.Name}, nil
}

func (s *stubEspositoreService) UpdateEspositore(_ context.Context, e domain.Espositore) (domain.Espositore, error) {
	if _, ok := s.espositori[e.ID]; !ok {
		return domain.Espositore{}, service.ErrEspositoreNotFound
	}
	return e, nil
}

func (s *stubEspositoreService) UpdateFromLegacy(_ context.Context, legacy domain.LegacyEspositore) (domain.Espositore, error) {
	if _, ok := s.espositori[legacy.ID]; !ok {
		return domain.Espositore{}, service.ErrEspositoreNotFound
	}
	s.legacyUpdated = true
	return domain.Espositore{ID: legacy.ID, Name: legacy.Name}, nil
}

func (s *stubEspositoreService) DeleteEspositore(_ context.Context, _ string) error {
	return nil
}

func (s *stubEspositoreService) AddImage(_ context.Context, id, url string) (domain.Espositore, error) {
	e, ok := s.espositori[id]
	if !ok {
		return domain.Espositore{}, service.ErrEspositoreNotFound
	}
	e.AddImage(url)
	return e, nil
}

func (s *stubEspositoreService) RemoveImage(_ context.Context, id string, index int) (domain.Espositore, error) {
	e, ok := s.espositori[id]
	if !ok {
		return domain.Espositore{}, service.ErrEspositoreNotFound
	}
	if err := e.RemoveImage(index); err != nil {
		return domain.Espositore{}, err
	}
	return e, nil
}

type stubExportService struct{}

func (s *stubExportService) Export(_ context.Context, _ domain.Espositore) ([]byte, error) {
	return []byte("%PDF-1.3 stub"), nil
}

func newEspositoreRouter(svc *stubEspositoreService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewEspositoreHandler(svc, &stubExportService{})

	router := gin.New()
	router.GET("/espositori", handler.HandleListEspositori)
	router.GET("/espositori/:espositoreID", handler.HandleGetEspositore)
	router.GET("/espositori/:espositoreID/pdf", handler.HandleExportPDF)
	router.POST("/espositori", handler.HandleCreateEspositore)
	router.PUT("/espositori/:espositoreID", handler.HandleUpdateEspositore)
	router.DELETE("/espositori/:espositoreID", handler.HandleDeleteEspositore)
	router.POST("/espositori/:espositoreID/images", handler.HandleAddImage)
	router.DELETE("/espositori/:espositoreID/images/:index", handler.HandleRemoveImage)

	return router
}

func TestHandleListEspositoriQueryParsing(t *testing.T) {
	svc := &stubEspositoreService{espositori: map[string]domain.Espositore{}}
	router := newEspositoreRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/espositori?categoria=c-1&fiere=f-1,f-2,%20f-3", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "c-1", svc.listCategoriaID)
	assert.Equal(t, []string{"f-1", "f-2", "f-3"}, svc.listFiereIDs)
}

func TestHandleListEspositoriWithoutFilters(t *testing.T) {
	svc := &stubEspositoreService{espositori: map[string]domain.Espositore{}}
	router := newEspositoreRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/espositori", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Empty(t, svc.listCategoriaID)
	assert.Nil(t, svc.listFiereIDs)
}

func TestHandleGetEspositore(t *testing.T) {
	svc := &stubEspositoreService{espositori: map[string]domain.Espositore{
		"1": {ID: "1", Name: "Studio Luce"},
	}}
	router := newEspositoreRouter(svc)

	t.Run("found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/espositori/1", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), "Studio Luce")
	})

	t.Run("unknown id is a 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/espositori/missing", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusNotFound, resp.Code)
	})
}

func TestHandleExportPDF(t *testing.T) {
	svc := &stubEspositoreService{espositori: map[string]domain.Espositore{
		"1": {ID: "1", Name: "Studio  Luce"},
	}}
	router := newEspositoreRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/espositori/1/pdf", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "application/pdf", resp.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="studio-luce-details.pdf"`, resp.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(resp.Body.String(), "%PDF-"))
}

func TestHandleCreateEspositore(t *testing.T) {
	validBody := `{
		"name": "Studio Luce",
		"description": "` + strings.Repeat("d", 100) + `",
		"logoUrl": "https://example.com/logo.png"
	}`

	t.Run("valid payload is created", func(t *testing.T) {
		svc := &stubEspositoreService{espositori: map[string]domain.Espositore{}}
		router := newEspositoreRouter(svc)

		req := httptest.NewRequest(http.MethodPost, "/espositori", strings.NewReader(validBody))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusCreated, resp.Code)
		assert.False(t, svc.legacyCreated)
	})

	t.Run("legacy single-category payload takes the ingest path", func(t *testing.T) {
		svc := &stubEspositoreService{espositori: map[string]domain.Espositore{}}
		router := newEspositoreRouter(svc)

		body := strings.Replace(validBody, `"name"`, `"category": "Fotografia", "name"`, 1)
		req := httptest.NewRequest(http.MethodPost, "/espositori", strings.NewReader(body))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusCreated, resp.Code)
		assert.True(t, svc.legacyCreated)
	})

	t.Run("short description is rejected", func(t *testing.T) {
		svc := &stubEspositoreService{espositori: map[string]domain.Espositore{}}
		router := newEspositoreRouter(svc)

		body := `{"name": "Studio Luce", "description": "troppo corta", "logoUrl": "https://example.com/logo.png"}`
		req := httptest.NewRequest(http.MethodPost, "/espositori", strings.NewReader(body))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("malformed JSON is rejected", func(t *testing.T) {
		svc := &stubEspositoreService{espositori: map[string]domain.Espositore{}}
		router := newEspositoreRouter(svc)

		req := httptest.NewRequest(http.MethodPost, "/espositori", strings.NewReader("{not json"))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})
}

func TestHandleUpdateEspositore(t *testing.T) {
	validBody := `{
		"name": "Studio Luce",
		"description": "` + strings.Repeat("d", 100) + `",
		"logoUrl": "https://example.com/logo.png"
	}`

	t.Run("canonical payload replaces the record", func(t *testing.T) {
		svc := &stubEspositoreService{espositori: map[string]domain.Espositore{
			"1": {ID: "1", Name: "Studio Luce"},
		}}
		router := newEspositoreRouter(svc)

		req := httptest.NewRequest(http.MethodPut, "/espositori/1", strings.NewReader(validBody))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.False(t, svc.legacyUpdated)
	})

	t.Run("legacy single-category payload takes the ingest path", func(t *testing.T) {
		svc := &stubEspositoreService{espositori: map[string]domain.Espositore{
			"1": {ID: "1", Name: "Studio Luce"},
		}}
		router := newEspositoreRouter(svc)

		body := strings.Replace(validBody, `"name"`, `"category": "Fotografia", "name"`, 1)
		req := httptest.NewRequest(http.MethodPut, "/espositori/1", strings.NewReader(body))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.True(t, svc.legacyUpdated)
	})

	t.Run("unknown id is a 404", func(t *testing.T) {
		svc := &stubEspositoreService{espositori: map[string]domain.Espositore{}}
		router := newEspositoreRouter(svc)

		req := httptest.NewRequest(http.MethodPut, "/espositori/missing", strings.NewReader(validBody))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusNotFound, resp.Code)
	})
}

func TestHandleRemoveImage(t *testing.T) {
	svc := &stubEspositoreService{espositori: map[string]domain.Espositore{
		"1": {ID: "1", Images: []string{"a.jpg"}},
	}}
	router := newEspositoreRouter(svc)

	t.Run("valid index", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/espositori/1/images/0", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)
	})

	t.Run("non-numeric index is a 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/espositori/1/images/first", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("out of range index is a 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/espositori/1/images/7", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})
}

func TestHandleDeleteEspositore(t *testing.T) {
	svc := &stubEspositoreService{espositori: map[string]domain.Espositore{}}
	router := newEspositoreRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/espositori/anything", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNoContent, resp.Code)
}
