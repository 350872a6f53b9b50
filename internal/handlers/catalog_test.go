// internal/handlers/catalog_test.go
package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/twinkerhq/pos-be/internal/core/domain"
	"github.com/twinkerhq/pos-be/internal/core/ports"
	"github.com/twinkerhq/pos-be/internal/handlers"
	"github.com/twinkerhq/pos-be/test/helpers"
	"github.com/twinkerhq/pos-be/test/mocks"
)

func newCatalogServer(t *testing.T) (*mocks.MockCatalogService, *http.ServeMux) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockCatalogService(ctrl)

	mux := http.NewServeMux()
	handlers.NewCatalogHandler(service, helpers.TestLogger()).RegisterRoutes(mux)
	return service, mux
}

func TestCatalogHandler_List(t *testing.T) {
	t.Run("lists every entry", func(t *testing.T) {
		service, mux := newCatalogServer(t)

		service.EXPECT().ListEntries(gomock.Any()).Return(helpers.CreateTestCatalog(3, 10), nil)

		rec := get(mux, "/api/v1/catalog")

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Entries []domain.CatalogEntry `json:"entries"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Len(t, resp.Entries, 3)
	})

	t.Run("q narrows by name", func(t *testing.T) {
		service, mux := newCatalogServer(t)

		service.EXPECT().Search(gomock.Any(), "espresso").Return(helpers.CreateTestCatalog(1, 10), nil)

		rec := get(mux, "/api/v1/catalog?q=espresso")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestCatalogHandler_Create(t *testing.T) {
	t.Run("creates an entry", func(t *testing.T) {
		service, mux := newCatalogServer(t)

		service.EXPECT().AddEntry(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, params ports.EntryParams) (*domain.CatalogEntry, error) {
				assert.Equal(t, "Flat White", params.Name)
				assert.Equal(t, 20, params.Stock)
				return &domain.CatalogEntry{
					Product: domain.Product{ID: uuid.New(), Name: params.Name, Price: params.Price},
					Stock:   params.Stock,
				}, nil
			})

		body := `{"name":"Flat White","price":"2.90","stock":20}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/catalog", strings.NewReader(body))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		_, mux := newCatalogServer(t)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/catalog", strings.NewReader("{"))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCatalogHandler_Update(t *testing.T) {
	t.Run("updates an entry", func(t *testing.T) {
		service, mux := newCatalogServer(t)
		productID := uuid.New()

		service.EXPECT().EditEntry(gomock.Any(), productID, gomock.Any()).Return(nil)

		body := `{"name":"Ristretto","price":"1.90","stock":5}`
		req := httptest.NewRequest(http.MethodPut, "/api/v1/catalog/"+productID.String(), strings.NewReader(body))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("unknown product maps to 404", func(t *testing.T) {
		service, mux := newCatalogServer(t)
		productID := uuid.New()

		service.EXPECT().EditEntry(gomock.Any(), productID, gomock.Any()).Return(domain.ErrNotFound)

		body := `{"name":"Ristretto","price":"1.90"}`
		req := httptest.NewRequest(http.MethodPut, "/api/v1/catalog/"+productID.String(), strings.NewReader(body))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCatalogHandler_Delete(t *testing.T) {
	service, mux := newCatalogServer(t)
	productID := uuid.New()

	service.EXPECT().DeleteEntry(gomock.Any(), productID).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/catalog/"+productID.String(), nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCatalogHandler_PriceDecoding(t *testing.T) {
	// Prices arrive as JSON strings and must decode losslessly.
	service, mux := newCatalogServer(t)

	service.EXPECT().AddEntry(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params ports.EntryParams) (*domain.CatalogEntry, error) {
			assert.True(t, params.Price.Equal(decimal.RequireFromString("2.90")))
			return &domain.CatalogEntry{}, nil
		})

	body := `{"name":"Flat White","price":"2.90","stock":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/catalog", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}
