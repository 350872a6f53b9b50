// internal/handlers/checkout_test.go
package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
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

const testSession = "till-7"

func newCheckoutServer(t *testing.T) (*mocks.MockCheckoutService, *http.ServeMux) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockCheckoutService(ctrl)

	mux := http.NewServeMux()
	handlers.NewCheckoutHandler(service, helpers.TestLogger()).RegisterRoutes(mux)
	return service, mux
}

func doRequest(mux *http.ServeMux, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.Header.Set("X-Session-ID", testSession)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestCheckoutHandler_GetCart(t *testing.T) {
	service, mux := newCheckoutServer(t)

	service.EXPECT().CurrentLines(testSession).Return([]domain.LineItem{
		{ProductID: uuid.New(), Quantity: 2, UnitPrice: decimal.RequireFromString("1.80")},
	})
	service.EXPECT().CurrentTotal(testSession).Return(decimal.RequireFromString("3.60"))

	rec := doRequest(mux, http.MethodGet, "/api/v1/checkout/cart", "")

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Lines []domain.LineItem `json:"lines"`
		Total string            `json:"total"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp.Lines, 1)
	assert.Equal(t, "3.6", resp.Total)
}

func TestCheckoutHandler_AddItem(t *testing.T) {
	productID := uuid.New()

	t.Run("adds a unit", func(t *testing.T) {
		service, mux := newCheckoutServer(t)

		service.EXPECT().AddToCart(gomock.Any(), testSession, productID).Return(domain.LineItem{
			ProductID: productID,
			Quantity:  1,
			UnitPrice: decimal.RequireFromString("1.80"),
		}, nil)
		service.EXPECT().CurrentTotal(testSession).Return(decimal.RequireFromString("1.80"))

		body := fmt.Sprintf(`{"product_id":%q}`, productID)
		rec := doRequest(mux, http.MethodPost, "/api/v1/checkout/cart/items", body)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("out of stock maps to 409", func(t *testing.T) {
		service, mux := newCheckoutServer(t)

		service.EXPECT().AddToCart(gomock.Any(), testSession, productID).
			Return(domain.LineItem{}, domain.ErrOutOfStock)

		body := fmt.Sprintf(`{"product_id":%q}`, productID)
		rec := doRequest(mux, http.MethodPost, "/api/v1/checkout/cart/items", body)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("unknown product maps to 404", func(t *testing.T) {
		service, mux := newCheckoutServer(t)

		service.EXPECT().AddToCart(gomock.Any(), testSession, productID).
			Return(domain.LineItem{}, domain.ErrNotFound)

		body := fmt.Sprintf(`{"product_id":%q}`, productID)
		rec := doRequest(mux, http.MethodPost, "/api/v1/checkout/cart/items", body)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("missing product id", func(t *testing.T) {
		_, mux := newCheckoutServer(t)

		rec := doRequest(mux, http.MethodPost, "/api/v1/checkout/cart/items", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		_, mux := newCheckoutServer(t)

		rec := doRequest(mux, http.MethodPost, "/api/v1/checkout/cart/items", `{not json`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCheckoutHandler_RemoveItem(t *testing.T) {
	productID := uuid.New()

	t.Run("removes the whole line", func(t *testing.T) {
		service, mux := newCheckoutServer(t)

		service.EXPECT().RemoveLine(testSession, productID)
		service.EXPECT().CurrentLines(testSession).Return([]domain.LineItem{})
		service.EXPECT().CurrentTotal(testSession).Return(decimal.Zero)

		rec := doRequest(mux, http.MethodDelete, "/api/v1/checkout/cart/items/"+productID.String(), "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unit=true removes one unit", func(t *testing.T) {
		service, mux := newCheckoutServer(t)

		service.EXPECT().RemoveOneUnit(testSession, productID)
		service.EXPECT().CurrentLines(testSession).Return([]domain.LineItem{})
		service.EXPECT().CurrentTotal(testSession).Return(decimal.Zero)

		rec := doRequest(mux, http.MethodDelete,
			"/api/v1/checkout/cart/items/"+productID.String()+"?unit=true", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid product id", func(t *testing.T) {
		_, mux := newCheckoutServer(t)

		rec := doRequest(mux, http.MethodDelete, "/api/v1/checkout/cart/items/not-a-uuid", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCheckoutHandler_SetClient(t *testing.T) {
	t.Run("attributes the sale", func(t *testing.T) {
		service, mux := newCheckoutServer(t)
		clientID := uuid.New()

		service.EXPECT().SetClient(gomock.Any(), testSession, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, id *uuid.UUID) error {
				require.NotNil(t, id)
				assert.Equal(t, clientID, *id)
				return nil
			})

		body := fmt.Sprintf(`{"client_id":%q}`, clientID)
		rec := doRequest(mux, http.MethodPut, "/api/v1/checkout/client", body)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("null clears the attribution", func(t *testing.T) {
		service, mux := newCheckoutServer(t)

		service.EXPECT().SetClient(gomock.Any(), testSession, gomock.Nil()).Return(nil)

		rec := doRequest(mux, http.MethodPut, "/api/v1/checkout/client", `{"client_id":null}`)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("unknown client maps to 404", func(t *testing.T) {
		service, mux := newCheckoutServer(t)

		service.EXPECT().SetClient(gomock.Any(), testSession, gomock.Any()).
			Return(domain.ErrNotFound)

		body := fmt.Sprintf(`{"client_id":%q}`, uuid.New())
		rec := doRequest(mux, http.MethodPut, "/api/v1/checkout/client", body)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCheckoutHandler_Cancel(t *testing.T) {
	service, mux := newCheckoutServer(t)

	service.EXPECT().Cancel(testSession)

	rec := doRequest(mux, http.MethodDelete, "/api/v1/checkout/cart", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCheckoutHandler_Catalog(t *testing.T) {
	service, mux := newCheckoutServer(t)
	productID := uuid.New()

	service.EXPECT().RefreshCatalog(gomock.Any(), testSession).Return(&ports.ReconcileResult{
		Available: map[uuid.UUID]int{productID: 4},
		Lines:     []domain.LineItem{},
		Total:     decimal.Zero,
	}, nil)

	rec := doRequest(mux, http.MethodGet, "/api/v1/checkout/catalog", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCheckoutHandler_Finalize(t *testing.T) {
	t.Run("creates the bill", func(t *testing.T) {
		service, mux := newCheckoutServer(t)
		bill := &domain.Bill{ID: uuid.New(), Amount: decimal.RequireFromString("5.40")}

		service.EXPECT().FinalizeSale(gomock.Any(), testSession).Return(bill, nil)

		rec := doRequest(mux, http.MethodPost, "/api/v1/checkout/finalize", "")
		assert.Equal(t, http.StatusCreated, rec.Code)

		var got domain.Bill
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, bill.ID, got.ID)
	})

	t.Run("empty cart maps to 422", func(t *testing.T) {
		service, mux := newCheckoutServer(t)

		service.EXPECT().FinalizeSale(gomock.Any(), testSession).
			Return(nil, domain.ErrInvalidSale)

		rec := doRequest(mux, http.MethodPost, "/api/v1/checkout/finalize", "")
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestCheckoutHandler_DefaultSession(t *testing.T) {
	service, mux := newCheckoutServer(t)

	// Without the header every request lands on the shared default till.
	service.EXPECT().CurrentLines("default").Return([]domain.LineItem{})
	service.EXPECT().CurrentTotal("default").Return(decimal.Zero)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/checkout/cart", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
