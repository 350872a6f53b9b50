// internal/core/services/billing_service_test.go
package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/twinkerhq/pos-be/internal/core/domain"
	"github.com/twinkerhq/pos-be/internal/core/ports"
	"github.com/twinkerhq/pos-be/internal/core/services"
	"github.com/twinkerhq/pos-be/test/helpers"
	"github.com/twinkerhq/pos-be/test/mocks"
)

type billingFixture struct {
	bills    *mocks.MockBillRepository
	sales    *mocks.MockSaleRepository
	products *mocks.MockProductRepository
	clients  *mocks.MockClientRepository
	service  *services.BillingService
}

func newBillingFixture(t *testing.T) *billingFixture {
	ctrl := gomock.NewController(t)

	f := &billingFixture{
		bills:    mocks.NewMockBillRepository(ctrl),
		sales:    mocks.NewMockSaleRepository(ctrl),
		products: mocks.NewMockProductRepository(ctrl),
		clients:  mocks.NewMockClientRepository(ctrl),
	}
	f.service = services.NewBillingService(f.bills, f.sales, f.products, f.clients, helpers.TestLogger())
	return f
}

func TestBillingService_ListHistory(t *testing.T) {
	ctx := context.Background()

	t.Run("joins bills with lines, products and clients", func(t *testing.T) {
		f := newBillingFixture(t)
		product := helpers.CreateTestProduct()
		client := helpers.CreateTestClient()

		bill := helpers.CreateTestBill("3.60", time.Now())
		bill.ClientID = &client.ID

		f.bills.EXPECT().List(ctx, ports.BillFilter{}).Return([]domain.Bill{bill}, nil)
		f.products.EXPECT().ListAll(ctx).Return([]domain.Product{*product}, nil)
		f.sales.EXPECT().ListByBillID(ctx, bill.ID).Return([]domain.Sale{
			{ID: uuid.New(), BillID: bill.ID, ProductID: product.ID, Quantity: 2, UnitPrice: product.Price},
		}, nil)
		f.clients.EXPECT().FindByID(ctx, client.ID).Return(client, nil)

		entries, err := f.service.ListHistory(ctx, ports.BillFilter{})

		require.NoError(t, err)
		require.Len(t, entries, 1)
		require.Len(t, entries[0].Lines, 1)
		require.NotNil(t, entries[0].Lines[0].Product)
		assert.Equal(t, product.Name, entries[0].Lines[0].Product.Name)
		require.NotNil(t, entries[0].Client)
		assert.Equal(t, client.Name, entries[0].Client.Name)
	})

	t.Run("deleted product leaves a nil line slot", func(t *testing.T) {
		f := newBillingFixture(t)
		bill := helpers.CreateTestBill("1.80", time.Now())

		f.bills.EXPECT().List(ctx, ports.BillFilter{}).Return([]domain.Bill{bill}, nil)
		f.products.EXPECT().ListAll(ctx).Return([]domain.Product{}, nil)
		f.sales.EXPECT().ListByBillID(ctx, bill.ID).Return([]domain.Sale{
			{ID: uuid.New(), BillID: bill.ID, ProductID: uuid.New(), Quantity: 1, UnitPrice: decimal.RequireFromString("1.80")},
		}, nil)

		entries, err := f.service.ListHistory(ctx, ports.BillFilter{})

		require.NoError(t, err)
		require.Len(t, entries, 1)
		require.Len(t, entries[0].Lines, 1)
		assert.Nil(t, entries[0].Lines[0].Product)
		assert.Nil(t, entries[0].Client)
	})

	t.Run("deleted client resolves to nil and is cached", func(t *testing.T) {
		f := newBillingFixture(t)
		clientID := uuid.New()

		first := helpers.CreateTestBill("1.00", time.Now())
		second := helpers.CreateTestBill("2.00", time.Now())
		first.ClientID = &clientID
		second.ClientID = &clientID

		f.bills.EXPECT().List(ctx, ports.BillFilter{}).Return([]domain.Bill{first, second}, nil)
		f.products.EXPECT().ListAll(ctx).Return([]domain.Product{}, nil)
		f.sales.EXPECT().ListByBillID(ctx, first.ID).Return([]domain.Sale{}, nil)
		f.sales.EXPECT().ListByBillID(ctx, second.ID).Return([]domain.Sale{}, nil)
		// Only one lookup for the two bills sharing the client.
		f.clients.EXPECT().FindByID(ctx, clientID).Return(nil, nil).Times(1)

		entries, err := f.service.ListHistory(ctx, ports.BillFilter{})

		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Nil(t, entries[0].Client)
		assert.Nil(t, entries[1].Client)
	})

	t.Run("filter is passed through", func(t *testing.T) {
		f := newBillingFixture(t)
		from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		filter := ports.BillFilter{From: &from, Limit: 50}

		f.bills.EXPECT().List(ctx, filter).Return([]domain.Bill{}, nil)
		f.products.EXPECT().ListAll(ctx).Return([]domain.Product{}, nil)

		entries, err := f.service.ListHistory(ctx, filter)

		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("repository failure surfaces", func(t *testing.T) {
		f := newBillingFixture(t)

		f.bills.EXPECT().List(ctx, ports.BillFilter{}).Return(nil, errors.New("timeout"))

		_, err := f.service.ListHistory(ctx, ports.BillFilter{})
		assert.ErrorContains(t, err, "failed to list bills")
	})
}

func TestBillingService_GetBill(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the joined entry", func(t *testing.T) {
		f := newBillingFixture(t)
		product := helpers.CreateTestProduct()
		bill := helpers.CreateTestBill("1.80", time.Now())

		f.bills.EXPECT().FindByID(ctx, bill.ID).Return(&bill, nil)
		f.products.EXPECT().ListAll(ctx).Return([]domain.Product{*product}, nil)
		f.sales.EXPECT().ListByBillID(ctx, bill.ID).Return([]domain.Sale{
			{ID: uuid.New(), BillID: bill.ID, ProductID: product.ID, Quantity: 1, UnitPrice: product.Price},
		}, nil)

		entry, err := f.service.GetBill(ctx, bill.ID)

		require.NoError(t, err)
		require.NotNil(t, entry)
		assert.Equal(t, bill.ID, entry.Bill.ID)
		require.Len(t, entry.Lines, 1)
	})

	t.Run("absent bill yields nil, nil", func(t *testing.T) {
		f := newBillingFixture(t)
		id := uuid.New()

		f.bills.EXPECT().FindByID(ctx, id).Return(nil, nil)

		entry, err := f.service.GetBill(ctx, id)

		assert.NoError(t, err)
		assert.Nil(t, entry)
	})
}
