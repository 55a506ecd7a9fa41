package service

import (
	"context"
	"testing"

	"github.com/Layan-Alghymah/Nexo/internal/models"
	"github.com/Layan-Alghymah/Nexo/internal/store"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.NewStore(":memory:")
	require.NoError(t, err)
	// Every new pool connection would get its own empty in-memory database.
	st.DB.SetMaxOpenConns(1)
	require.NoError(t, st.InitSchema())
	t.Cleanup(func() { st.Close() })
	return st
}

func seedProduct(t *testing.T, st *store.Store, name, price string, active bool) string {
	t.Helper()
	product := &models.Product{
		ID:     uuid.NewString(),
		Name:   name,
		Price:  decimal.RequireFromString(price),
		Active: active,
	}
	require.NoError(t, st.CreateProduct(context.Background(), product))
	return product.ID
}

// placeOrder creates a one-line order for the given product and returns its id.
func placeOrder(t *testing.T, st *store.Store, productID string) string {
	t.Helper()
	ledger := &Ledger{Store: st}
	result, err := ledger.CreateOrder(context.Background(), CreateOrderInput{
		CustomerName:  "Layan",
		CustomerPhone: "0500000000",
		AddressText:   "Riyadh",
		Items:         []OrderItemInput{{ProductID: productID, Quantity: 1}},
	})
	require.NoError(t, err)
	return result.OrderID
}
