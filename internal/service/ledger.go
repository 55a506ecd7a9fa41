package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Layan-Alghymah/Nexo/internal/models"
	"github.com/Layan-Alghymah/Nexo/internal/store"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ledger owns order creation and reads. Totals are computed once here from
// server-side prices; nothing downstream ever recomputes or trusts a
// client-supplied amount.
type Ledger struct {
	Store *store.Store
}

type OrderItemInput struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"qty"`
}

type CreateOrderInput struct {
	CustomerName  string           `json:"customer_name"`
	CustomerPhone string           `json:"customer_phone"`
	AddressText   string           `json:"address_text"`
	Items         []OrderItemInput `json:"items"`
}

type CreateOrderResult struct {
	OrderID string             `json:"order_id"`
	Status  models.OrderStatus `json:"status"`
	Total   decimal.Decimal    `json:"total"`
}

type OrderDetail struct {
	Order models.Order         `json:"order"`
	Items []models.OrderItem   `json:"items"`
	Proof *models.PaymentProof `json:"payment_proof"` // nil when none submitted yet
}

// CreateOrder prices and persists a new order.
//
// Every requested product must be in the active set; the error for a partial
// miss names all missing ids, not just the first. The total is summed over
// the original item list, so a product repeated across two entries
// contributes twice at the same captured unit price.
func (l *Ledger) CreateOrder(ctx context.Context, in CreateOrderInput) (*CreateOrderResult, error) {
	if len(in.Items) == 0 {
		return nil, fail(ErrInvalidInput, "Empty items")
	}
	for _, item := range in.Items {
		if item.Quantity < 1 {
			return nil, fail(ErrInvalidInput, fmt.Sprintf("qty must be >= 1 for product %s", item.ProductID))
		}
	}

	// Dedupe for the price lookup, preserving first-seen order so the
	// missing-ids message is deterministic.
	seen := make(map[string]bool)
	var productIDs []string
	for _, item := range in.Items {
		id := strings.TrimSpace(item.ProductID)
		if !seen[id] {
			seen[id] = true
			productIDs = append(productIDs, id)
		}
	}

	prices, err := l.Store.ActivePrices(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	if len(prices) != len(productIDs) {
		var missing []string
		for _, id := range productIDs {
			if _, ok := prices[id]; !ok {
				missing = append(missing, id)
			}
		}
		return nil, fail(ErrInvalidInput, "Products not found: "+strings.Join(missing, ", "))
	}

	// The order id is allocated before any persistence so the items can
	// reference it.
	orderID := uuid.NewString()

	total := decimal.Zero
	items := make([]models.OrderItem, 0, len(in.Items))
	for _, item := range in.Items {
		id := strings.TrimSpace(item.ProductID)
		price := prices[id]
		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		items = append(items, models.OrderItem{
			ID:        uuid.NewString(),
			OrderID:   orderID,
			ProductID: id,
			Quantity:  item.Quantity,
			Price:     price,
		})
	}

	order := &models.Order{
		ID:            orderID,
		Status:        models.OrderPendingPayment,
		Total:         total,
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		AddressText:   in.AddressText,
	}

	if err := l.Store.CreateOrder(ctx, order, items); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return &CreateOrderResult{
		OrderID: orderID,
		Status:  models.OrderPendingPayment,
		Total:   total,
	}, nil
}

// GetOrder returns the order, its full item list, and the proof record if
// one exists. The proof field is always present in the shape, nil meaning
// "not submitted yet".
func (l *Ledger) GetOrder(ctx context.Context, id string) (*OrderDetail, error) {
	order, err := l.Store.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fail(ErrNotFound, "Order not found")
	}

	items, err := l.Store.GetOrderItems(ctx, id)
	if err != nil {
		return nil, err
	}

	proof, err := l.Store.GetProof(ctx, id)
	if err != nil {
		return nil, err
	}

	return &OrderDetail{Order: *order, Items: items, Proof: proof}, nil
}
