package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the order lifecycle state. Legal transitions:
// pending_payment -> proof_submitted -> approved | rejected.
type OrderStatus string

const (
	OrderPendingPayment OrderStatus = "pending_payment"
	OrderProofSubmitted OrderStatus = "proof_submitted"
	OrderApproved       OrderStatus = "approved"
	OrderRejected       OrderStatus = "rejected"
)

// ProofStatus mirrors the order state machine for the proof record:
// submitted -> approved | rejected.
type ProofStatus string

const (
	ProofSubmitted ProofStatus = "submitted"
	ProofApproved  ProofStatus = "approved"
	ProofRejected  ProofStatus = "rejected"
)

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
}

type Order struct {
	ID            string          `json:"id"`
	Status        OrderStatus     `json:"status"`
	Total         decimal.Decimal `json:"total"` // frozen at creation, never recomputed
	CustomerName  string          `json:"customer_name"`
	CustomerPhone string          `json:"customer_phone"`
	AddressText   string          `json:"address_text"`
	CreatedAt     time.Time       `json:"created_at"`
}

type OrderItem struct {
	ID        string          `json:"id"`
	OrderID   string          `json:"order_id"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"qty"`
	Price     decimal.Decimal `json:"price"` // unit price captured at order creation
}

type PaymentProof struct {
	OrderID   string              `json:"order_id"`
	FilePath  string              `json:"file_path"`
	ThumbPath string              `json:"thumb_path,omitempty"`
	Amount    decimal.NullDecimal `json:"amount"` // submitter's claim, not verified
	Note      string              `json:"note,omitempty"`
	Status    ProofStatus         `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
}
