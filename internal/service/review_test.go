package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Layan-Alghymah/Nexo/internal/blob"
	"github.com/Layan-Alghymah/Nexo/internal/models"
	"github.com/Layan-Alghymah/Nexo/internal/store"
)

func setupReview(t *testing.T) (*Review, *store.Store, string) {
	t.Helper()
	st := newTestStore(t)
	productID := seedProduct(t, st, "Yarn bundle", "12.50", true)
	orderID := placeOrder(t, st, productID)

	intake := &ProofIntake{Store: st, Blobs: blob.NewMemory()}
	in := pdfInput(orderID)
	note := "paid via bank transfer"
	in.Note = &note
	_, err := intake.Submit(context.Background(), in)
	require.NoError(t, err)

	return &Review{Store: st}, st, orderID
}

func TestReviewApprove(t *testing.T) {
	review, st, orderID := setupReview(t)

	result, err := review.Decide(context.Background(), orderID, "approve", nil)
	require.NoError(t, err)
	assert.Equal(t, models.OrderApproved, result.OrderStatus)
	assert.Equal(t, models.ProofApproved, result.ProofStatus)

	// Both rows moved together.
	ledger := &Ledger{Store: st}
	detail, err := ledger.GetOrder(context.Background(), orderID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderApproved, detail.Order.Status)
	require.NotNil(t, detail.Proof)
	assert.Equal(t, models.ProofApproved, detail.Proof.Status)
}

func TestReviewReject(t *testing.T) {
	review, st, orderID := setupReview(t)

	result, err := review.Decide(context.Background(), orderID, "reject", nil)
	require.NoError(t, err)
	assert.Equal(t, models.OrderRejected, result.OrderStatus)
	assert.Equal(t, models.ProofRejected, result.ProofStatus)

	order, err := st.GetOrder(context.Background(), orderID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderRejected, order.Status)
}

func TestReviewNormalizesDecision(t *testing.T) {
	review, _, orderID := setupReview(t)

	result, err := review.Decide(context.Background(), orderID, "  Approve ", nil)
	require.NoError(t, err)
	assert.Equal(t, models.OrderApproved, result.OrderStatus)
}

func TestReviewInvalidDecision(t *testing.T) {
	review, st, orderID := setupReview(t)

	_, err := review.Decide(context.Background(), orderID, "maybe", nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	order, err := st.GetOrder(context.Background(), orderID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderProofSubmitted, order.Status)
}

func TestReviewUnknownOrder(t *testing.T) {
	review, _, _ := setupReview(t)

	_, err := review.Decide(context.Background(), "no-such-order", "approve", nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReviewWithoutProof(t *testing.T) {
	st := newTestStore(t)
	productID := seedProduct(t, st, "Yarn bundle", "12.50", true)
	orderID := placeOrder(t, st, productID)
	review := &Review{Store: st}

	_, err := review.Decide(context.Background(), orderID, "approve", nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	order, err := st.GetOrder(context.Background(), orderID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderPendingPayment, order.Status, "status untouched without a proof")
}

func TestReviewNoteCoalesce(t *testing.T) {
	review, st, orderID := setupReview(t)

	// nil note preserves what the submitter wrote
	_, err := review.Decide(context.Background(), orderID, "approve", nil)
	require.NoError(t, err)
	proof, err := st.GetProof(context.Background(), orderID)
	require.NoError(t, err)
	assert.Equal(t, "paid via bank transfer", proof.Note)

	// Re-review is permitted and a supplied note replaces the old one.
	newNote := "amount does not match the order"
	_, err = review.Decide(context.Background(), orderID, "reject", &newNote)
	require.NoError(t, err)
	proof, err = st.GetProof(context.Background(), orderID)
	require.NoError(t, err)
	assert.Equal(t, newNote, proof.Note)
	assert.Equal(t, models.ProofRejected, proof.Status)
}

func TestWorklist(t *testing.T) {
	st := newTestStore(t)
	productID := seedProduct(t, st, "Yarn bundle", "12.50", true)
	review := &Review{Store: st}
	intake := &ProofIntake{Store: st, Blobs: blob.NewMemory()}

	withProofA := placeOrder(t, st, productID)
	withProofB := placeOrder(t, st, productID)
	pendingOnly := placeOrder(t, st, productID)
	for _, id := range []string{withProofA, withProofB} {
		_, err := intake.Submit(context.Background(), pdfInput(id))
		require.NoError(t, err)
	}

	submitted, err := review.Worklist(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, submitted, 2, "default worklist is the proof_submitted queue")
	ids := []string{submitted[0].ID, submitted[1].ID}
	assert.ElementsMatch(t, []string{withProofA, withProofB}, ids)

	pending, err := review.Worklist(context.Background(), string(models.OrderPendingPayment))
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, pendingOnly, pending[0].ID)
}

func TestWorklistCapAndOrdering(t *testing.T) {
	st := newTestStore(t)
	review := &Review{Store: st}

	// Seed well past the cap, with strictly increasing timestamps so the
	// ordering assertion cannot tie on same-second CURRENT_TIMESTAMP values.
	for i := 0; i < 105; i++ {
		_, err := st.DB.Exec(`
			INSERT INTO orders (id, status, total, customer_name, customer_phone, address_text, created_at)
			VALUES (?, 'proof_submitted', '10', 'Layan', '0500000000', 'Riyadh', datetime('2024-01-01 00:00:00', ?))
		`, fmt.Sprintf("order-%03d", i), fmt.Sprintf("+%d minutes", i))
		require.NoError(t, err)
	}

	orders, err := review.Worklist(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, orders, 100, "worklist is capped at 100")

	// Newest first: the five oldest fall off the end.
	assert.Equal(t, "order-104", orders[0].ID)
	assert.Equal(t, "order-005", orders[99].ID)
	for i := 1; i < len(orders); i++ {
		assert.True(t, !orders[i].CreatedAt.After(orders[i-1].CreatedAt),
			"orders[%d] is newer than orders[%d]", i, i-1)
	}
}

func TestStats(t *testing.T) {
	st := newTestStore(t)
	productID := seedProduct(t, st, "Yarn bundle", "12.50", true)
	review := &Review{Store: st}
	intake := &ProofIntake{Store: st, Blobs: blob.NewMemory()}

	placeOrder(t, st, productID)
	submitted := placeOrder(t, st, productID)
	_, err := intake.Submit(context.Background(), pdfInput(submitted))
	require.NoError(t, err)

	stats, err := review.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalProducts)
	assert.Equal(t, 2, stats.TotalOrders)
	assert.Equal(t, 1, stats.OrdersByStatus[string(models.OrderPendingPayment)])
	assert.Equal(t, 1, stats.OrdersByStatus[string(models.OrderProofSubmitted)])
}
