package service

import (
	"context"
	"strings"

	"github.com/Layan-Alghymah/Nexo/internal/models"
	"github.com/Layan-Alghymah/Nexo/internal/store"
)

const worklistLimit = 100

// Review is the admin decision step. It deliberately does not check that the
// proof is still in the submitted state: re-reviewing an already decided
// order is allowed and simply overwrites the status pair.
type Review struct {
	Store *store.Store
}

type ReviewResult struct {
	OrderID     string             `json:"order_id"`
	OrderStatus models.OrderStatus `json:"order_status"`
	ProofStatus models.ProofStatus `json:"proof_status"`
}

// Decide finalizes a payment proof. decision is case-insensitive
// approve/reject; a nil note leaves the proof's existing note untouched.
func (r *Review) Decide(ctx context.Context, orderID, decision string, note *string) (*ReviewResult, error) {
	decision = strings.ToLower(strings.TrimSpace(decision))
	if decision != "approve" && decision != "reject" {
		return nil, fail(ErrInvalidInput, "decision must be approve or reject")
	}

	orderStatus := models.OrderApproved
	proofStatus := models.ProofApproved
	if decision == "reject" {
		orderStatus = models.OrderRejected
		proofStatus = models.ProofRejected
	}

	order, err := r.Store.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fail(ErrNotFound, "Order not found")
	}

	proof, err := r.Store.GetProof(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if proof == nil {
		return nil, fail(ErrInvalidInput, "No payment proof to review")
	}

	if err := r.Store.ReviewProof(ctx, orderID, proofStatus, orderStatus, note); err != nil {
		return nil, err
	}

	return &ReviewResult{
		OrderID:     orderID,
		OrderStatus: orderStatus,
		ProofStatus: proofStatus,
	}, nil
}

// Worklist lists orders in the given status, newest first, capped at 100.
// An empty status defaults to proof_submitted, the queue awaiting review.
func (r *Review) Worklist(ctx context.Context, status string) ([]models.Order, error) {
	if status == "" {
		status = string(models.OrderProofSubmitted)
	}
	return r.Store.ListOrdersByStatus(ctx, status, worklistLimit)
}

// Stats surfaces the admin dashboard counters.
func (r *Review) Stats(ctx context.Context) (*store.DashboardStats, error) {
	return r.Store.GetDashboardStats(ctx)
}
