package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/Layan-Alghymah/Nexo/internal/models"
)

// ErrDuplicateProof reports that the order already has a payment proof. The
// UNIQUE index on payment_proofs.order_id raises it even when two submissions
// race past the application-level existence check.
var ErrDuplicateProof = errors.New("payment proof already exists for order")

// GetProof returns (nil, nil) when the order has no proof.
func (s *Store) GetProof(ctx context.Context, orderID string) (*models.PaymentProof, error) {
	query := `SELECT order_id, file_path, thumb_path, amount, note, status, created_at
	          FROM payment_proofs WHERE order_id = ?`
	row := s.DB.QueryRowContext(ctx, query, orderID)

	var p models.PaymentProof
	if err := row.Scan(&p.OrderID, &p.FilePath, &p.ThumbPath, &p.Amount, &p.Note, &p.Status, &p.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// CreateProof inserts the proof record and flips the order to
// proof_submitted in one transaction. The blob must already be written; a
// failure here leaves the blob orphaned, which is the accepted outcome of
// the blob-then-row commit.
func (s *Store) CreateProof(ctx context.Context, proof *models.PaymentProof) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO payment_proofs (order_id, file_path, thumb_path, amount, note, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, proof.OrderID, proof.FilePath, proof.ThumbPath, proof.Amount, proof.Note, proof.Status)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return ErrDuplicateProof
		}
		return err
	}

	_, err = tx.ExecContext(ctx, `UPDATE orders SET status = ? WHERE id = ?`,
		models.OrderProofSubmitted, proof.OrderID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// SetProofThumb records the thumbnail path after a successful side-car
// write. Best effort: submission has already succeeded by the time this runs.
func (s *Store) SetProofThumb(ctx context.Context, orderID, thumbPath string) error {
	_, err := s.DB.ExecContext(ctx, `UPDATE payment_proofs SET thumb_path = ? WHERE order_id = ?`,
		thumbPath, orderID)
	return err
}

// ReviewProof sets the proof and order statuses to the decided pair in one
// transaction. A nil note preserves the existing one (COALESCE).
func (s *Store) ReviewProof(ctx context.Context, orderID string, proofStatus models.ProofStatus, orderStatus models.OrderStatus, note *string) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		UPDATE payment_proofs SET status = ?, note = COALESCE(?, note) WHERE order_id = ?
	`, proofStatus, note, orderID)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `UPDATE orders SET status = ? WHERE id = ?`, orderStatus, orderID)
	if err != nil {
		return err
	}

	return tx.Commit()
}
