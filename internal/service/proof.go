package service

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/Layan-Alghymah/Nexo/internal/blob"
	"github.com/Layan-Alghymah/Nexo/internal/models"
	"github.com/Layan-Alghymah/Nexo/internal/store"
	"github.com/google/uuid"
	"github.com/nfnt/resize"
	"github.com/shopspring/decimal"
)

// MaxProofBytes caps uploaded payment proofs at 5 MiB.
const MaxProofBytes = 5 << 20

const thumbWidth = 320

// extByContentType doubles as the allowlist of accepted upload types.
var extByContentType = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"application/pdf": ".pdf",
}

var allowedExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".pdf":  true,
}

// ProofIntake validates and records payment proofs. The blob write happens
// before the relational commit; a blob orphaned by a later transaction
// failure is accepted and recoverable by path (it embeds the order id).
type ProofIntake struct {
	Store *store.Store
	Blobs blob.Store
}

type SubmitProofInput struct {
	OrderID     string
	Data        []byte
	ContentType string
	Filename    string              // user-supplied, only consulted for the extension
	Amount      decimal.NullDecimal // optional declared amount
	Note        *string
}

type SubmitProofResult struct {
	OrderID  string             `json:"order_id"`
	Status   models.OrderStatus `json:"status"`
	FilePath string             `json:"file_path"`
}

// Submit runs the validation chain, writes the blob, then records the proof
// and flips the order status in one transaction. Every rejection happens
// before any persistent effect.
func (p *ProofIntake) Submit(ctx context.Context, in SubmitProofInput) (*SubmitProofResult, error) {
	if _, ok := extByContentType[in.ContentType]; !ok {
		return nil, fail(ErrUnsupported, "Unsupported file type (jpg/png/pdf only)")
	}
	if len(in.Data) > MaxProofBytes {
		return nil, fail(ErrTooLarge, "File too large (max 5MB)")
	}

	order, err := p.Store.GetOrder(ctx, in.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fail(ErrNotFound, "Order not found")
	}

	existing, err := p.Store.GetProof(ctx, in.OrderID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fail(ErrConflict, "Payment proof already submitted")
	}

	token := newToken()
	name := token + safeExt(in.Filename, in.ContentType)
	path := in.OrderID + "/" + name

	if err := p.Blobs.Put(ctx, path, in.Data, in.ContentType); err != nil {
		return nil, fail(ErrUploadFailed, "Upload failed: "+err.Error())
	}

	note := ""
	if in.Note != nil {
		note = *in.Note
	}
	proof := &models.PaymentProof{
		OrderID:  in.OrderID,
		FilePath: path,
		Amount:   in.Amount,
		Note:     note,
		Status:   models.ProofSubmitted,
	}
	if err := p.Store.CreateProof(ctx, proof); err != nil {
		if errors.Is(err, store.ErrDuplicateProof) {
			// Lost a race with a concurrent submission; our blob stays
			// orphaned, which the design accepts.
			return nil, fail(ErrConflict, "Payment proof already submitted")
		}
		return nil, fmt.Errorf("failed to record payment proof: %w", err)
	}

	p.writeThumbnail(ctx, in, token)

	return &SubmitProofResult{
		OrderID:  in.OrderID,
		Status:   models.OrderProofSubmitted,
		FilePath: path,
	}, nil
}

// writeThumbnail generates a small jpeg side-car for image proofs so the
// admin worklist can preview them. Strictly best effort: the submission is
// already committed, so any failure is logged and dropped.
func (p *ProofIntake) writeThumbnail(ctx context.Context, in SubmitProofInput, token string) {
	var (
		img image.Image
		err error
	)
	switch in.ContentType {
	case "image/jpeg":
		img, err = jpeg.Decode(bytes.NewReader(in.Data))
	case "image/png":
		img, err = png.Decode(bytes.NewReader(in.Data))
	default:
		return
	}
	if err != nil {
		slog.Warn("Proof image not decodable, skipping thumbnail", "order_id", in.OrderID, "error", err)
		return
	}

	thumb := resize.Resize(thumbWidth, 0, img, resize.Lanczos3)
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: 80}); err != nil {
		slog.Warn("Failed to encode proof thumbnail", "order_id", in.OrderID, "error", err)
		return
	}

	thumbPath := in.OrderID + "/thumb_" + token + ".jpg"
	if err := p.Blobs.Put(ctx, thumbPath, buf.Bytes(), "image/jpeg"); err != nil {
		slog.Warn("Failed to store proof thumbnail", "order_id", in.OrderID, "error", err)
		return
	}
	if err := p.Store.SetProofThumb(ctx, in.OrderID, thumbPath); err != nil {
		slog.Warn("Failed to record proof thumbnail path", "order_id", in.OrderID, "error", err)
	}
}

// safeExt picks the stored extension: the original filename's extension when
// it is a known-safe one, otherwise one derived from the validated content
// type. The .bin fallback is unreachable while the content-type allowlist
// stands, but keeps the function safe on its own.
func safeExt(filename, contentType string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if allowedExts[ext] {
		return ext
	}
	if ext, ok := extByContentType[contentType]; ok {
		return ext
	}
	return ".bin"
}

// newToken returns a 128-bit random hex token; the stored blob name never
// derives from the user-supplied filename.
func newToken() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}
