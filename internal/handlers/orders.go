package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/Layan-Alghymah/Nexo/internal/service"
	"github.com/shopspring/decimal"
)

type OrderHandler struct {
	Ledger *service.Ledger
	Intake *service.ProofIntake
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.CreateOrderInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Detail: "Invalid JSON body"})
		return
	}

	result, err := h.Ledger.CreateOrder(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	detail, err := h.Ledger.GetOrder(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

type submitProofResponse struct {
	OK bool `json:"ok"`
	*service.SubmitProofResult
	Amount decimal.NullDecimal `json:"amount"`
}

// SubmitProof accepts a multipart form with a required "file" part and
// optional "amount" and "note" fields.
func (h *OrderHandler) SubmitProof(w http.ResponseWriter, r *http.Request) {
	// Memory threshold only; the real size cap is enforced by the service.
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Detail: "Invalid multipart form"})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Detail: "file is required"})
		return
	}
	defer file.Close()

	// Read one byte past the cap so the service can tell "too large" apart
	// from "exactly at the limit" without buffering arbitrary input.
	data, err := io.ReadAll(io.LimitReader(file, service.MaxProofBytes+1))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Detail: "Failed to read file"})
		return
	}

	in := service.SubmitProofInput{
		OrderID:     r.PathValue("id"),
		Data:        data,
		ContentType: header.Header.Get("Content-Type"),
		Filename:    header.Filename,
	}

	if amountStr := r.FormValue("amount"); amountStr != "" {
		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody{Detail: "Invalid amount"})
			return
		}
		in.Amount = decimal.NewNullDecimal(amount)
	}
	if r.Form.Has("note") {
		note := r.FormValue("note")
		in.Note = &note
	}

	result, err := h.Intake.Submit(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, submitProofResponse{OK: true, SubmitProofResult: result, Amount: in.Amount})
}
