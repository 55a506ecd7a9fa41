package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Layan-Alghymah/Nexo/internal/models"
	"github.com/Layan-Alghymah/Nexo/internal/service"
)

// AdminKeyHeader carries the shared admin secret on every admin request.
const AdminKeyHeader = "X-Admin-Key"

type AdminHandler struct {
	Gate   *service.Gate
	Review *service.Review
}

// RequireAdmin guards admin routes with the shared-secret gate.
func (h *AdminHandler) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.Gate.RequireAdmin(r.Header.Get(AdminKeyHeader)); err != nil {
			writeError(w, err)
			return
		}
		next(w, r)
	}
}

type reviewRequest struct {
	Decision string  `json:"decision"`
	Note     *string `json:"note"`
}

type reviewResponse struct {
	OK bool `json:"ok"`
	*service.ReviewResult
}

func (h *AdminHandler) ReviewOrder(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Detail: "Invalid JSON body"})
		return
	}

	result, err := h.Review.Decide(r.Context(), r.PathValue("id"), req.Decision, req.Note)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reviewResponse{OK: true, ReviewResult: result})
}

type ordersResponse struct {
	Orders []models.Order `json:"orders"`
}

func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Review.Worklist(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeError(w, err)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	writeJSON(w, http.StatusOK, ordersResponse{Orders: orders})
}

func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Review.Stats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
