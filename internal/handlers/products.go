package handlers

import (
	"net/http"

	"github.com/Layan-Alghymah/Nexo/internal/models"
	"github.com/Layan-Alghymah/Nexo/internal/service"
)

type CatalogHandler struct {
	Catalog *service.Catalog
}

func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.Catalog.ListActive(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	product, err := h.Catalog.GetProduct(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}
