package service

import (
	"context"

	"github.com/Layan-Alghymah/Nexo/internal/models"
	"github.com/Layan-Alghymah/Nexo/internal/store"
)

// Catalog is the read-only product view. Products are maintained out of band
// (see cmd/cli); only active ones are visible here.
type Catalog struct {
	Store *store.Store
}

func (c *Catalog) ListActive(ctx context.Context) ([]models.Product, error) {
	return c.Store.ListActiveProducts(ctx)
}

func (c *Catalog) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	product, err := c.Store.GetActiveProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fail(ErrNotFound, "Product not found")
	}
	return product, nil
}
