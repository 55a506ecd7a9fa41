package store

import (
	"context"
	"database/sql"
	"strings"

	"github.com/Layan-Alghymah/Nexo/internal/models"
	"github.com/shopspring/decimal"
)

// ListActiveProducts returns products available for ordering, newest first.
func (s *Store) ListActiveProducts(ctx context.Context) ([]models.Product, error) {
	query := `SELECT id, name, description, price, image_url, active, created_at
	          FROM products
	          WHERE active = 1
	          ORDER BY created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

// ListProducts returns every product, including delisted ones (admin/CLI view).
func (s *Store) ListProducts(ctx context.Context) ([]models.Product, error) {
	query := `SELECT id, name, description, price, image_url, active, created_at
	          FROM products
	          ORDER BY created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

// GetActiveProduct returns (nil, nil) when the id is unknown or the product
// is delisted; inactive products are invisible to lookup.
func (s *Store) GetActiveProduct(ctx context.Context, id string) (*models.Product, error) {
	query := `SELECT id, name, description, price, image_url, active, created_at
	          FROM products
	          WHERE id = ? AND active = 1`
	row := s.DB.QueryRowContext(ctx, query, id)

	var p models.Product
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL, &p.Active, &p.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// ActivePrices fetches the unit price of every requested id that is in the
// active set, in one query. Ids absent from the result were not orderable.
func (s *Store) ActivePrices(ctx context.Context, ids []string) (map[string]decimal.Decimal, error) {
	if len(ids) == 0 {
		return map[string]decimal.Decimal{}, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	query := `SELECT id, price FROM products WHERE active = 1 AND id IN (` + placeholders + `)`
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	prices := make(map[string]decimal.Decimal)
	for rows.Next() {
		var id string
		var price decimal.Decimal
		if err := rows.Scan(&id, &price); err != nil {
			return nil, err
		}
		prices[id] = price
	}
	return prices, rows.Err()
}

func (s *Store) CreateProduct(ctx context.Context, p *models.Product) error {
	query := `
		INSERT INTO products (id, name, description, price, image_url, active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`
	_, err := s.DB.ExecContext(ctx, query, p.ID, p.Name, p.Description, p.Price, p.ImageURL, p.Active)
	return err
}

// ArchiveProduct delists a product without deleting it; historical orders
// keep referencing it.
func (s *Store) ArchiveProduct(ctx context.Context, id string) error {
	query := `UPDATE products SET active = 0 WHERE id = ?`
	res, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func scanProducts(rows *sql.Rows) ([]models.Product, error) {
	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL, &p.Active, &p.CreatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
