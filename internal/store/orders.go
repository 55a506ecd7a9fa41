package store

import (
	"context"
	"database/sql"

	"github.com/Layan-Alghymah/Nexo/internal/models"
)

// CreateOrder persists an order and all of its items in one transaction.
// Partial item insertion is never observable: any failure rolls back the
// whole order.
func (s *Store) CreateOrder(ctx context.Context, order *models.Order, items []models.OrderItem) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (id, status, total, customer_name, customer_phone, address_text, created_at)
		VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, order.ID, order.Status, order.Total, order.CustomerName, order.CustomerPhone, order.AddressText)
	if err != nil {
		return err
	}

	for _, item := range items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (id, order_id, product_id, qty, price)
			VALUES (?, ?, ?, ?, ?)
		`, item.ID, item.OrderID, item.ProductID, item.Quantity, item.Price)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetOrder returns (nil, nil) for an unknown id.
func (s *Store) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	query := `SELECT id, status, total, customer_name, customer_phone, address_text, created_at
	          FROM orders WHERE id = ?`
	row := s.DB.QueryRowContext(ctx, query, id)

	var o models.Order
	if err := row.Scan(&o.ID, &o.Status, &o.Total, &o.CustomerName, &o.CustomerPhone, &o.AddressText, &o.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (s *Store) GetOrderItems(ctx context.Context, orderID string) ([]models.OrderItem, error) {
	query := `SELECT id, order_id, product_id, qty, price FROM order_items WHERE order_id = ?`
	rows, err := s.DB.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.OrderItem
	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.Price); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// ListOrdersByStatus is the admin worklist view: newest first, capped.
func (s *Store) ListOrdersByStatus(ctx context.Context, status string, limit int) ([]models.Order, error) {
	query := `SELECT id, status, total, customer_name, customer_phone, address_text, created_at
	          FROM orders
	          WHERE status = ?
	          ORDER BY created_at DESC
	          LIMIT ?`
	rows, err := s.DB.QueryContext(ctx, query, status, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.Status, &o.Total, &o.CustomerName, &o.CustomerPhone, &o.AddressText, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
