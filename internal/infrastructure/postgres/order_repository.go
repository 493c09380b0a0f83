package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/THScholar/Therra-Ai-Platform/internal/domain"
	"github.com/THScholar/Therra-Ai-Platform/internal/domain/entity"
	"github.com/THScholar/Therra-Ai-Platform/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `o.id, o.customer_name, o.customer_phone, o.product_id, COALESCE(p.name, ''),
	o.quantity, o.total_amount, o.channel, o.status, o.created_at, o.updated_at`

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	err := row.Scan(&o.ID, &o.CustomerName, &o.CustomerPhone, &o.ProductID, &o.ProductName,
		&o.Quantity, &o.TotalAmount, &o.Channel, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Create persiste el pedido. ErrNotFound si el producto no existe (FK).
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	query := `
		INSERT INTO orders (id, customer_name, customer_phone, product_id, quantity, total_amount, channel, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		o.ID, o.CustomerName, o.CustomerPhone, o.ProductID, o.Quantity, o.TotalAmount,
		o.Channel, o.Status, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) || isInvalidID(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// List pedidos más recientes primero con el nombre del producto.
func (r *OrderRepo) List(ctx context.Context, limit, offset int) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders o LEFT JOIN products p ON p.id = o.product_id
		ORDER BY o.created_at DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado y devuelve el pedido con el nombre del producto.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id, status string) (*entity.Order, error) {
	query := `
		WITH o AS (
			UPDATE orders SET status = $2, updated_at = NOW() WHERE id = $1 RETURNING *
		)
		SELECT ` + orderColumns + ` FROM o LEFT JOIN products p ON p.id = o.product_id`
	o, err := scanOrder(r.q.QueryRow(ctx, query, id, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update order status: %w", err)
	}
	return o, nil
}
