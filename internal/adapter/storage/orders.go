package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cammarket/storefront/internal/core/domain"
	"github.com/cammarket/storefront/internal/core/port"
)

var _ port.OrderRepository = (*SQLOrderRepository)(nil)

// SQLOrderRepository persists order history in Postgres. History order
// is by placed_at descending, so the freshest order is always first.
type SQLOrderRepository struct {
	sqldb sqldb
}

func NewSQLOrderRepository(sqldb sqldb) SQLOrderRepository {
	return SQLOrderRepository{sqldb}
}

func (r SQLOrderRepository) StoreOrder(
	ctx context.Context, order domain.Order,
) (storeErr error) {
	const op = "SQLOrderRepository.StoreOrder"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tx, err := r.sqldb.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to begin tx: %w", op, err)
	}

	defer func() {
		if storeErr == nil {
			if err := tx.Commit(); err != nil {
				storeErr = fmt.Errorf("%s: failed to commit: %w", op, err)
			}
			return
		}

		if err := tx.Rollback(); err != nil {
			log.Error("failed to rollback tx", "err", err)
		}
	}()

	orderQuery := `
		INSERT INTO orders (
			id, user_id, status, tracking,
			full_name, phone, line1, city, region_id,
			subtotal, savings, delivery_fee, total, placed_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`

	_, err = tx.ExecContext(ctx, orderQuery,
		order.ID, order.UserID, order.Status, order.Tracking,
		order.Address.FullName, order.Address.Phone, order.Address.Line1,
		order.Address.City, order.Address.RegionID,
		order.Totals.Subtotal, order.Totals.Savings,
		order.Totals.DeliveryFee, order.Totals.Total, order.PlacedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: failed to insert order: %w", op, err)
	}

	lineQuery := `
		INSERT INTO order_lines (
			order_id, position, product_id, name, quantity, unit_price
		)
		VALUES ($1, $2, $3, $4, $5, $6);
	`

	stmt, err := tx.PrepareContext(ctx, lineQuery)
	if err != nil {
		return fmt.Errorf("%s: failed to prepare stmt: %w", op, err)
	}
	defer func() {
		if err := stmt.Close(); err != nil {
			log.Error("failed to close prepared stmt", "err", err)
		}
	}()

	for i, l := range order.Lines {
		_, err := stmt.ExecContext(ctx,
			order.ID, i, l.ProductID, l.Name, l.Quantity, l.UnitPrice,
		)
		if err != nil {
			return fmt.Errorf("%s: failed to insert line: %w", op, err)
		}
	}

	return nil
}

func (r SQLOrderRepository) OrdersByUser(
	ctx context.Context, userID string,
) ([]domain.Order, error) {
	const op = "SQLOrderRepository.OrdersByUser"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT
			id, user_id, status, tracking,
			full_name, phone, line1, city, region_id,
			subtotal, savings, delivery_fee, total, placed_at
		FROM orders
		WHERE user_id = $1
		ORDER BY placed_at DESC;
	`

	rows, err := r.sqldb.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		err := rows.Scan(
			&o.ID, &o.UserID, &o.Status, &o.Tracking,
			&o.Address.FullName, &o.Address.Phone, &o.Address.Line1,
			&o.Address.City, &o.Address.RegionID,
			&o.Totals.Subtotal, &o.Totals.Savings,
			&o.Totals.DeliveryFee, &o.Totals.Total, &o.PlacedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i := range orders {
		lines, err := r.orderLines(ctx, orders[i].ID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		orders[i].Lines = lines
	}

	return orders, nil
}

func (r SQLOrderRepository) orderLines(
	ctx context.Context, orderID string,
) ([]domain.OrderLine, error) {
	const op = "SQLOrderRepository.orderLines"

	query := `
		SELECT product_id, name, quantity, unit_price
		FROM order_lines
		WHERE order_id = $1
		ORDER BY position ASC;
	`

	rows, err := r.sqldb.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var lines []domain.OrderLine
	for rows.Next() {
		var l domain.OrderLine
		err := rows.Scan(&l.ProductID, &l.Name, &l.Quantity, &l.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return lines, nil
}

func (r SQLOrderRepository) UpdateOrderStatus(
	ctx context.Context, upd domain.OrderStatusUpdate,
) error {
	const op = "SQLOrderRepository.UpdateOrderStatus"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `UPDATE orders SET status = $1 WHERE id = $2;`

	res, err := r.sqldb.ExecContext(ctx, query, upd.Status, upd.OrderID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, ErrOrderNotFound)
	}
	return nil
}
