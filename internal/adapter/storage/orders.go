package storage

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/aqline/storefront/internal/core/domain"
	"github.com/aqline/storefront/internal/core/port"
)

var _ port.OrderRepository = (*OrdersRepository)(nil)

// OrdersRepository appends submitted orders. Order rows are never
// mutated after insertion.
type OrdersRepository struct {
	sqldb sqldb
}

func NewOrdersRepository(sqldb sqldb) OrdersRepository {
	return OrdersRepository{sqldb}
}

func (r OrdersRepository) StoreOrder(
	ctx context.Context, order domain.Order,
) (orderID string, storeErr error) {
	const op = "OrdersRepository.StoreOrder"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	tx, err := r.sqldb.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("%s: failed to begin tx: %w", op, err)
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

	var id int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO orders (customer_email, submitted_at)
		 VALUES ($1, $2) RETURNING id`,
		order.CustomerEmail, order.SubmittedAt,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("%s: failed to insert order: %w", op, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO order_items (
			order_id, product_id, sku, title, manufacturer, uom, quantity
		)
		VALUES ($1, $2::numeric, $3, $4, $5, $6, $7)`,
	)
	if err != nil {
		return "", fmt.Errorf("%s: failed to prepare stmt: %w", op, err)
	}
	defer func() {
		if err := stmt.Close(); err != nil {
			log.Error("failed to close prepared stmt", "err", err)
		}
	}()

	for _, line := range order.Lines {
		_, err := stmt.ExecContext(ctx,
			id, line.ProductID, line.SKU, line.Title,
			line.Manufacturer, line.UOM, line.Quantity,
		)
		if err != nil {
			return "", fmt.Errorf("%s: failed to insert line: %w", op, err)
		}
	}

	return strconv.FormatInt(id, 10), nil
}
