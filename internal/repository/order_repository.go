package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"artiste_site/internal/domain/models"
	"artiste_site/internal/storage"
	"artiste_site/internal/storage/postgresql"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const ordersTable = "orders"

var orderColumns = []string{
	"id", "user_id", "customer_name", "customer_email", "customer_phone", "shipping_address",
	"items", "total_amount", "status", "tracking_number", "notes", "created_at", "updated_at",
}

type OrderRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *OrderRepo) CreateOrder(ctx context.Context, o models.Order) (models.Order, error) {
	const op = "repository.order_repository.CreateOrder"

	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	if o.Status == "" {
		o.Status = models.OrderPending
	}
	now := time.Now().UTC()

	query, args, err := r.sb.Insert(ordersTable).
		Columns(orderColumns...).
		Values(
			o.ID, o.UserID, o.CustomerName, o.CustomerEmail, o.CustomerPhone, o.ShippingAddress,
			o.Items, o.TotalAmount, string(o.Status), o.TrackingNumber, o.Notes, now, now,
		).
		Suffix("RETURNING " + joinColumns(orderColumns)).
		ToSql()
	if err != nil {
		return models.Order{}, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	created, err := scanOrder(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.Order{}, fmt.Errorf("%s: %w", op, postgresql.MapError(err))
	}

	return created, nil
}

func (r *OrderRepo) GetOrder(ctx context.Context, id uuid.UUID) (models.Order, error) {
	const op = "repository.order_repository.GetOrder"

	query, args, err := r.sb.Select(orderColumns...).
		From(ordersTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Order{}, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	o, err := scanOrder(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Order{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return models.Order{}, fmt.Errorf("%s: %w", op, postgresql.MapError(err))
	}

	return o, nil
}

// ListOrders возвращает заказы, новые первыми; пустой status - все заказы
func (r *OrderRepo) ListOrders(ctx context.Context, status models.OrderStatus) ([]models.Order, error) {
	const op = "repository.order_repository.ListOrders"

	qb := r.sb.Select(orderColumns...).From(ordersTable).OrderBy("created_at DESC")
	if status != "" {
		qb = qb.Where(sq.Eq{"status": string(status)})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	return r.list(ctx, op, query, args)
}

func (r *OrderRepo) ListOrdersByUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	const op = "repository.order_repository.ListOrdersByUser"

	query, args, err := r.sb.Select(orderColumns...).
		From(ordersTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	return r.list(ctx, op, query, args)
}

func (r *OrderRepo) UpdateOrder(ctx context.Context, id uuid.UUID, upd models.OrderUpdate) (models.Order, error) {
	const op = "repository.order_repository.UpdateOrder"

	query, args, err := r.sb.Update(ordersTable).
		Set("status", string(upd.Status)).
		Set("tracking_number", upd.TrackingNumber).
		Set("notes", upd.Notes).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(orderColumns)).
		ToSql()
	if err != nil {
		return models.Order{}, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	updated, err := scanOrder(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Order{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return models.Order{}, fmt.Errorf("%s: %w", op, postgresql.MapError(err))
	}

	return updated, nil
}

func (r *OrderRepo) list(ctx context.Context, op, query string, args []interface{}) ([]models.Order, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, postgresql.MapError(err))
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, postgresql.MapError(err))
	}

	return orders, nil
}

func scanOrder(row pgx.Row) (models.Order, error) {
	var (
		o      models.Order
		status string
	)

	err := row.Scan(
		&o.ID,
		&o.UserID,
		&o.CustomerName,
		&o.CustomerEmail,
		&o.CustomerPhone,
		&o.ShippingAddress,
		&o.Items,
		&o.TotalAmount,
		&status,
		&o.TrackingNumber,
		&o.Notes,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return models.Order{}, err
	}

	o.Status = models.OrderStatus(status)

	return o, nil
}
