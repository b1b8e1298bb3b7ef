package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"delivery-api/internal/model"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// Create inserts the order and its delivery row in one transaction.
func (r *OrderRepository) Create(ctx context.Context, o model.Order) (int64, error) {
	var id int64
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx,
			`INSERT INTO orders (name, description, pickup_address, delivery_address, weight, dimensions)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING id`,
			o.Name, o.Description, o.PickUpAddress, o.DeliveryAddress, o.Weight, o.Dimensions).Scan(&id); err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		if _, err := tx.Exec(ctx, `INSERT INTO deliveries (order_id) VALUES ($1)`, id); err != nil {
			return fmt.Errorf("insert delivery: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("create order: %w", err)
	}
	return id, nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id int64) (model.Order, error) {
	var o model.Order
	err := r.pool.QueryRow(ctx,
		`SELECT o.id, o.name, o.description, o.pickup_address, o.delivery_address, o.weight,
		        o.dimensions, o.creation_date,
		        d.delivery_id, d.order_id, d.status, d.target_time_delivery
		 FROM orders o
		 JOIN deliveries d ON d.order_id = o.id
		 WHERE o.id = $1`, id).
		Scan(&o.ID, &o.Name, &o.Description, &o.PickUpAddress, &o.DeliveryAddress, &o.Weight,
			&o.Dimensions, &o.CreationDate,
			&o.Delivery.ID, &o.Delivery.OrderID, &o.Delivery.Status, &o.Delivery.TargetTimeDelivery)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Order{}, model.ErrOrderNotFound
	}
	if err != nil {
		return model.Order{}, fmt.Errorf("find order by id: %w", err)
	}
	return o, nil
}

func (r *OrderRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrOrderNotFound
	}
	return nil
}

// UpdateDelivery writes only the non-nil fields of update.
func (r *OrderRepository) UpdateDelivery(ctx context.Context, orderID int64, update model.DeliveryUpdate) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE deliveries
		 SET status = COALESCE($2, status),
		     target_time_delivery = COALESCE($3, target_time_delivery)
		 WHERE order_id = $1`,
		orderID, update.Status, update.TargetTimeDelivery)
	if err != nil {
		return fmt.Errorf("update delivery: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrDeliveryNotFound
	}
	return nil
}
