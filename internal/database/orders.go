package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/Renal37/valerius-unlock/internal/models"
	"github.com/jackc/pgx/v5"
)

const (
	SelectOrdersQuery = `
		SELECT
			o.id,
			o.customer_name,
			o.customer_phone,
			o.customer_email,
			o.phone_model,
			o.imei,
			o.message,
			o.service_id,
			s.title,
			o.status,
			o.created_at
		FROM
			orders o
			LEFT JOIN services s ON o.service_id = s.id
		ORDER BY
			o.created_at DESC
	`
	InsertOrderQuery = `
		INSERT INTO
			orders (customer_name, customer_phone, customer_email, service_id, phone_model, imei, message, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 'new')
		RETURNING id, created_at
	`
	SelectOrderStatusQuery = `
		SELECT
			status
		FROM
			orders
		WHERE
			id = $1
	`
	AdvanceOrderStatusQuery = `
		UPDATE
			orders
		SET
			status = $3
		WHERE
			id = $1 AND status = $2
	`
	DeleteOrderQuery = `
		DELETE FROM
			orders
		WHERE
			id = $1
	`
)

// FindOrders возвращает все заказы, новые первыми.
func (d *Database) FindOrders(ctx context.Context) ([]models.Order, error) {
	rows, err := d.db.Query(ctx, SelectOrdersQuery)
	if err != nil {
		return nil, fmt.Errorf("ошибка выборки заказов: %w", err)
	}
	defer rows.Close()

	result := []models.Order{}
	for rows.Next() {
		var (
			o            models.Order
			serviceTitle *string
			status       string
		)
		err := rows.Scan(
			&o.ID, &o.CustomerName, &o.CustomerPhone, &o.CustomerEmail,
			&o.PhoneModel, &o.IMEI, &o.Message, &o.ServiceID, &serviceTitle,
			&status, &o.CreatedAt.Time,
		)
		if err != nil {
			return nil, fmt.Errorf("ошибка обработки строки с заказом: %w", err)
		}
		if serviceTitle != nil {
			o.ServiceTitle = *serviceTitle
		}
		o.Status = models.OrderStatus(status)
		result = append(result, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка итерации по строкам: %w", err)
	}

	return result, nil
}

// InsertOrder сохраняет заявку со статусом new.
func (d *Database) InsertOrder(ctx context.Context, inquiry models.Inquiry) (models.Order, error) {
	order := models.Order{
		CustomerName:  *inquiry.CustomerName,
		CustomerPhone: *inquiry.CustomerPhone,
		CustomerEmail: inquiry.CustomerEmail,
		PhoneModel:    inquiry.PhoneModel,
		IMEI:          inquiry.IMEI,
		Message:       inquiry.Message,
		ServiceID:     inquiry.ServiceID,
		Status:        models.StatusNew,
	}

	err := d.db.QueryRow(ctx, InsertOrderQuery,
		order.CustomerName, order.CustomerPhone, order.CustomerEmail,
		order.ServiceID, order.PhoneModel, order.IMEI, order.Message,
	).Scan(&order.ID, &order.CreatedAt.Time)
	if err != nil {
		return models.Order{}, classify("ошибка создания заказа", err)
	}

	return order, nil
}

func (d *Database) FindOrderStatus(ctx context.Context, id int64) (models.OrderStatus, error) {
	var status string
	if err := d.db.QueryRow(ctx, SelectOrderStatusQuery, id).Scan(&status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", models.ErrNotFound
		}
		return "", fmt.Errorf("ошибка поиска заказа: %w", err)
	}
	return models.OrderStatus(status), nil
}

// AdvanceOrderStatus меняет статус, только если текущий равен from.
// Возвращает false, если статус успели изменить или заказа нет.
func (d *Database) AdvanceOrderStatus(ctx context.Context, id int64, from, to models.OrderStatus) (bool, error) {
	tag, err := d.db.Exec(ctx, AdvanceOrderStatusQuery, id, string(from), string(to))
	if err != nil {
		return false, classify("ошибка обновления статуса заказа", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (d *Database) DeleteOrder(ctx context.Context, id int64) error {
	tag, err := d.db.Exec(ctx, DeleteOrderQuery, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления заказа: %w", err)
	}
	return expectOne(tag)
}
