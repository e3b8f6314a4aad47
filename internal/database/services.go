package database

import (
	"context"
	"fmt"

	"github.com/Renal37/valerius-unlock/internal/models"
)

const (
	SelectServicesQuery = `
		SELECT
			id,
			title,
			description,
			price,
			icon,
			category,
			is_active
		FROM
			services
		WHERE
			is_active OR $1
		ORDER BY
			id
	`
	InsertServiceQuery = `
		INSERT INTO
			services (title, description, price, icon, category, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	UpdateServiceQuery = `
		UPDATE
			services
		SET
			title = $2,
			description = $3,
			price = $4,
			icon = $5,
			category = $6,
			is_active = $7
		WHERE
			id = $1
	`
	DeleteServiceQuery = `
		DELETE FROM
			services
		WHERE
			id = $1
	`
)

// FindServices возвращает услуги по возрастанию id. Неактивные попадают в выборку только по запросу.
func (d *Database) FindServices(ctx context.Context, includeInactive bool) ([]models.Service, error) {
	rows, err := d.db.Query(ctx, SelectServicesQuery, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("ошибка выборки услуг: %w", err)
	}
	defer rows.Close()

	result := []models.Service{}
	for rows.Next() {
		var s models.Service
		if err := rows.Scan(&s.ID, &s.Title, &s.Description, &s.Price, &s.Icon, &s.Category, &s.IsActive); err != nil {
			return nil, fmt.Errorf("ошибка обработки строки с услугой: %w", err)
		}
		result = append(result, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка итерации по строкам: %w", err)
	}

	return result, nil
}

func (d *Database) InsertService(ctx context.Context, s models.Service) (int64, error) {
	var id int64
	err := d.db.QueryRow(ctx, InsertServiceQuery, s.Title, s.Description, s.Price, s.Icon, s.Category, s.IsActive).Scan(&id)
	if err != nil {
		return 0, classify("ошибка создания услуги", err)
	}
	return id, nil
}

func (d *Database) UpdateService(ctx context.Context, s models.Service) error {
	tag, err := d.db.Exec(ctx, UpdateServiceQuery, s.ID, s.Title, s.Description, s.Price, s.Icon, s.Category, s.IsActive)
	if err != nil {
		return classify("ошибка обновления услуги", err)
	}
	return expectOne(tag)
}

func (d *Database) DeleteService(ctx context.Context, id int64) error {
	tag, err := d.db.Exec(ctx, DeleteServiceQuery, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления услуги: %w", err)
	}
	return expectOne(tag)
}
