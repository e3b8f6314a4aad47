package database

import (
	"context"
	"fmt"

	"github.com/Renal37/valerius-unlock/internal/models"
)

// PublicReviewsLimit сколько опубликованных отзывов отдаётся публичной странице.
const PublicReviewsLimit = 20

const (
	SelectAllReviewsQuery = `
		SELECT
			id,
			customer_name,
			rating,
			comment,
			phone_model,
			is_published,
			created_at
		FROM
			reviews
		ORDER BY
			created_at DESC
	`
	SelectPublishedReviewsQuery = `
		SELECT
			id,
			customer_name,
			rating,
			comment,
			phone_model,
			is_published,
			created_at
		FROM
			reviews
		WHERE
			is_published = true
		ORDER BY
			created_at DESC
		LIMIT $1
	`
	InsertReviewQuery = `
		INSERT INTO
			reviews (customer_name, rating, comment, phone_model, is_published)
		VALUES ($1, $2, $3, $4, false)
		RETURNING id
	`
	UpdateReviewPublishedQuery = `
		UPDATE
			reviews
		SET
			is_published = $2
		WHERE
			id = $1
	`
	DeleteReviewQuery = `
		DELETE FROM
			reviews
		WHERE
			id = $1
	`
)

// FindReviews возвращает отзывы, новые первыми. Без includeUnpublished только опубликованные.
func (d *Database) FindReviews(ctx context.Context, includeUnpublished bool) ([]models.Review, error) {
	query, args := SelectPublishedReviewsQuery, []any{PublicReviewsLimit}
	if includeUnpublished {
		query, args = SelectAllReviewsQuery, nil
	}

	rows, err := d.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка выборки отзывов: %w", err)
	}
	defer rows.Close()

	result := []models.Review{}
	for rows.Next() {
		var r models.Review
		if err := rows.Scan(&r.ID, &r.CustomerName, &r.Rating, &r.Comment, &r.PhoneModel, &r.IsPublished, &r.CreatedAt.Time); err != nil {
			return nil, fmt.Errorf("ошибка обработки строки с отзывом: %w", err)
		}
		result = append(result, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка итерации по строкам: %w", err)
	}

	return result, nil
}

func (d *Database) InsertReview(ctx context.Context, draft models.ReviewDraft) (int64, error) {
	var id int64
	err := d.db.QueryRow(ctx, InsertReviewQuery, draft.CustomerName, draft.Rating, draft.Comment, draft.PhoneModel).Scan(&id)
	if err != nil {
		return 0, classify("ошибка создания отзыва", err)
	}
	return id, nil
}

func (d *Database) SetReviewPublished(ctx context.Context, id int64, published bool) error {
	tag, err := d.db.Exec(ctx, UpdateReviewPublishedQuery, id, published)
	if err != nil {
		return fmt.Errorf("ошибка модерации отзыва: %w", err)
	}
	return expectOne(tag)
}

func (d *Database) DeleteReview(ctx context.Context, id int64) error {
	tag, err := d.db.Exec(ctx, DeleteReviewQuery, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления отзыва: %w", err)
	}
	return expectOne(tag)
}
