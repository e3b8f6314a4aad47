package services

import (
	"context"

	"github.com/Renal37/valerius-unlock/internal/models"
)

// ReviewService принимает отзывы и модерирует их.
type ReviewService struct {
	storage reviewStorage
}

type reviewStorage interface {
	FindReviews(ctx context.Context, includeUnpublished bool) ([]models.Review, error)
	InsertReview(ctx context.Context, draft models.ReviewDraft) (int64, error)
	SetReviewPublished(ctx context.Context, id int64, published bool) error
	DeleteReview(ctx context.Context, id int64) error
}

func NewReviewService(storage reviewStorage) *ReviewService {
	return &ReviewService{storage: storage}
}

// ListReviews без includeUnpublished отдаёт только опубликованные отзывы.
func (r *ReviewService) ListReviews(ctx context.Context, includeUnpublished bool) ([]models.Review, error) {
	return r.storage.FindReviews(ctx, includeUnpublished)
}

// CreateReview сохраняет отзыв неопубликованным.
func (r *ReviewService) CreateReview(ctx context.Context, draft models.ReviewDraft) (int64, error) {
	if err := draft.Validate(); err != nil {
		return 0, err
	}
	return r.storage.InsertReview(ctx, draft)
}

func (r *ReviewService) SetPublished(ctx context.Context, id int64, published bool) error {
	return r.storage.SetReviewPublished(ctx, id, published)
}

func (r *ReviewService) DeleteReview(ctx context.Context, id int64) error {
	return r.storage.DeleteReview(ctx, id)
}
