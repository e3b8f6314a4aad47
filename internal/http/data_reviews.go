package router

import (
	"net/http"

	"github.com/Renal37/valerius-unlock/internal/middlewares"
	"github.com/Renal37/valerius-unlock/internal/models"
)

type createReviewResponse struct {
	successResponse
	ReviewID int64 `json:"review_id"`
}

// ListReviews опубликованные отзывы, а с ?all=true все.
func ListReviews(w http.ResponseWriter, r *http.Request) {
	reviewService := middlewares.GetServiceFromContext[models.ReviewService](w, r, middlewares.ReviewServiceKey)
	if reviewService == nil {
		return
	}

	reviews, err := (*reviewService).ListReviews(r.Context(), includeAll(r))
	if err != nil {
		writeDataError(w, err, "Ошибка загрузки отзывов")
		return
	}

	middlewares.EncodeJSONResponse(w, reviewsResponse{Reviews: reviews})
}

func CreateReview(w http.ResponseWriter, r *http.Request) {
	data, ok := middlewares.GetParsedJSONData[models.ReviewDraft](w, r)
	if !ok {
		return
	}
	reviewService := middlewares.GetServiceFromContext[models.ReviewService](w, r, middlewares.ReviewServiceKey)
	if reviewService == nil {
		return
	}

	id, err := (*reviewService).CreateReview(r.Context(), data)
	if err != nil {
		writeDataError(w, err, "Ошибка отправки отзыва")
		return
	}

	middlewares.EncodeJSONResponseWithStatus(w, http.StatusCreated, createReviewResponse{
		successResponse: successResponse{Success: true, Message: "Отзыв отправлен на модерацию"},
		ReviewID:        id,
	})
}

func SetReviewPublished(w http.ResponseWriter, r *http.Request) {
	data, ok := middlewares.GetParsedJSONData[models.ReviewModeration](w, r)
	if !ok {
		return
	}
	if data.ID == nil || *data.ID <= 0 || data.IsPublished == nil {
		middlewares.EncodeJSONError(w, http.StatusBadRequest, "Запрос не содержит id или is_published")
		return
	}
	reviewService := middlewares.GetServiceFromContext[models.ReviewService](w, r, middlewares.ReviewServiceKey)
	if reviewService == nil {
		return
	}

	if err := (*reviewService).SetPublished(r.Context(), *data.ID, *data.IsPublished); err != nil {
		writeDataError(w, err, "Ошибка модерации отзыва")
		return
	}

	writeSuccess(w, "Статус отзыва обновлён")
}

func DeleteReview(w http.ResponseWriter, r *http.Request) {
	id, ok := queryID(w, r)
	if !ok {
		return
	}
	reviewService := middlewares.GetServiceFromContext[models.ReviewService](w, r, middlewares.ReviewServiceKey)
	if reviewService == nil {
		return
	}

	if err := (*reviewService).DeleteReview(r.Context(), id); err != nil {
		writeDataError(w, err, "Ошибка удаления отзыва")
		return
	}

	writeSuccess(w, "Отзыв удалён")
}
