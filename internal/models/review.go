package models

import (
	"github.com/Renal37/valerius-unlock/internal/utils"
)

type Review struct {
	ID           int64             `json:"id"`
	CustomerName string            `json:"customer_name"`
	Rating       int               `json:"rating"`
	Comment      string            `json:"comment"`
	PhoneModel   string            `json:"phone_model"`
	IsPublished  bool              `json:"is_published"`
	CreatedAt    utils.RFC3339Date `json:"created_at"`
}

func (r Review) GetID() int64 { return r.ID }

// ReviewDraft отзыв, присланный клиентом. Всегда попадает на модерацию.
type ReviewDraft struct {
	CustomerName string `json:"customer_name"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	PhoneModel   string `json:"phone_model"`
}

// Validate проверяет черновик отзыва.
func (d ReviewDraft) Validate() error {
	if d.CustomerName == "" {
		return invalid("имя клиента не может быть пустым")
	}
	if d.Rating < 1 || d.Rating > 5 {
		return invalid("оценка должна быть от 1 до 5")
	}
	return nil
}

// ReviewModeration тело PUT-запроса модерации.
type ReviewModeration struct {
	ID          *int64 `json:"id"`
	IsPublished *bool  `json:"is_published"`
}
