package models

import (
	"github.com/Renal37/valerius-unlock/internal/utils"
)

type OrderStatus string

const (
	StatusNew        OrderStatus = "new"
	StatusInProgress OrderStatus = "in_progress"
	StatusCompleted  OrderStatus = "completed"
)

// Valid сообщает, является ли значение одним из известных статусов.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Next возвращает следующий статус заказа. Для завершённого заказа возвращает false.
func (s OrderStatus) Next() (OrderStatus, bool) {
	switch s {
	case StatusNew:
		return StatusInProgress, true
	case StatusInProgress:
		return StatusCompleted, true
	}
	return "", false
}

// CanAdvanceTo проверяет, что переход в target идёт строго вперёд на один шаг.
func (s OrderStatus) CanAdvanceTo(target OrderStatus) bool {
	next, ok := s.Next()
	return ok && next == target
}

type Order struct {
	ID            int64             `json:"id"`
	CustomerName  string            `json:"customer_name"`
	CustomerPhone string            `json:"customer_phone"`
	CustomerEmail string            `json:"customer_email,omitempty"`
	PhoneModel    string            `json:"phone_model"`
	IMEI          string            `json:"imei,omitempty"`
	Message       string            `json:"message,omitempty"`
	ServiceID     *int64            `json:"service_id,omitempty"`
	ServiceTitle  string            `json:"service_title,omitempty"`
	Status        OrderStatus       `json:"status"`
	CreatedAt     utils.RFC3339Date `json:"created_at"`
}

func (o Order) GetID() int64 { return o.ID }

// Inquiry заявка клиента с публичной формы.
type Inquiry struct {
	CustomerName  *string `json:"customer_name"`
	CustomerPhone *string `json:"customer_phone"`
	CustomerEmail string  `json:"customer_email"`
	PhoneModel    string  `json:"phone_model"`
	IMEI          string  `json:"imei"`
	Message       string  `json:"message"`
	ServiceID     *int64  `json:"service_id"`
}

// OrderStatusUpdate тело PUT-запроса смены статуса.
type OrderStatusUpdate struct {
	ID     *int64      `json:"id"`
	Status OrderStatus `json:"status"`
}
