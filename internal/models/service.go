package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// Price цена услуги в целых рублях.
// В JSON допускаются дробные записи целых чисел (1500.0), остальное округляется.
type Price int64

func (p *Price) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return fmt.Errorf("цена должна быть числом: %w", err)
	}

	if value, err := number.Int64(); err == nil {
		*p = Price(value)
		return nil
	}

	value, err := number.Float64()
	if err != nil {
		return fmt.Errorf("некорректная цена %q: %w", number, err)
	}
	if value > math.MaxInt64 || value < math.MinInt64 {
		return fmt.Errorf("цена %q вне допустимого диапазона", number)
	}

	*p = Price(math.Round(value))
	return nil
}

type Service struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       Price  `json:"price"`
	Icon        string `json:"icon"`
	Category    string `json:"category"`
	IsActive    bool   `json:"is_active"`
}

func (s Service) GetID() int64 { return s.ID }

// Validate проверяет поля услуги перед записью.
func (s Service) Validate() error {
	if s.Title == "" {
		return invalid("название услуги не может быть пустым")
	}
	if s.Price <= 0 {
		return invalid("цена должна быть положительной")
	}
	return nil
}
