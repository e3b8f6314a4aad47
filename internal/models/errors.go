package models

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound                = errors.New("запись не найдена")
	ErrInvalidStatusTransition = errors.New("недопустимая смена статуса заказа")
	ErrInvalidInput            = errors.New("некорректные данные")
)

func invalid(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, reason)
}
