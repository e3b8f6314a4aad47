package admin

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/Renal37/valerius-unlock/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// StaticVerifier сравнивает логин и пароль с заданной парой.
type StaticVerifier struct {
	Username string
	Password string
}

// DefaultVerifier пара admin/admin.
func DefaultVerifier() StaticVerifier {
	return StaticVerifier{Username: "admin", Password: "admin"}
}

func (v StaticVerifier) Verify(_ context.Context, credentials models.Credentials) (bool, error) {
	if credentials.Username == nil || credentials.Password == nil {
		return false, nil
	}

	userOK := subtle.ConstantTimeCompare([]byte(*credentials.Username), []byte(v.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(*credentials.Password), []byte(v.Password)) == 1

	return userOK && passOK, nil
}

// BcryptVerifier проверяет пароль по bcrypt-хэшу.
type BcryptVerifier struct {
	Username string
	Hash     []byte
}

func (v BcryptVerifier) Verify(_ context.Context, credentials models.Credentials) (bool, error) {
	if credentials.Username == nil || credentials.Password == nil {
		return false, nil
	}

	if subtle.ConstantTimeCompare([]byte(*credentials.Username), []byte(v.Username)) != 1 {
		return false, nil
	}

	if err := bcrypt.CompareHashAndPassword(v.Hash, []byte(*credentials.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, fmt.Errorf("ошибка при сравнении паролей: %w", err)
	}

	return true, nil
}
