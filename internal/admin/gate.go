package admin

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Renal37/valerius-unlock/internal/models"
)

var ErrInvalidCredentials = errors.New("неверный логин или пароль")

// Gate пропускает в админ-панель по результату CredentialVerifier.
// Число попыток не ограничено, состояние живёт только в памяти.
type Gate struct {
	verifier models.CredentialVerifier
	onAdmit  func(ctx context.Context) error

	mu            sync.Mutex
	authenticated bool
}

// NewGate создает шлюз. onAdmit вызывается после каждого успешного входа; может быть nil.
func NewGate(verifier models.CredentialVerifier, onAdmit func(ctx context.Context) error) *Gate {
	return &Gate{verifier: verifier, onAdmit: onAdmit}
}

// Login проверяет пару логин/пароль. При отказе возвращает ErrInvalidCredentials
// и оставляет шлюз закрытым. Ошибка onAdmit возвращается как есть, но вход
// при этом уже состоялся.
func (g *Gate) Login(ctx context.Context, credentials models.Credentials) error {
	ok, err := g.verifier.Verify(ctx, credentials)
	if err != nil {
		return fmt.Errorf("ошибка проверки учётных данных: %w", err)
	}
	if !ok {
		return ErrInvalidCredentials
	}

	g.mu.Lock()
	g.authenticated = true
	g.mu.Unlock()

	if g.onAdmit != nil {
		return g.onAdmit(ctx)
	}
	return nil
}

func (g *Gate) Logout() {
	g.mu.Lock()
	g.authenticated = false
	g.mu.Unlock()
}

func (g *Gate) IsAuthenticated() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.authenticated
}
