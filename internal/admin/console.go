package admin

import (
	"context"
	"sync"

	"github.com/Renal37/valerius-unlock/internal/models"
)

// Console рабочее место одного администратора: шлюз входа, хранилище и оркестратор.
// Каждый вход создаёт новое хранилище; после выхода старое отклоняет изменения.
type Console struct {
	gate   *Gate
	source models.DataSource
	policy Policy

	mu           sync.RWMutex
	orchestrator *Orchestrator
}

func NewConsole(verifier models.CredentialVerifier, source models.DataSource, policy Policy) *Console {
	closed := NewStore()
	closed.Discard()

	c := &Console{
		source:       source,
		policy:       policy,
		orchestrator: NewOrchestrator(source, closed, policy),
	}
	c.gate = NewGate(verifier, c.admit)
	return c
}

// admit подменяет хранилище свежим и загружает в него данные.
func (c *Console) admit(ctx context.Context) error {
	next := NewOrchestrator(c.source, NewStore(), c.policy)

	c.mu.Lock()
	prev := c.orchestrator
	c.orchestrator = next
	c.mu.Unlock()

	prev.Store().Discard()
	return next.LoadAll(ctx)
}

// Login при ошибке загрузки возвращает ErrLoadFailed, но вход остаётся в силе.
func (c *Console) Login(ctx context.Context, credentials models.Credentials) error {
	return c.gate.Login(ctx, credentials)
}

func (c *Console) Logout() {
	c.gate.Logout()
	c.Orchestrator().Store().Discard()
}

func (c *Console) IsAuthenticated() bool {
	return c.gate.IsAuthenticated()
}

func (c *Console) Orchestrator() *Orchestrator {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.orchestrator
}

func (c *Console) Store() *Store {
	return c.Orchestrator().Store()
}

// Reload перечитывает все коллекции.
func (c *Console) Reload(ctx context.Context) error {
	if !c.IsAuthenticated() {
		return ErrSessionClosed
	}
	return c.Orchestrator().LoadAll(ctx)
}
