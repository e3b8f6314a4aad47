package admin

import (
	"context"
	"sync"
	"time"

	"github.com/Renal37/valerius-unlock/internal/logger"
	"github.com/Renal37/valerius-unlock/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type session struct {
	console   *Console
	expiresAt time.Time
}

// Sessions реестр открытых консолей. Ключ сессии попадает в subject токена.
type Sessions struct {
	verifier models.CredentialVerifier
	source   models.DataSource
	policy   Policy
	ttl      time.Duration
	now      func() time.Time

	mu       sync.Mutex
	sessions map[string]session
}

// NewSessions создает реестр; сессия живёт ttl с момента входа.
func NewSessions(verifier models.CredentialVerifier, source models.DataSource, policy Policy, ttl time.Duration) *Sessions {
	return &Sessions{
		verifier: verifier,
		source:   source,
		policy:   policy,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]session),
	}
}

// Login открывает новую сессию. Если учётные данные отклонены, сессия не создаётся.
// Ошибка загрузки данных возвращается вместе с открытой сессией.
func (s *Sessions) Login(ctx context.Context, credentials models.Credentials) (string, *Console, error) {
	console := NewConsole(s.verifier, s.source, s.policy)

	err := console.Login(ctx, credentials)
	if !console.IsAuthenticated() {
		return "", nil, err
	}

	id := uuid.NewString()

	s.mu.Lock()
	s.pruneLocked()
	s.sessions[id] = session{console: console, expiresAt: s.now().Add(s.ttl)}
	s.mu.Unlock()

	logger.Log.Info("admin session opened", zap.String("session", id))
	return id, console, err
}

// Get возвращает консоль живой сессии.
func (s *Sessions) Get(id string) (*Console, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	if !s.now().Before(sess.expiresAt) {
		s.closeLocked(id, sess)
		return nil, false
	}
	return sess.console, true
}

// Logout закрывает сессию. Возвращает false, если сессии уже нет.
func (s *Sessions) Logout(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return false
	}
	s.closeLocked(id, sess)
	logger.Log.Info("admin session closed", zap.String("session", id))
	return true
}

func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.sessions)
}

func (s *Sessions) closeLocked(id string, sess session) {
	sess.console.Logout()
	delete(s.sessions, id)
}

func (s *Sessions) pruneLocked() {
	now := s.now()
	for id, sess := range s.sessions {
		if !now.Before(sess.expiresAt) {
			s.closeLocked(id, sess)
		}
	}
}
