package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/inventario-planchas/internal/domain/entity"
	"github.com/jhoicas/inventario-planchas/internal/domain/repository"
)

var _ repository.SessionStore = (*SessionStore)(nil)

// SessionStore guarda sesiones en el proceso. Se usa cuando no hay REDIS_ADDR; las sesiones
// no sobreviven un reinicio.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]entity.Session
	now      func() time.Time
}

// NewSessionStore construye el almacén de sesiones.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]entity.Session), now: time.Now}
}

// Save guarda o reemplaza la sesión.
func (s *SessionStore) Save(_ context.Context, session *entity.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = *session
	return nil
}

// Load devuelve (nil, nil) si la sesión no existe o venció; las vencidas se purgan.
func (s *SessionStore) Load(_ context.Context, id string) (*entity.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, nil
	}
	if session.Expired(s.now()) {
		delete(s.sessions, id)
		return nil, nil
	}
	return &session, nil
}

// Delete elimina la sesión; no falla si no existe.
func (s *SessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
