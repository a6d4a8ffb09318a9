package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/inventario-planchas/internal/domain/entity"
	"github.com/jhoicas/inventario-planchas/internal/domain/repository"
	"github.com/redis/go-redis/v9"
)

var _ repository.SessionStore = (*SessionStore)(nil)

// sessionRecord es la forma serializada de una sesión.
// Key: session:<id>; expira junto con la sesión.
type sessionRecord struct {
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionStore implementa repository.SessionStore sobre Redis.
type SessionStore struct {
	client *redis.Client
	now    func() time.Time
}

// NewSessionStore envuelve el cliente.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client, now: time.Now}
}

// Save guarda la sesión con TTL hasta su vencimiento.
func (s *SessionStore) Save(ctx context.Context, session *entity.Session) error {
	var ttl time.Duration
	if !session.ExpiresAt.IsZero() {
		ttl = session.ExpiresAt.Sub(s.now())
		if ttl <= 0 {
			return nil
		}
	}
	body, err := json.Marshal(sessionRecord{
		UserID:    session.Principal.UserID,
		Name:      session.Principal.Name,
		Email:     session.Principal.Email,
		Role:      session.Principal.Role,
		CreatedAt: session.CreatedAt,
		ExpiresAt: session.ExpiresAt,
	})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.client.Set(ctx, key(session.ID), body, ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Load devuelve (nil, nil) si la sesión no existe o venció.
func (s *SessionStore) Load(ctx context.Context, id string) (*entity.Session, error) {
	body, err := s.client.Get(ctx, key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("load session: %w", err)
	}
	var rec sessionRecord
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	session := &entity.Session{
		ID: id,
		Principal: entity.Principal{
			UserID: rec.UserID,
			Name:   rec.Name,
			Email:  rec.Email,
			Role:   rec.Role,
		},
		CreatedAt: rec.CreatedAt,
		ExpiresAt: rec.ExpiresAt,
	}
	if session.Expired(s.now()) {
		return nil, nil
	}
	return session, nil
}

// Delete elimina la sesión; no falla si no existe.
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, key(id)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func key(id string) string {
	return "session:" + id
}
