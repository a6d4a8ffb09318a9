package redis_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-planchas/internal/domain/entity"
	infraredis "github.com/jhoicas/inventario-planchas/internal/infrastructure/redis"
)

// Requiere un Redis real: REDIS_TEST_ADDR=localhost:6379 go test ./internal/infrastructure/redis/...
func connect(t *testing.T) *infraredis.SessionStore {
	t.Helper()
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR no definido")
	}
	client, err := infraredis.Connect(context.Background(), infraredis.Config{Addr: addr})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return infraredis.NewSessionStore(client)
}

func TestSessionStore_GuardarCargarEliminar(t *testing.T) {
	store := connect(t)
	ctx := context.Background()
	session := &entity.Session{
		ID:        uuid.New().String(),
		Principal: entity.Principal{UserID: "u-1", Name: "Ana", Email: "ana@planchas.gt", Role: entity.RoleAdmon},
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		ExpiresAt: time.Now().UTC().Add(time.Hour).Truncate(time.Second),
	}

	require.NoError(t, store.Save(ctx, session))
	loaded, err := store.Load(ctx, session.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, session.Principal, loaded.Principal)
	assert.True(t, session.ExpiresAt.Equal(loaded.ExpiresAt))

	require.NoError(t, store.Delete(ctx, session.ID))
	loaded, err = store.Load(ctx, session.ID)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestSessionStore_InexistenteDevuelveNil(t *testing.T) {
	store := connect(t)
	loaded, err := store.Load(context.Background(), uuid.New().String())
	require.NoError(t, err)
	assert.Nil(t, loaded)
}
