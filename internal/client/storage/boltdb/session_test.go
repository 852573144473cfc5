package boltdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/colorwin/internal/client/storage"
)

// создаём тестовое BoltDB хранилище с session bucket
func createTestStorage(t *testing.T) (*Storage, func()) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "session_test.db")

	ctx := context.Background()
	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	cleanup := func() {
		// Закрываем БД
		require.NoError(t, store.Close())
		require.NoError(t, os.RemoveAll(tmpDir))
	}

	return store, cleanup
}

func TestStorage_SaveGetDeleteSession(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	session := &storage.SessionData{
		UserID:      "user-id-123",
		Username:    "testuser",
		Email:       "test@example.com",
		AccessToken: "access-token",
		Balance:     500,
		SavedAt:     time.Now().Unix(),
	}

	// Проверяем что GetSession до сохранения выдаст ErrSessionNotFound
	_, err := store.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)

	// Сохраняем сессию
	err = store.SaveSession(ctx, session)
	require.NoError(t, err)

	// Получаем сессию и сравниваем
	got, err := store.GetSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, session.UserID, got.UserID)
	assert.Equal(t, session.Username, got.Username)
	assert.Equal(t, session.Email, got.Email)
	assert.Equal(t, session.AccessToken, got.AccessToken)
	assert.Equal(t, session.Balance, got.Balance)
	assert.Equal(t, session.SavedAt, got.SavedAt)

	// Удаляем сессию
	err = store.DeleteSession(ctx)
	require.NoError(t, err)

	// После удаления GetSession должен вернуть ErrSessionNotFound
	_, err = store.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)

	// Повторное удаление также ErrSessionNotFound
	err = store.DeleteSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestStorage_SaveSessionOverwrites(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	first := &storage.SessionData{
		UserID:      "user-id-123",
		Username:    "testuser",
		AccessToken: "token-1",
		Balance:     100,
		SavedAt:     time.Now().Unix(),
	}
	require.NoError(t, store.SaveSession(ctx, first))

	// Снимок хранится в единственном экземпляре: повторное сохранение
	// полностью заменяет предыдущее
	second := &storage.SessionData{
		UserID:      "user-id-123",
		Username:    "testuser",
		AccessToken: "token-2",
		Balance:     550,
		SavedAt:     time.Now().Unix(),
	}
	require.NoError(t, store.SaveSession(ctx, second))

	got, err := store.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-2", got.AccessToken)
	assert.Equal(t, 550.0, got.Balance)
}
