package session

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ppauth/internal/domain"
)

func newSession(token string) domain.Session {
	return domain.Session{
		Token:     token,
		ExpiresAt: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		Host:      "api.example.com",
		Port:      8443,
		Credentials: domain.Credentials{
			Username: "admin",
			Password: "admin123",
		},
		Timezone: "UTC",
	}
}

func TestStore_EmptyByDefault(t *testing.T) {
	store := NewStore()

	_, ok := store.Get()
	assert.False(t, ok)
}

func TestStore_SetAndGet(t *testing.T) {
	store := NewStore()
	expected := newSession("token-1")

	store.Set(expected)

	got, ok := store.Get()
	require.True(t, ok)
	assert.Equal(t, expected, got)
}

func TestStore_GetReturnsCopy(t *testing.T) {
	store := NewStore()
	store.Set(newSession("token-1"))

	got, _ := store.Get()
	got.Token = "mutated"
	got.Credentials.Password = "mutated"

	again, _ := store.Get()
	assert.Equal(t, "token-1", again.Token)
	assert.Equal(t, "admin123", again.Credentials.Password)
}

func TestStore_SetReplacesWholesale(t *testing.T) {
	store := NewStore()
	store.Set(newSession("token-1"))

	replacement := domain.Session{
		Token:     "token-2",
		ExpiresAt: time.Date(2031, 1, 1, 0, 0, 0, 0, time.UTC),
		Host:      "other.example.com",
		Port:      443,
	}
	store.Set(replacement)

	got, ok := store.Get()
	require.True(t, ok)
	assert.Equal(t, replacement, got)
	assert.Empty(t, got.Credentials.Username, "no merge with the previous session")
}

func TestStore_Clear(t *testing.T) {
	store := NewStore()
	store.Set(newSession("token-1"))

	store.Clear()

	_, ok := store.Get()
	assert.False(t, ok)
}

func TestStore_ConcurrentAccess(t *testing.T) {
	store := NewStore()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			store.Set(newSession(fmt.Sprintf("token-%d", i)))
		}(i)
		go func() {
			defer wg.Done()
			if got, ok := store.Get(); ok {
				assert.NotEmpty(t, got.Token)
			}
		}()
	}
	wg.Wait()

	got, ok := store.Get()
	require.True(t, ok)
	assert.Contains(t, got.Token, "token-")
}
