package memory

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/evananthony17/discord-ask-bot-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(id domain.RequesterID) *domain.DisambiguationSession {
	return domain.NewDisambiguationSession(id, domain.SessionKindHomonym, nil, "q", time.Now())
}

func TestStoreInsertIfAbsent(t *testing.T) {
	t.Parallel()

	store := NewStore()
	first := newSession("u1")

	require.True(t, store.InsertIfAbsent(first))
	assert.False(t, store.InsertIfAbsent(newSession("u1")))
	assert.True(t, store.InsertIfAbsent(newSession("u2")))
	assert.Equal(t, 2, store.Len())

	got, ok := store.Get("u1")
	require.True(t, ok)
	assert.Same(t, first, got)
}

func TestStoreRemoveOnlyMatchingSession(t *testing.T) {
	t.Parallel()

	store := NewStore()
	current := newSession("u1")
	stale := newSession("u1")
	require.True(t, store.InsertIfAbsent(current))

	assert.False(t, store.Remove(stale))
	assert.True(t, store.Remove(current))
	assert.False(t, store.Remove(current))

	_, ok := store.Get("u1")
	assert.False(t, ok)
	assert.Zero(t, store.Len())
}

func TestStoreConcurrentInsertAdmitsOne(t *testing.T) {
	t.Parallel()

	store := NewStore()
	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if store.InsertIfAbsent(newSession("u1")) {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
	assert.Equal(t, 1, store.Len())
}
