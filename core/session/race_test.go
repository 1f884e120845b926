package session_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dilekatharuki/privacycore/core/session"
)

// TestAddMessage_ConcurrentSameSession verifies that K racing appends against
// one session produce exactly K entries with no loss or duplication.
func TestAddMessage_ConcurrentSameSession(t *testing.T) {
	t.Parallel()

	for _, k := range []int{2, 10, 100} {
		t.Run(fmt.Sprintf("k=%d", k), func(t *testing.T) {
			t.Parallel()

			store := session.NewStore()
			id := store.Create("")

			var wg sync.WaitGroup
			wg.Add(k)
			for i := range k {
				go func() {
					defer wg.Done()
					err := store.AddMessage(id, fmt.Sprintf("message-%d", i), "ok", nil)
					assert.NoError(t, err)
				}()
			}
			wg.Wait()

			sess, err := store.Get(id)
			require.NoError(t, err)
			require.Len(t, sess.History, k)

			// Every message arrived exactly once, in some total order.
			seen := make(map[string]bool, k)
			for _, entry := range sess.History {
				assert.False(t, seen[entry.UserMessage], "duplicate entry %q", entry.UserMessage)
				seen[entry.UserMessage] = true
			}
			assert.Len(t, seen, k)
		})
	}
}

// TestAddMessage_ConcurrentAcrossSessions verifies that unrelated sessions do
// not interfere with each other under concurrent writes.
func TestAddMessage_ConcurrentAcrossSessions(t *testing.T) {
	t.Parallel()

	store := session.NewStore()

	const sessions = 20
	const perSession = 25

	ids := make([]uuid.UUID, sessions)
	for i := range ids {
		ids[i] = store.Create("")
	}

	var wg sync.WaitGroup
	wg.Add(sessions)
	for _, id := range ids {
		go func() {
			defer wg.Done()
			for j := range perSession {
				err := store.AddMessage(id, fmt.Sprintf("m-%d", j), "ok", nil)
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	for _, id := range ids {
		sess, err := store.Get(id)
		require.NoError(t, err)
		assert.Len(t, sess.History, perSession)
	}

	gotSessions, gotMessages := store.Totals()
	assert.Equal(t, sessions, gotSessions)
	assert.Equal(t, sessions*perSession, gotMessages)
}

// TestTotals_ConcurrentWithDelete verifies that a snapshot taken while
// sessions are being deleted neither panics nor double-counts: every observed
// total stays within the live bounds.
func TestTotals_ConcurrentWithDelete(t *testing.T) {
	t.Parallel()

	store := session.NewStore()

	const sessions = 50
	ids := make([]uuid.UUID, sessions)
	for i := range ids {
		ids[i] = store.Create("")
		require.NoError(t, store.AddMessage(ids[i], "hello", "hi", nil))
	}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for _, id := range ids {
			store.Delete(id)
		}
	}()

	go func() {
		defer wg.Done()
		for range 100 {
			gotSessions, gotMessages := store.Totals()
			assert.GreaterOrEqual(t, gotSessions, 0)
			assert.LessOrEqual(t, gotSessions, sessions)
			assert.Equal(t, gotSessions, gotMessages, "one message per live session")
		}
	}()

	wg.Wait()

	gotSessions, gotMessages := store.Totals()
	assert.Zero(t, gotSessions)
	assert.Zero(t, gotMessages)
}

// TestDelete_ConcurrentWithAddMessage verifies that an append racing a delete
// either lands before the delete or fails with ErrSessionNotFound; it never
// resurrects the session.
func TestDelete_ConcurrentWithAddMessage(t *testing.T) {
	t.Parallel()

	for range 50 {
		store := session.NewStore()
		id := store.Create("")

		var wg sync.WaitGroup
		wg.Add(2)

		go func() {
			defer wg.Done()
			_ = store.AddMessage(id, "racing", "ok", nil)
		}()
		go func() {
			defer wg.Done()
			store.Delete(id)
		}()

		wg.Wait()

		_, err := store.Get(id)
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
		assert.Zero(t, store.Len())
	}
}
