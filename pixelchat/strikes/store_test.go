package strikes

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore ...
func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "player_strikes.json"))
	require.NoError(t, err)
	return s
}

func TestStore_RecordStrike_IncrementsAndAppends(t *testing.T) {
	s := newTestStore(t)
	id := uuid.NewString()

	for i := 1; i <= 5; i++ {
		count, action, err := s.RecordStrike(id, "Steve", "spam", nil)
		require.NoError(t, err)
		require.Equal(t, i, count)
		require.Equal(t, ActionNone, action)
	}

	rec, ok := s.Lookup(id)
	require.True(t, ok)
	require.Equal(t, "Steve", rec.Name)
	require.Equal(t, 5, rec.Strikes)
	require.Len(t, rec.History, 5)
}

func TestStore_RecordStrike_PersistsActionWithEntry(t *testing.T) {
	s := newTestStore(t)
	id := uuid.NewString()

	_, action, err := s.RecordStrike(id, "Steve", "spam", func(count int) Action {
		require.Equal(t, 1, count)
		return ActionKick
	})
	require.NoError(t, err)
	require.Equal(t, ActionKick, action)

	rec, _ := s.Lookup(id)
	require.Len(t, rec.History, 1)
	for _, entry := range rec.History {
		require.Equal(t, "spam", entry.Reason)
		require.Equal(t, ActionKick, entry.Action)
	}
}

func TestStore_RecordStrike_UpdatesDisplayName(t *testing.T) {
	s := newTestStore(t)
	id := uuid.NewString()

	_, _, err := s.RecordStrike(id, "OldName", "spam", nil)
	require.NoError(t, err)
	_, _, err = s.RecordStrike(id, "NewName", "spam", nil)
	require.NoError(t, err)

	rec, _ := s.Lookup(id)
	require.Equal(t, "NewName", rec.Name)
}

func TestStore_Reset_KeepsHistory(t *testing.T) {
	s := newTestStore(t)
	id := uuid.NewString()

	for i := 0; i < 3; i++ {
		_, _, err := s.RecordStrike(id, "Steve", "spam", nil)
		require.NoError(t, err)
	}
	require.NoError(t, s.Reset(id))

	require.Equal(t, 0, s.Count(id))
	rec, ok := s.Lookup(id)
	require.True(t, ok)
	require.Len(t, rec.History, 3)
}

func TestStore_Remove_DeletesRecord(t *testing.T) {
	s := newTestStore(t)
	id := uuid.NewString()

	_, _, err := s.RecordStrike(id, "Steve", "spam", nil)
	require.NoError(t, err)
	require.NoError(t, s.Remove(id))

	require.Equal(t, 0, s.Count(id))
	_, ok := s.Lookup(id)
	require.False(t, ok)
}

func TestStore_ResetAll(t *testing.T) {
	s := newTestStore(t)
	a, b := uuid.NewString(), uuid.NewString()

	_, _, err := s.RecordStrike(a, "Steve", "spam", nil)
	require.NoError(t, err)
	_, _, err = s.RecordStrike(b, "Alex", "spam", nil)
	require.NoError(t, err)

	require.NoError(t, s.ResetAll())
	require.Equal(t, 0, s.Count(a))
	require.Equal(t, 0, s.Count(b))

	rec, ok := s.Lookup(a)
	require.True(t, ok)
	require.Len(t, rec.History, 1)
}

func TestStore_ReloadFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "player_strikes.json")
	s, err := NewStore(path)
	require.NoError(t, err)

	id := uuid.NewString()
	_, _, err = s.RecordStrike(id, "Steve", "spam", nil)
	require.NoError(t, err)

	reloaded, err := NewStore(path)
	require.NoError(t, err)
	require.Equal(t, 1, reloaded.Count(id))

	rec, ok := reloaded.Lookup(id)
	require.True(t, ok)
	require.Equal(t, "Steve", rec.Name)
	require.Len(t, rec.History, 1)
}

func TestStore_FindByName(t *testing.T) {
	s := newTestStore(t)
	id := uuid.NewString()

	_, _, err := s.RecordStrike(id, "Steve", "spam", nil)
	require.NoError(t, err)

	found, ok := s.FindByName("steve")
	require.True(t, ok)
	require.Equal(t, id, found)

	_, ok = s.FindByName("Alex")
	require.False(t, ok)
}

func TestStore_ConcurrentRecordStrikes(t *testing.T) {
	s := newTestStore(t)
	id := uuid.NewString()

	const workers = 16
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, _, err := s.RecordStrike(id, "Steve", "spam", nil)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	require.Equal(t, workers, s.Count(id))
	rec, _ := s.Lookup(id)
	require.Len(t, rec.History, workers)
}
