package dispatch

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// newTestBanList ...
func newTestBanList(t *testing.T) *BanList {
	t.Helper()
	l, err := NewBanList(filepath.Join(t.TempDir(), "bans.json"))
	require.NoError(t, err)
	return l
}

func TestBanList_AddLookup(t *testing.T) {
	l := newTestBanList(t)

	require.NoError(t, l.Add(Ban{Name: "Steve", Reason: "spam"}))

	b, ok := l.Lookup("steve")
	require.True(t, ok)
	require.Equal(t, "Steve", b.Name)
	require.Equal(t, "spam", b.Reason)
	require.True(t, b.Permanent())

	_, ok = l.Lookup("Alex")
	require.False(t, ok)
}

func TestBanList_Remove(t *testing.T) {
	l := newTestBanList(t)

	require.NoError(t, l.Add(Ban{Name: "Steve", Reason: "spam"}))

	removed, err := l.Remove("STEVE")
	require.NoError(t, err)
	require.True(t, removed)

	removed, err = l.Remove("Steve")
	require.NoError(t, err)
	require.False(t, removed)

	_, ok := l.Lookup("Steve")
	require.False(t, ok)
}

func TestBanList_ExpiredTemporaryBanPruned(t *testing.T) {
	l := newTestBanList(t)

	expired := Ban{Name: "Steve", Reason: "spam", Expiry: time.Now().Add(-time.Minute).UnixMilli()}
	require.NoError(t, l.Add(expired))

	_, ok := l.Lookup("Steve")
	require.False(t, ok)

	// A second lookup still misses, the entry was deleted.
	_, ok = l.Lookup("Steve")
	require.False(t, ok)
}

func TestBanList_ActiveTemporaryBan(t *testing.T) {
	l := newTestBanList(t)

	expiry := time.Now().Add(time.Hour).UnixMilli()
	require.NoError(t, l.Add(Ban{Name: "Steve", Reason: "spam", Expiry: expiry}))

	b, ok := l.Lookup("Steve")
	require.True(t, ok)
	require.False(t, b.Permanent())
	require.Equal(t, expiry, b.Expiry)
}

func TestBanList_ReloadFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bans.json")
	l, err := NewBanList(path)
	require.NoError(t, err)
	require.NoError(t, l.Add(Ban{Name: "Steve", Reason: "spam"}))

	reloaded, err := NewBanList(path)
	require.NoError(t, err)
	b, ok := reloaded.Lookup("Steve")
	require.True(t, ok)
	require.Equal(t, "spam", b.Reason)
}
