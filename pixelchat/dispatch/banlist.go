package dispatch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Ban is a single ban list entry. A zero Expiry marks a permanent ban;
// otherwise it is the unix millisecond timestamp the ban lifts at.
type Ban struct {
	Name   string `json:"name"`
	UUID   string `json:"uuid,omitempty"`
	Reason string `json:"reason"`
	Expiry int64  `json:"expiry,omitempty"`
}

// Permanent reports whether the ban never expires.
func (b Ban) Permanent() bool {
	return b.Expiry == 0
}

// ExpiryTime returns the time a temporary ban lifts at.
func (b Ban) ExpiryTime() time.Time {
	return time.UnixMilli(b.Expiry)
}

// BanList is the persisted set of active bans, keyed by lowercase player
// name. It backs both escalation enforcement and the login allower.
type BanList struct {
	path string

	mu   sync.Mutex
	bans map[string]Ban
}

// NewBanList loads the ban list at path, creating an empty one when the file
// does not exist yet.
func NewBanList(path string) (*BanList, error) {
	l := &BanList{
		path: path,
		bans: make(map[string]Ban),
	}
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create ban list directory: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return l, nil
		}
		return nil, fmt.Errorf("failed to read ban list: %w", err)
	}
	if err = json.Unmarshal(data, &l.bans); err != nil {
		return nil, fmt.Errorf("failed to parse ban list: %w", err)
	}
	return l, nil
}

// saveLocked ...
func (l *BanList) saveLocked() error {
	data, err := json.MarshalIndent(l.bans, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode ban list: %w", err)
	}
	if err = os.WriteFile(l.path, data, os.ModePerm); err != nil {
		return fmt.Errorf("failed to write ban list: %w", err)
	}
	return nil
}

// Add records a ban, replacing any existing entry for the same player.
func (l *BanList) Add(b Ban) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.bans[strings.ToLower(b.Name)] = b
	return l.saveLocked()
}

// Remove lifts a ban by player name, reporting whether an entry existed.
func (l *BanList) Remove(name string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	key := strings.ToLower(name)
	if _, ok := l.bans[key]; !ok {
		return false, nil
	}
	delete(l.bans, key)
	return true, l.saveLocked()
}

// Lookup returns the active ban for a player name, pruning the entry when a
// temporary ban has expired.
func (l *BanList) Lookup(name string) (Ban, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	key := strings.ToLower(name)
	b, ok := l.bans[key]
	if !ok {
		return Ban{}, false
	}
	if !b.Permanent() && time.Now().After(b.ExpiryTime()) {
		delete(l.bans, key)
		_ = l.saveLocked()
		return Ban{}, false
	}
	return b, true
}
