package strikes

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// timeKeyLayout is the format used for strike history keys.
const timeKeyLayout = "2006-01-02 15:04:05"

// Store is a durable per-player violation ledger, keyed by player UUID.
// Every mutation is flushed to disk before the call returns.
type Store struct {
	path string

	mu      sync.Mutex
	records map[string]*Record
	keys    map[string]*sync.Mutex
}

// NewStore loads the store document at path, creating an empty one when it
// does not exist yet.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:    path,
		records: make(map[string]*Record),
		keys:    make(map[string]*sync.Mutex),
	}
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create strike store directory: %w", err)
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// load ...
func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read strike store: %w", err)
	}
	if err = json.Unmarshal(data, &s.records); err != nil {
		return fmt.Errorf("failed to parse strike store: %w", err)
	}
	return nil
}

// saveLocked writes the document to disk. Callers must hold s.mu.
func (s *Store) saveLocked() error {
	data, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode strike store: %w", err)
	}
	if err = os.WriteFile(s.path, data, os.ModePerm); err != nil {
		return fmt.Errorf("failed to write strike store: %w", err)
	}
	return nil
}

// keyLock returns the mutex serializing read-modify-write sequences for a
// single player UUID, so unrelated players never block each other's strikes.
func (s *Store) keyLock(uuid string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.keys[uuid]
	if !ok {
		l = &sync.Mutex{}
		s.keys[uuid] = l
	}
	return l
}

// Count returns the player's current strike count, 0 when no record exists.
func (s *Store) Count(uuid string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[uuid]
	if !ok {
		return 0
	}
	return rec.Strikes
}

// Lookup returns a copy of the player's record.
func (s *Store) Lookup(uuid string) (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[uuid]
	if !ok {
		return Record{}, false
	}
	cp := Record{Name: rec.Name, Strikes: rec.Strikes, History: make(map[string]HistoryEntry, len(rec.History))}
	for k, v := range rec.History {
		cp.History[k] = v
	}
	return cp, true
}

// FindByName returns the UUID of the last-known record carrying the given
// display name, allowing administrative commands to target offline players.
func (s *Store) FindByName(name string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for uuid, rec := range s.records {
		if strings.EqualFold(rec.Name, name) {
			return uuid, true
		}
	}
	return "", false
}

// RecordStrike increments the player's strike count, decides the enforcement
// action for the new count via decide, and appends a history entry holding
// both the reason and the decided action. The record is persisted before the
// call returns. The returned count includes the strike just recorded.
func (s *Store) RecordStrike(uuid, name, reason string, decide func(count int) Action) (int, Action, error) {
	kl := s.keyLock(uuid)
	kl.Lock()
	defer kl.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[uuid]
	if !ok {
		rec = &Record{History: make(map[string]HistoryEntry)}
		s.records[uuid] = rec
	}
	if rec.History == nil {
		rec.History = make(map[string]HistoryEntry)
	}

	rec.Name = name
	rec.Strikes++

	action := ActionNone
	if decide != nil {
		action = decide(rec.Strikes)
	}

	key := time.Now().Format(timeKeyLayout)
	for n := 2; ; n++ {
		if _, exists := rec.History[key]; !exists {
			break
		}
		key = fmt.Sprintf("%s #%d", time.Now().Format(timeKeyLayout), n)
	}
	rec.History[key] = HistoryEntry{Reason: reason, Action: action}

	return rec.Strikes, action, s.saveLocked()
}

// Reset sets the player's strike count back to 0, keeping the history intact.
func (s *Store) Reset(uuid string) error {
	kl := s.keyLock(uuid)
	kl.Lock()
	defer kl.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[uuid]
	if !ok {
		return nil
	}
	rec.Strikes = 0
	return s.saveLocked()
}

// Remove deletes the player's record entirely, history included.
func (s *Store) Remove(uuid string) error {
	kl := s.keyLock(uuid)
	kl.Lock()
	defer kl.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[uuid]; !ok {
		return nil
	}
	delete(s.records, uuid)
	return s.saveLocked()
}

// ResetAll zeroes every record's strike count, used when strikes are
// configured to clear on server restart.
func (s *Store) ResetAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range s.records {
		rec.Strikes = 0
	}
	return s.saveLocked()
}
