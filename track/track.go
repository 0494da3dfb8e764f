package track

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/shirou/gopsutil/v3/process"

	"gungnir/dispatch"
)

// Session is one terminal-mode launch. Records outlive the CLI run that
// created them.
type Session struct {
	ID        string    `json:"id"`
	Pod       string    `json:"pod"`
	Namespace string    `json:"namespace"`
	Cluster   string    `json:"cluster"`
	PID       int       `json:"pid"`
	Argv      []string  `json:"argv"`
	Command   []string  `json:"command"` // remote command alone; Argv includes the launcher
	StartedAt time.Time `json:"startedAt"`
}

// Alive reports whether the launched process still exists. PID reuse
// makes this a best-effort check.
func (s Session) Alive() bool {
	ok, err := process.PidExists(int32(s.PID))
	return err == nil && ok
}

// Store persists sessions as a JSON list on disk.
type Store struct {
	path string
}

func NewStore(path string) *Store { return &Store{path: path} }

func (s *Store) Load() ([]Session, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var sessions []Session
	if err := json.Unmarshal(data, &sessions); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	return sessions, nil
}

// Record appends a session for a successful terminal launch. Shaped to
// hang off the dispatcher's OnLaunch hook.
func (s *Store) Record(cluster string, target dispatch.Target, pid int, argv, command []string) (Session, error) {
	sess := Session{
		ID:        uuid.New().String(),
		Pod:       target.Name,
		Namespace: target.Namespace,
		Cluster:   cluster,
		PID:       pid,
		Argv:      argv,
		Command:   command,
		StartedAt: time.Now().UTC(),
	}
	sessions, err := s.Load()
	if err != nil {
		return Session{}, err
	}
	return sess, s.save(append(sessions, sess))
}

// Prune drops sessions whose process is gone and returns how many were
// removed.
func (s *Store) Prune() (int, error) {
	sessions, err := s.Load()
	if err != nil {
		return 0, err
	}
	kept := sessions[:0]
	for _, sess := range sessions {
		if sess.Alive() {
			kept = append(kept, sess)
		}
	}
	removed := len(sessions) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	return removed, s.save(kept)
}

func (s *Store) save(sessions []Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(sessions, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}
