/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package history keeps in-memory undo/redo stacks of object transform
// snapshots, so interactive tools can checkpoint an object's transform
// before an edit and walk back through it.
package history

import (
	"sync"
	"time"

	"motionkit/internal/object"
)

// Snapshot is one recorded transform state for an object.
type Snapshot struct {
	ObjectID string
	State    object.State
	TS       time.Time
}

// Config controls depth caps and coalescing behavior.
type Config struct {
	// MaxPerObject limits snapshots per object (0 means unlimited).
	MaxPerObject int
	// MaxTotal is a soft cap across all objects; oldest entries are pruned
	// when exceeded (0 means unlimited).
	MaxTotal int
	// MinInterval coalesces snapshots captured within the interval for the
	// same object, replacing the previous one instead of pushing a new entry.
	MinInterval time.Duration
}

// Manager provides per-object undo/redo stacks. Safe for concurrent use.
type Manager struct {
	cfg   Config
	mu    sync.Mutex
	undo  map[string][]Snapshot
	redo  map[string][]Snapshot
	total int
}

func NewManager(cfg Config) *Manager {
	if cfg.MinInterval <= 0 {
		cfg.MinInterval = 250 * time.Millisecond
	}
	return &Manager{cfg: cfg, undo: make(map[string][]Snapshot), redo: make(map[string][]Snapshot)}
}

// Push records a snapshot. If within MinInterval of the last snapshot for
// the same object, it replaces that one. Any push clears the object's redo
// stack.
func (m *Manager) Push(s Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stack := m.undo[s.ObjectID]
	if n := len(stack); n > 0 && s.TS.Sub(stack[n-1].TS) < m.cfg.MinInterval {
		stack[n-1] = s
		m.redo[s.ObjectID] = nil
		return
	}
	m.undo[s.ObjectID] = append(stack, s)
	m.total++
	m.redo[s.ObjectID] = nil
	m.enforceCapsLocked(s.ObjectID)
}

// Undo pops the latest snapshot for the object onto its redo stack.
func (m *Manager) Undo(objectID string) (Snapshot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stack := m.undo[objectID]
	if len(stack) == 0 {
		return Snapshot{}, false
	}
	s := stack[len(stack)-1]
	m.undo[objectID] = stack[:len(stack)-1]
	m.total--
	m.redo[objectID] = append(m.redo[objectID], s)
	return s, true
}

// Redo pops from the redo stack and pushes back onto undo.
func (m *Manager) Redo(objectID string) (Snapshot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r := m.redo[objectID]
	if len(r) == 0 {
		return Snapshot{}, false
	}
	s := r[len(r)-1]
	m.redo[objectID] = r[:len(r)-1]
	m.undo[objectID] = append(m.undo[objectID], s)
	m.total++
	m.enforceCapsLocked(objectID)
	return s, true
}

// Clear drops both stacks for an object.
func (m *Manager) Clear(objectID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.total -= len(m.undo[objectID])
	delete(m.undo, objectID)
	delete(m.redo, objectID)
	if m.total < 0 {
		m.total = 0
	}
}

// Stats returns current sizes for diagnostics.
func (m *Manager) Stats() (objects, snapshots int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.undo), m.total
}

func (m *Manager) enforceCapsLocked(objectID string) {
	if m.cfg.MaxPerObject > 0 {
		stack := m.undo[objectID]
		if len(stack) > m.cfg.MaxPerObject {
			toDrop := len(stack) - m.cfg.MaxPerObject
			m.total -= toDrop
			m.undo[objectID] = append([]Snapshot{}, stack[toDrop:]...)
		}
	}
	// Global cap: prune the oldest snapshot across all objects.
	for m.cfg.MaxTotal > 0 && m.total > m.cfg.MaxTotal {
		oldestID := ""
		var oldestTS time.Time
		for id, stack := range m.undo {
			if len(stack) == 0 {
				continue
			}
			if oldestID == "" || stack[0].TS.Before(oldestTS) {
				oldestID = id
				oldestTS = stack[0].TS
			}
		}
		if oldestID == "" {
			break
		}
		stack := m.undo[oldestID]
		m.undo[oldestID] = stack[1:]
		m.total--
		if len(m.undo[oldestID]) == 0 {
			delete(m.undo, oldestID)
		}
	}
}
