// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// =============================================================================
// SESSION MANAGER
// =============================================================================

// Event names an operator action counted by the Manager.
type Event string

const (
	EventMessageSent    Event = "message_sent"
	EventTemplatePicked Event = "template_picked"
	EventFileAttached   Event = "file_attached"
	EventFileRemoved    Event = "file_removed"
	EventNotesSaved     Event = "notes_saved"
)

// Manager tracks session identity, activity and action counts.
// Safe for concurrent use.
type Manager struct {
	mu sync.Mutex

	sessionID    string
	startTime    time.Time
	lastActivity time.Time
	counts       map[Event]int

	now func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// WithSessionID fixes the session identifier.
func WithSessionID(id string) Option {
	return func(m *Manager) {
		if id != "" {
			m.sessionID = id
		}
	}
}

// NewManager creates a session starting now.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		sessionID: uuid.NewString(),
		counts:    make(map[Event]int),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.startTime = m.now()
	m.lastActivity = m.startTime
	return m
}

// =============================================================================
// SESSION STATE
// =============================================================================

// SessionID returns the current session ID.
func (m *Manager) SessionID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessionID
}

// StartTime returns when the session started.
func (m *Manager) StartTime() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.startTime
}

// Duration returns how long the session has been open.
func (m *Manager) Duration() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now().Sub(m.startTime)
}

// =============================================================================
// ACTIVITY TRACKING
// =============================================================================

// RecordActivity updates the last activity timestamp.
// Called on every key press.
func (m *Manager) RecordActivity() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastActivity = m.now()
}

// Count records one occurrence of ev.
func (m *Manager) Count(ev Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts[ev]++
	m.lastActivity = m.now()
}

// Counted returns how many times ev was recorded.
func (m *Manager) Counted(ev Event) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts[ev]
}

// =============================================================================
// SESSION STATUS
// =============================================================================

// Status is a snapshot of the session.
type Status struct {
	SessionID string
	StartTime time.Time
	Duration  time.Duration
	IdleTime  time.Duration
	Counts    map[Event]int
}

// GetStatus returns the current session status.
func (m *Manager) GetStatus() Status {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	counts := make(map[Event]int, len(m.counts))
	for k, v := range m.counts {
		counts[k] = v
	}
	return Status{
		SessionID: m.sessionID,
		StartTime: m.startTime,
		Duration:  now.Sub(m.startTime),
		IdleTime:  now.Sub(m.lastActivity),
		Counts:    counts,
	}
}

// Fields renders the status as zap fields, counters in name order.
func (s Status) Fields() []zap.Field {
	fields := []zap.Field{
		zap.Time("started", s.StartTime),
		zap.String("duration", FormatDuration(s.Duration)),
		zap.String("idle", FormatDuration(s.IdleTime)),
	}
	names := make([]string, 0, len(s.Counts))
	for ev := range s.Counts {
		names = append(names, string(ev))
	}
	sort.Strings(names)
	for _, name := range names {
		fields = append(fields, zap.Int(name, s.Counts[Event(name)]))
	}
	return fields
}

// FormatDuration returns a human-readable duration string.
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	mins := int(d.Minutes())
	secs := int(d.Seconds()) % 60
	if secs == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	return fmt.Sprintf("%dm %ds", mins, secs)
}
