package editor

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"artiste_site/internal/lib/logger/sl"

	"github.com/google/uuid"
)

// Manager хранит открытые сессии редактора, одну на секцию
type Manager struct {
	log   *slog.Logger
	saver Saver
	sched Scheduler
	delay time.Duration

	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
}

func NewManager(log *slog.Logger, saver Saver, sched Scheduler, delay time.Duration) *Manager {
	if sched == nil {
		sched = RealScheduler
	}
	return &Manager{
		log:      log,
		saver:    saver,
		sched:    sched,
		delay:    delay,
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Open returns the session of a section, loading its draft on first use.
func (m *Manager) Open(ctx context.Context, sectionID uuid.UUID) (Snapshot, error) {
	const op = "editor.Manager.Open"

	m.mu.Lock()
	if sess, ok := m.sessions[sectionID]; ok {
		m.mu.Unlock()
		return sess.State(), nil
	}
	m.mu.Unlock()

	section, err := m.saver.GetSection(ctx, sectionID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%s: %w", op, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[sectionID]
	if !ok {
		sess = newSession(m.log, m.saver, m.sched, m.delay, section)
		m.sessions[sectionID] = sess
	}

	return sess.State(), nil
}

func (m *Manager) Mutate(sectionID uuid.UUID, mutations ...Mutation) (Snapshot, error) {
	const op = "editor.Manager.Mutate"

	sess, err := m.session(sectionID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%s: %w", op, err)
	}

	snap, err := sess.Mutate(mutations...)
	if err != nil {
		return snap, fmt.Errorf("%s: %w", op, err)
	}

	return snap, nil
}

func (m *Manager) Save(ctx context.Context, sectionID uuid.UUID) (Snapshot, error) {
	const op = "editor.Manager.Save"

	sess, err := m.session(sectionID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%s: %w", op, err)
	}

	snap, err := sess.Save(ctx)
	if err != nil {
		return snap, fmt.Errorf("%s: %w", op, err)
	}

	return snap, nil
}

func (m *Manager) State(sectionID uuid.UUID) (Snapshot, error) {
	const op = "editor.Manager.State"

	sess, err := m.session(sectionID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%s: %w", op, err)
	}

	return sess.State(), nil
}

// Close cancels the pending autosave and flushes unsaved changes before
// the session is dropped.
func (m *Manager) Close(ctx context.Context, sectionID uuid.UUID) error {
	const op = "editor.Manager.Close"

	sess, err := m.session(sectionID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if sess.State().Dirty {
		if _, err := sess.Save(ctx); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	sess.close()

	m.mu.Lock()
	delete(m.sessions, sectionID)
	m.mu.Unlock()

	return nil
}

// Discard drops the session without saving its draft. Used when the
// section itself is gone.
func (m *Manager) Discard(sectionID uuid.UUID) {
	m.mu.Lock()
	sess, ok := m.sessions[sectionID]
	delete(m.sessions, sectionID)
	m.mu.Unlock()

	if !ok {
		return
	}

	if sess.close() {
		m.log.Info("editor draft discarded", slog.String("section_id", sectionID.String()))
	}
}

// Shutdown closes every session, flushing drafts that were not saved yet.
func (m *Manager) Shutdown(ctx context.Context) {
	m.mu.Lock()
	ids := make([]uuid.UUID, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	m.mu.Unlock()

	for _, id := range ids {
		if err := m.Close(ctx, id); err != nil {
			m.log.Warn("failed to flush editor session",
				slog.String("section_id", id.String()),
				sl.Err(err),
			)
		}
	}
}

func (m *Manager) session(id uuid.UUID) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}
