package editor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"artiste_site/internal/domain/models"
	"artiste_site/internal/lib/logger/sl"
	"artiste_site/internal/metrics"

	"github.com/google/uuid"
)

type State string

const (
	StateIdle    State = "idle"
	StateEditing State = "editing"
	StateSaving  State = "saving"
	StateError   State = "error"
)

const (
	triggerAutosave = "autosave"
	triggerManual   = "manual"
)

var ErrSessionNotFound = errors.New("editor session not found")

// Saver persists a whole section and returns the stored row.
type Saver interface {
	GetSection(ctx context.Context, id uuid.UUID) (models.Section, error)
	SaveSection(ctx context.Context, section models.Section) (models.Section, error)
}

// Snapshot - состояние сессии для клиента
type Snapshot struct {
	SectionID uuid.UUID      `json:"section_id"`
	State     State          `json:"state"`
	Dirty     bool           `json:"dirty"`
	Error     string         `json:"error,omitempty"`
	Draft     models.Section `json:"draft"`
	SavedAt   *time.Time     `json:"saved_at,omitempty"`
}

// Session holds the draft of one section. Every mutation restarts the
// autosave timer; only the last mutation of a burst triggers a save.
type Session struct {
	log   *slog.Logger
	saver Saver
	sched Scheduler
	delay time.Duration

	// saveMu serializes writes of the same draft
	saveMu sync.Mutex

	mu      sync.Mutex
	draft   models.Section
	state   State
	lastErr string
	dirty   bool
	rev     uint64
	timer   Stopper
	timerID uint64
	savedAt *time.Time
	closed  bool
}

func newSession(log *slog.Logger, saver Saver, sched Scheduler, delay time.Duration, section models.Section) *Session {
	return &Session{
		log:   log.With(slog.String("section_id", section.ID.String())),
		saver: saver,
		sched: sched,
		delay: delay,
		draft: section.Clone(),
		state: StateIdle,
	}
}

// Mutate применяет изменения к копии черновика и публикует её, только если
// прошли все; затем перезапускает таймер автосохранения
func (s *Session) Mutate(mutations ...Mutation) (Snapshot, error) {
	const op = "editor.Session.Mutate"

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return Snapshot{}, fmt.Errorf("%s: %w", op, ErrSessionNotFound)
	}

	if len(mutations) == 0 {
		return s.snapshotLocked(), nil
	}

	next := s.draft.Clone()
	for _, m := range mutations {
		if err := m(&next); err != nil {
			return s.snapshotLocked(), fmt.Errorf("%s: %w", op, err)
		}
	}

	s.draft = next
	s.dirty = true
	s.rev++
	if s.state != StateSaving {
		s.state = StateEditing
	}
	s.scheduleLocked()

	return s.snapshotLocked(), nil
}

// Save пишет черновик немедленно и отменяет отложенное автосохранение
func (s *Session) Save(ctx context.Context) (Snapshot, error) {
	s.mu.Lock()
	s.cancelTimerLocked()
	s.mu.Unlock()

	return s.save(ctx, triggerManual)
}

func (s *Session) State() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

func (s *Session) scheduleLocked() {
	s.cancelTimerLocked()

	s.timerID++
	id := s.timerID
	s.timer = s.sched.AfterFunc(s.delay, func() {
		s.fire(id)
	})
}

func (s *Session) cancelTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.timerID++
}

// fire is the timer callback; stale timers are ignored.
func (s *Session) fire(id uint64) {
	s.mu.Lock()
	if id != s.timerID || s.closed || !s.dirty {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	s.mu.Unlock()

	_, _ = s.save(context.Background(), triggerAutosave)
}

func (s *Session) save(ctx context.Context, trigger string) (Snapshot, error) {
	const op = "editor.Session.save"

	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.Lock()
	if !s.dirty && trigger == triggerAutosave {
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap, nil
	}
	draft := s.draft.Clone()
	rev := s.rev
	s.state = StateSaving
	s.mu.Unlock()

	log := s.log.With(slog.String("op", op), slog.String("trigger", trigger))

	saved, err := s.saver.SaveSection(ctx, draft)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		log.Error("failed to save section", sl.Err(err))
		metrics.SectionSavesTotal.WithLabelValues(trigger, "error").Inc()

		s.state = StateError
		s.lastErr = err.Error()
		return s.snapshotLocked(), fmt.Errorf("%s: %w", op, err)
	}

	metrics.SectionSavesTotal.WithLabelValues(trigger, "ok").Inc()

	now := time.Now()
	s.savedAt = &now
	s.lastErr = ""

	if s.rev == rev {
		s.draft = saved.Clone()
		s.dirty = false
		s.state = StateIdle
	} else {
		// черновик изменился во время записи, таймер уже перезапущен
		s.state = StateEditing
	}

	log.Debug("section saved")

	return s.snapshotLocked(), nil
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{
		SectionID: s.draft.ID,
		State:     s.state,
		Dirty:     s.dirty,
		Error:     s.lastErr,
		Draft:     s.draft.Clone(),
		SavedAt:   s.savedAt,
	}
}

func (s *Session) close() (dirty bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelTimerLocked()
	s.closed = true
	return s.dirty
}
