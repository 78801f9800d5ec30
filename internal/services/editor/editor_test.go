package editor

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"artiste_site/internal/content"
	"artiste_site/internal/domain/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSaver struct {
	mock.Mock
}

func (m *MockSaver) GetSection(ctx context.Context, id uuid.UUID) (models.Section, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Section), args.Error(1)
}

func (m *MockSaver) SaveSection(ctx context.Context, section models.Section) (models.Section, error) {
	args := m.Called(ctx, section)
	return args.Get(0).(models.Section), args.Error(1)
}

// fakeScheduler runs callbacks only when the test calls Fire.
type fakeScheduler struct {
	mu      sync.Mutex
	pending []*fakeTimer
	delays  []time.Duration
}

type fakeTimer struct {
	f       func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) Stopper {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &fakeTimer{f: f}
	s.pending = append(s.pending, t)
	s.delays = append(s.delays, d)
	return t
}

// Fire runs every timer that was not stopped.
func (s *fakeScheduler) Fire() int {
	s.mu.Lock()
	timers := s.pending
	s.pending = nil
	s.mu.Unlock()

	fired := 0
	for _, t := range timers {
		if !t.stopped {
			fired++
			t.f()
		}
	}
	return fired
}

func heroSection() models.Section {
	s := models.NewSection("home", models.SectionHero, 0)
	s.ID = uuid.New()
	s.Title = models.StrPtr("Marie|Dupont")
	return s
}

func openSession(t *testing.T, saver *MockSaver, sched Scheduler, section models.Section) *Manager {
	t.Helper()

	saver.On("GetSection", mock.Anything, section.ID).Return(section, nil).Once()

	m := NewManager(slog.Default(), saver, sched, 1500*time.Millisecond)
	snap, err := m.Open(context.Background(), section.ID)
	require.NoError(t, err)
	assert.Equal(t, StateIdle, snap.State)

	return m
}

func TestSession_DebouncedAutosave(t *testing.T) {
	saver := new(MockSaver)
	sched := &fakeScheduler{}
	section := heroSection()
	m := openSession(t, saver, sched, section)

	for _, v := range []string{"J", "Je", "Jea", "Jean"} {
		snap, err := m.Mutate(section.ID, SetTitleLine(0, v))
		require.NoError(t, err)
		assert.Equal(t, StateEditing, snap.State)
	}

	saver.On("SaveSection", mock.Anything, mock.MatchedBy(func(s models.Section) bool {
		return models.Str(s.Title) == "Jean|Dupont"
	})).Return(func() models.Section {
		s := section.Clone()
		s.Title = models.StrPtr("Jean|Dupont")
		return s
	}(), nil).Once()

	assert.Equal(t, 1, sched.Fire())
	assert.Equal(t, []time.Duration{1500 * time.Millisecond}, sched.delays[:1])

	snap, err := m.State(section.ID)
	require.NoError(t, err)
	assert.Equal(t, StateIdle, snap.State)
	assert.False(t, snap.Dirty)
	assert.NotNil(t, snap.SavedAt)

	saver.AssertNumberOfCalls(t, "SaveSection", 1)
	saver.AssertExpectations(t)
}

func TestSession_ManualSaveCancelsTimer(t *testing.T) {
	saver := new(MockSaver)
	sched := &fakeScheduler{}
	section := heroSection()
	m := openSession(t, saver, sched, section)

	_, err := m.Mutate(section.ID, SetFields(Fields{Subtitle: models.StrPtr("Peintre")}))
	require.NoError(t, err)

	saver.On("SaveSection", mock.Anything, mock.AnythingOfType("models.Section")).
		Return(section, nil).Once()

	snap, err := m.Save(context.Background(), section.ID)
	require.NoError(t, err)
	assert.Equal(t, StateIdle, snap.State)

	assert.Equal(t, 0, sched.Fire())
	saver.AssertNumberOfCalls(t, "SaveSection", 1)
}

func TestSession_SaveFailureKeepsDraft(t *testing.T) {
	saver := new(MockSaver)
	sched := &fakeScheduler{}
	section := heroSection()
	m := openSession(t, saver, sched, section)

	_, err := m.Mutate(section.ID, SetFields(Fields{Description: models.StrPtr("Huiles sur toile")}))
	require.NoError(t, err)

	saver.On("SaveSection", mock.Anything, mock.Anything).
		Return(models.Section{}, errors.New("permission denied for table page_sections")).Once()

	sched.Fire()

	snap, err := m.State(section.ID)
	require.NoError(t, err)
	assert.Equal(t, StateError, snap.State)
	assert.Equal(t, "permission denied for table page_sections", snap.Error)
	assert.True(t, snap.Dirty)
	assert.Equal(t, "Huiles sur toile", models.Str(snap.Draft.Description))

	// next edit leaves the error state and retries later
	snap, err = m.Mutate(section.ID, SetFields(Fields{ButtonText: models.StrPtr("Voir")}))
	require.NoError(t, err)
	assert.Equal(t, StateEditing, snap.State)
	assert.Equal(t, "Huiles sur toile", models.Str(snap.Draft.Description))
}

func TestSession_MutationErrorLeavesDraft(t *testing.T) {
	saver := new(MockSaver)
	section := models.NewSection("home", models.SectionFAQ, 0)
	section.ID = uuid.New()
	m := openSession(t, saver, &fakeScheduler{}, section)

	_, err := m.Mutate(section.ID, RemoveQuestion(3))
	assert.ErrorIs(t, err, content.ErrIndexOutOfRange)

	snap, err := m.State(section.ID)
	require.NoError(t, err)
	assert.Equal(t, StateIdle, snap.State)
	assert.False(t, snap.Dirty)
}

func TestMutations_FAQ(t *testing.T) {
	s := models.NewSection("home", models.SectionFAQ, 0)
	s.CustomData["layout"] = "accordion"

	require.NoError(t, AddQuestion()(&s))
	require.NoError(t, UpdateQuestion(0, content.QuestionEdit{Q: "Livraison ?", A: "Oui"})(&s))
	require.NoError(t, AddQuestion()(&s))
	require.NoError(t, RemoveQuestion(1)(&s))

	data := models.DecodePayload(models.SectionFAQ, s.CustomData).(models.FAQData)
	require.Len(t, data.Questions, 1)
	assert.Equal(t, "Livraison ?", data.Questions[0].Q)
	assert.Equal(t, "accordion", s.CustomData["layout"])
}

func TestMutations_SetFields(t *testing.T) {
	s := heroSection()
	opacity := 1.7

	require.NoError(t, SetFields(Fields{
		Subtitle:            models.StrPtr("Atelier"),
		Title:               models.StrPtr(""),
		ImageOverlayOpacity: &opacity,
	})(&s))

	assert.Nil(t, s.Title)
	assert.Equal(t, "Atelier", models.Str(s.Subtitle))
	assert.Equal(t, 1.0, s.ImageOverlayOpacity)

	require.NoError(t, MergeCustomData(models.Metadata{"zoom": 1.4})(&s))
	assert.Equal(t, 1.4, s.CustomData["zoom"])
	assert.Equal(t, 50.0, models.DecodePayload(models.SectionHero, s.CustomData).(models.HeroData).PositionX)
}

func TestManager_CloseFlushesAndForgets(t *testing.T) {
	saver := new(MockSaver)
	sched := &fakeScheduler{}
	section := heroSection()
	m := openSession(t, saver, sched, section)

	_, err := m.Mutate(section.ID, SetTitleLine(1, "Martin"))
	require.NoError(t, err)

	saver.On("SaveSection", mock.Anything, mock.Anything).Return(section, nil).Once()
	require.NoError(t, m.Close(context.Background(), section.ID))

	assert.Equal(t, 0, sched.Fire())

	_, err = m.State(section.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = m.Mutate(section.ID, SetTitleLine(0, "x"))
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManager_MutateIsAllOrNothing(t *testing.T) {
	saver := new(MockSaver)
	sched := &fakeScheduler{}
	section := models.NewSection("home", models.SectionFAQ, 0)
	section.ID = uuid.New()
	section.Title = models.StrPtr("FAQ")
	m := openSession(t, saver, sched, section)

	_, err := m.Mutate(section.ID,
		SetFields(Fields{Title: models.StrPtr("X")}),
		AddQuestion(),
		RemoveQuestion(5),
	)
	assert.ErrorIs(t, err, content.ErrIndexOutOfRange)

	snap, err := m.State(section.ID)
	require.NoError(t, err)
	assert.Equal(t, "FAQ", models.Str(snap.Draft.Title))
	assert.Empty(t, models.DecodePayload(models.SectionFAQ, snap.Draft.CustomData).(models.FAQData).Questions)
	assert.False(t, snap.Dirty)
	assert.Equal(t, StateIdle, snap.State)

	assert.Equal(t, 0, sched.Fire())
	saver.AssertNotCalled(t, "SaveSection", mock.Anything, mock.Anything)
}

func TestManager_DiscardDropsWithoutSaving(t *testing.T) {
	saver := new(MockSaver)
	sched := &fakeScheduler{}
	section := heroSection()
	m := openSession(t, saver, sched, section)

	_, err := m.Mutate(section.ID, SetTitleLine(1, "Martin"))
	require.NoError(t, err)

	m.Discard(section.ID)
	m.Discard(section.ID)

	assert.Equal(t, 0, sched.Fire())
	saver.AssertNotCalled(t, "SaveSection", mock.Anything, mock.Anything)

	_, err = m.State(section.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	saver.On("GetSection", mock.Anything, section.ID).Return(section, nil).Once()
	snap, err := m.Open(context.Background(), section.ID)
	require.NoError(t, err)
	assert.Equal(t, "Marie|Dupont", models.Str(snap.Draft.Title))
	assert.False(t, snap.Dirty)
}
