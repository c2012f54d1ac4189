package application

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/evananthony17/discord-ask-bot-sub000/internal/adapters/session/memory"
	"github.com/evananthony17/discord-ask-bot-sub000/internal/domain"
	"github.com/evananthony17/discord-ask-bot-sub000/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func suarezChoices() []domain.Choice {
	entries := testEntries()
	return []domain.Choice{
		{Entry: entries[3], Status: domain.RecencyNone},
		{Entry: entries[4], Status: domain.RecencyPending},
	}
}

func newSessionManager(sink *fakeSink, timeout time.Duration) *SessionManager {
	return NewSessionManager(memory.NewStore(), sink, timeout, fixedClock{now: testNow}, nil)
}

func TestSessionSelectResolves(t *testing.T) {
	t.Parallel()

	sink := newFakeSink()
	mgr := newSessionManager(sink, time.Minute)

	session, err := mgr.Open(context.Background(), "alice", domain.SessionKindHomonym, suarezChoices(), "Is Suarez healthy")
	require.NoError(t, err)
	assert.Equal(t, domain.SessionAwaitingSelection, session.State())
	assert.Equal(t, testNow, session.CreatedAt)
	assert.Equal(t, 1, mgr.OpenSessions())

	shown := <-sink.presented
	assert.Equal(t, domain.RequesterID("alice"), shown.requester)
	require.Len(t, shown.choices, 2)
	assert.Equal(t, 1, shown.choices[0].Index)
	assert.Equal(t, 2, shown.choices[1].Index)

	outcome, ok := mgr.Select("alice", "alice", 2)
	require.True(t, ok)
	assert.Equal(t, domain.SessionResolved, outcome.State)
	assert.Equal(t, domain.EntryID("5"), outcome.Entry.ID)
	assert.Equal(t, domain.RecencyPending, outcome.Status)

	awaited, err := mgr.Await(context.Background(), session)
	require.NoError(t, err)
	assert.Equal(t, outcome.Entry, awaited.Entry)
	assert.Equal(t, 0, mgr.OpenSessions())

	_, again := mgr.Select("alice", "alice", 1)
	assert.False(t, again)

	dismissed := sink.Dismissed()
	require.Len(t, dismissed, 1)
	assert.Equal(t, domain.SessionResolved, dismissed[0].State)
}

func TestSessionOnePerRequester(t *testing.T) {
	t.Parallel()

	mgr := newSessionManager(newFakeSink(), time.Minute)

	_, err := mgr.Open(context.Background(), "alice", domain.SessionKindHomonym, suarezChoices(), "q")
	require.NoError(t, err)

	_, err = mgr.Open(context.Background(), "alice", domain.SessionKindHomonym, suarezChoices(), "q again")
	require.ErrorIs(t, err, domain.ErrSessionAlreadyOpen)

	_, err = mgr.Open(context.Background(), "bob", domain.SessionKindHomonym, suarezChoices(), "q")
	require.NoError(t, err)
	assert.Equal(t, 2, mgr.OpenSessions())

	require.NoError(t, mgr.Cancel("alice"))
	require.NoError(t, mgr.Cancel("bob"))
	assert.Equal(t, 0, mgr.OpenSessions())
}

func TestSessionIgnoresOtherActor(t *testing.T) {
	t.Parallel()

	mgr := newSessionManager(newFakeSink(), time.Minute)
	session, err := mgr.Open(context.Background(), "alice", domain.SessionKindHomonym, suarezChoices(), "q")
	require.NoError(t, err)

	_, ok := mgr.Select("alice", "mallory", 1)
	assert.False(t, ok)
	assert.Equal(t, domain.SessionAwaitingSelection, session.State())

	require.NoError(t, mgr.Cancel("alice"))
}

func TestSessionOutOfRangeCancels(t *testing.T) {
	t.Parallel()

	mgr := newSessionManager(newFakeSink(), time.Minute)
	session, err := mgr.Open(context.Background(), "alice", domain.SessionKindHomonym, suarezChoices(), "q")
	require.NoError(t, err)

	outcome, ok := mgr.Select("alice", "alice", 3)
	require.True(t, ok)
	assert.Equal(t, domain.SessionCancelled, outcome.State)
	assert.Equal(t, domain.SessionCancelled, session.State())
	assert.Equal(t, 0, mgr.OpenSessions())
}

func TestSessionSelectInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		raw   string
		state domain.SessionState
		entry domain.EntryID
	}{
		{name: "digit", raw: "1", state: domain.SessionResolved, entry: "4"},
		{name: "keycap", raw: "2\ufe0f\u20e3", state: domain.SessionResolved, entry: "5"},
		{name: "padded", raw: " 2 \n", state: domain.SessionResolved, entry: "5"},
		{name: "malformed", raw: "second one", state: domain.SessionCancelled},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mgr := newSessionManager(newFakeSink(), time.Minute)
			_, err := mgr.Open(context.Background(), "alice", domain.SessionKindHomonym, suarezChoices(), "q")
			require.NoError(t, err)

			outcome, ok := mgr.SelectInput("alice", "alice", tc.raw)
			require.True(t, ok)
			assert.Equal(t, tc.state, outcome.State)
			assert.Equal(t, tc.entry, outcome.Entry.ID)
		})
	}
}

func TestSessionTimeout(t *testing.T) {
	t.Parallel()

	sink := newFakeSink()
	mgr := newSessionManager(sink, 20*time.Millisecond)

	session, err := mgr.Open(context.Background(), "alice", domain.SessionKindBlocking, suarezChoices(), "q")
	require.NoError(t, err)

	outcome, err := mgr.Await(context.Background(), session)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionTimedOut, outcome.State)
	assert.Equal(t, domain.SessionKindBlocking, outcome.Kind)
	assert.Equal(t, 0, mgr.OpenSessions())

	_, ok := mgr.Select("alice", "alice", 1)
	assert.False(t, ok)

	require.Eventually(t, func() bool { return len(sink.Dismissed()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, domain.SessionTimedOut, sink.Dismissed()[0].State)
}

func TestSessionPresentationFailure(t *testing.T) {
	t.Parallel()

	sink := newFakeSink()
	sink.presentErr = errors.New("channel gone")
	sink.partialHandle = "h-partial"
	mgr := newSessionManager(sink, time.Minute)

	_, err := mgr.Open(context.Background(), "alice", domain.SessionKindHomonym, suarezChoices(), "q")
	require.ErrorIs(t, err, domain.ErrPresentationFailed)
	assert.ErrorContains(t, err, "channel gone")
	assert.Equal(t, 0, mgr.OpenSessions())

	dismissed := sink.Dismissed()
	require.Len(t, dismissed, 1)
	assert.Equal(t, domain.SessionCancelled, dismissed[0].State)

	sink.mu.Lock()
	sink.presentErr = nil
	sink.mu.Unlock()
	_, err = mgr.Open(context.Background(), "alice", domain.SessionKindHomonym, suarezChoices(), "q")
	require.NoError(t, err)
	require.NoError(t, mgr.Cancel("alice"))
}

func TestSessionPresentationFailureJoinsDismissError(t *testing.T) {
	t.Parallel()

	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(testNow).Once()

	sink := mocks.NewMockPresentationSink(t)
	sink.EXPECT().
		Present(mockAnyContext(), domain.RequesterID("alice"), domain.SessionKindHomonym, mock.Anything).
		Return(domain.SelectionHandle("h-partial"), errors.New("half sent")).
		Once()
	sink.EXPECT().
		Dismiss(mockAnyContext(), domain.SelectionHandle("h-partial"), mock.MatchedBy(func(o domain.SessionOutcome) bool {
			return o.State == domain.SessionCancelled
		})).
		Return(errors.New("delete failed")).
		Once()

	mgr := NewSessionManager(memory.NewStore(), sink, time.Minute, clock, nil)

	_, err := mgr.Open(context.Background(), "alice", domain.SessionKindHomonym, suarezChoices(), "q")
	require.ErrorIs(t, err, domain.ErrPresentationFailed)
	assert.ErrorContains(t, err, "half sent")
	assert.ErrorContains(t, err, "delete failed")
	assert.Equal(t, 0, mgr.OpenSessions())
}

func TestSessionAwaitContextCancelled(t *testing.T) {
	t.Parallel()

	mgr := newSessionManager(newFakeSink(), time.Minute)
	session, err := mgr.Open(context.Background(), "alice", domain.SessionKindHomonym, suarezChoices(), "q")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcome, err := mgr.Await(ctx, session)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, domain.SessionCancelled, outcome.State)
	assert.Equal(t, 0, mgr.OpenSessions())
}

func TestSessionCancelMissing(t *testing.T) {
	t.Parallel()

	err := newSessionManager(newFakeSink(), time.Minute).Cancel("nobody")
	require.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionConcurrentSelectionsFinishOnce(t *testing.T) {
	t.Parallel()

	sink := newFakeSink()
	mgr := newSessionManager(sink, 5*time.Millisecond)

	for i := 0; i < 50; i++ {
		session, err := mgr.Open(context.Background(), "alice", domain.SessionKindHomonym, suarezChoices(), "q")
		require.NoError(t, err)

		var (
			wg   sync.WaitGroup
			mu   sync.Mutex
			wins int
		)
		for k := 1; k <= 2; k++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, ok := mgr.Select("alice", "alice", k); ok {
					mu.Lock()
					wins++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		outcome, err := mgr.Await(context.Background(), session)
		require.NoError(t, err)
		assert.True(t, outcome.State.Terminal())
		assert.LessOrEqual(t, wins, 1)
		if outcome.State == domain.SessionTimedOut {
			assert.Zero(t, wins)
		} else {
			assert.Equal(t, 1, wins)
		}
	}

	assert.Equal(t, 0, mgr.OpenSessions())
	require.Eventually(t, func() bool { return len(sink.Dismissed()) == 50 }, time.Second, 5*time.Millisecond)
}

func TestParseSelection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want int
		err  bool
	}{
		{raw: "1", want: 1},
		{raw: "3\u20e3", want: 3},
		{raw: "7\ufe0f\u20e3", want: 7},
		{raw: "  4  ", want: 4},
		{raw: "0", err: true},
		{raw: "-2", err: true},
		{raw: "", err: true},
		{raw: "two", err: true},
	}

	for _, tc := range tests {
		got, err := ParseSelection(tc.raw)
		if tc.err {
			require.ErrorIs(t, err, domain.ErrInvalidSelection, tc.raw)
			continue
		}
		require.NoError(t, err, tc.raw)
		assert.Equal(t, tc.want, got)
	}
}
