package application

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/evananthony17/discord-ask-bot-sub000/internal/domain"
	"github.com/evananthony17/discord-ask-bot-sub000/internal/ports/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fixedClock struct {
	now time.Time
}

func (f fixedClock) Now() time.Time {
	return f.now
}

func mockAnyContext() interface{} {
	return mock.Anything
}

var testNow = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

func testEntries() []domain.RosterEntry {
	return []domain.RosterEntry{
		{ID: "1", DisplayName: "Juan Soto", Team: "Padres"},
		{ID: "2", DisplayName: "Aaron Judge", Team: "Yankees"},
		{ID: "3", DisplayName: "Shohei Ohtani", Team: "Dodgers"},
		{ID: "4", DisplayName: "Luis Suarez", Team: "Marlins"},
		{ID: "5", DisplayName: "Luis Suarez", Team: "Mariners"},
		{ID: "6", DisplayName: "Mike Trout", Team: "Angels"},
	}
}

func loadedRosterStore(t *testing.T, entries []domain.RosterEntry) *RosterStore {
	t.Helper()

	provider := mocks.NewMockRosterProvider(t)
	provider.EXPECT().GetAllEntries(mockAnyContext()).Return(entries, nil).Once()

	store := NewRosterStore(nil)
	require.NoError(t, store.Load(context.Background(), provider))
	return store
}

// fakeHistory serves fixed streams and records appended messages.
type fakeHistory struct {
	mu       sync.Mutex
	pending  []domain.HistoryMessage
	answered []domain.HistoryMessage
	errs     map[domain.ChannelKind]error
}

func (f *fakeHistory) RecentMessages(_ context.Context, kind domain.ChannelKind, _ time.Duration, maxCount int) ([]domain.HistoryMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.errs[kind]; err != nil {
		return nil, err
	}
	source := f.pending
	if kind == domain.ChannelAnswered {
		source = f.answered
	}
	out := make([]domain.HistoryMessage, 0, len(source))
	for i := len(source) - 1; i >= 0 && len(out) < maxCount; i-- {
		out = append(out, source[i])
	}
	return out, nil
}

func (f *fakeHistory) Append(_ context.Context, kind domain.ChannelKind, msg domain.HistoryMessage) (domain.HistoryMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if kind == domain.ChannelAnswered {
		f.answered = append(f.answered, msg)
	} else {
		f.pending = append(f.pending, msg)
	}
	return msg, nil
}

func (f *fakeHistory) Get(_ context.Context, ref domain.MessageRef) (domain.ChannelKind, domain.HistoryMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, msg := range f.pending {
		if msg.Ref == ref {
			return domain.ChannelPending, msg, nil
		}
	}
	for _, msg := range f.answered {
		if msg.Ref == ref {
			return domain.ChannelAnswered, msg, nil
		}
	}
	return "", domain.HistoryMessage{}, domain.ErrMessageNotFound
}

func (f *fakeHistory) Move(_ context.Context, ref domain.MessageRef, kind domain.ChannelKind, msg domain.HistoryMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	kept := f.pending[:0]
	found := false
	for _, existing := range f.pending {
		if existing.Ref == ref {
			found = true
			continue
		}
		kept = append(kept, existing)
	}
	f.pending = kept
	if !found {
		return domain.ErrMessageNotFound
	}
	msg.Ref = ref
	if kind == domain.ChannelAnswered {
		f.answered = append(f.answered, msg)
	} else {
		f.pending = append(f.pending, msg)
	}
	return nil
}

type presentation struct {
	requester domain.RequesterID
	kind      domain.SessionKind
	choices   []domain.Choice
	handle    domain.SelectionHandle
}

// fakeSink hands out sequential handles and publishes every presentation.
type fakeSink struct {
	mu         sync.Mutex
	presented  chan presentation
	dismissed  []domain.SessionOutcome
	presentErr error
	// partialHandle is returned together with presentErr.
	partialHandle domain.SelectionHandle
	count         int
}

func newFakeSink() *fakeSink {
	return &fakeSink{presented: make(chan presentation, 16)}
}

func (f *fakeSink) Present(_ context.Context, requester domain.RequesterID, kind domain.SessionKind, choices []domain.Choice) (domain.SelectionHandle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.presentErr != nil {
		return f.partialHandle, f.presentErr
	}
	f.count++
	handle := domain.SelectionHandle(fmt.Sprintf("h-%d", f.count))
	f.presented <- presentation{requester: requester, kind: kind, choices: choices, handle: handle}
	return handle, nil
}

func (f *fakeSink) Dismiss(_ context.Context, _ domain.SelectionHandle, outcome domain.SessionOutcome) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.dismissed = append(f.dismissed, outcome)
	return nil
}

func (f *fakeSink) Dismissed() []domain.SessionOutcome {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]domain.SessionOutcome(nil), f.dismissed...)
}

func botMessage(ref, content string) domain.HistoryMessage {
	return domain.HistoryMessage{
		AuthorID:   BotAuthorName,
		AuthorName: BotAuthorName,
		Automated:  true,
		AskerName:  "dave",
		Content:    content,
		Timestamp:  testNow.Add(-time.Hour),
		Ref:        domain.MessageRef(ref),
	}
}
