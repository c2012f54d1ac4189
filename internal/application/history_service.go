package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/evananthony17/discord-ask-bot-sub000/internal/domain"
	"github.com/evananthony17/discord-ask-bot-sub000/internal/matching"
	"github.com/evananthony17/discord-ask-bot-sub000/internal/ports"
	"github.com/google/uuid"
)

const BotAuthorName = "askbot"

// HistoryService posts the bot's pending and answered messages in the layout
// the recency scan reads back.
type HistoryService struct {
	recorder ports.HistoryRecorder
	clock    ports.Clock
}

func NewHistoryService(recorder ports.HistoryRecorder, clock ports.Clock) *HistoryService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &HistoryService{recorder: recorder, clock: clock}
}

func (s *HistoryService) RecordPending(ctx context.Context, cmd RecordPendingCommand) (domain.HistoryMessage, error) {
	question := strings.TrimSpace(cmd.Question)
	if question == "" {
		return domain.HistoryMessage{}, fmt.Errorf("question is required")
	}

	ref := domain.MessageRef(uuid.NewString())
	var b strings.Builder
	fmt.Fprintf(&b, "**Question:** %s\n", question)
	if cmd.Entry != nil {
		fmt.Fprintf(&b, "Players: %s\n", cmd.Entry.Label())
	}
	fmt.Fprintf(&b, "-# asked by %s · question id %s", askerOrAnonymous(cmd.Asker), ref)

	msg := domain.HistoryMessage{
		AuthorID:   BotAuthorName,
		AuthorName: BotAuthorName,
		Automated:  true,
		AskerName:  cmd.Asker,
		Content:    b.String(),
		Timestamp:  s.clock.Now(),
		Ref:        ref,
	}

	saved, err := s.recorder.Append(ctx, domain.ChannelPending, msg)
	if err != nil {
		return domain.HistoryMessage{}, fmt.Errorf("append pending message: %w", err)
	}
	return saved, nil
}

// RecordAnswer moves a pending message to the answered stream with the
// expert's reply between the question and the metadata.
func (s *HistoryService) RecordAnswer(ctx context.Context, cmd RecordAnswerCommand) (domain.HistoryMessage, error) {
	reply := strings.TrimSpace(cmd.Reply)
	if reply == "" {
		return domain.HistoryMessage{}, fmt.Errorf("reply is required")
	}

	kind, pending, err := s.recorder.Get(ctx, cmd.Ref)
	if err != nil {
		return domain.HistoryMessage{}, fmt.Errorf("get pending message: %w", err)
	}
	if kind != domain.ChannelPending {
		return domain.HistoryMessage{}, fmt.Errorf("message %s is already %s", cmd.Ref, kind)
	}

	sections := matching.SplitMessage(pending.Content)
	answerer := strings.TrimSpace(cmd.Answerer)
	if answerer == "" {
		answerer = "expert"
	}

	answered := pending
	answered.Content = fmt.Sprintf("%s\n**Expert reply:** %s\n-# asked by %s · answered by %s · question id %s",
		sections.Question, reply, askerOrAnonymous(pending.AskerName), answerer, pending.Ref)
	answered.Timestamp = s.clock.Now()

	if err := s.recorder.Move(ctx, cmd.Ref, domain.ChannelAnswered, answered); err != nil {
		return domain.HistoryMessage{}, fmt.Errorf("move message to answered: %w", err)
	}
	return answered, nil
}

func askerOrAnonymous(name string) string {
	if strings.TrimSpace(name) == "" {
		return "anonymous"
	}
	return name
}
