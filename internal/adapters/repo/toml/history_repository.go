package toml

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/evananthony17/discord-ask-bot-sub000/internal/domain"
	"github.com/evananthony17/discord-ask-bot-sub000/internal/ports"
	"github.com/google/uuid"
	"github.com/spf13/viper"
)

const (
	HistoryPathKey  = "history.path"
	historyFileName = "history.toml"
)

// HistoryRepository keeps the bot's pending and answered messages in one
// TOML file.
type HistoryRepository struct {
	file  dataFile
	clock ports.Clock
}

var (
	_ ports.HistoryProvider = (*HistoryRepository)(nil)
	_ ports.HistoryRecorder = (*HistoryRepository)(nil)
)

func NewHistoryRepository(cfg *viper.Viper, clock ports.Clock) (*HistoryRepository, error) {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	file, err := openDataFile(cfg, HistoryPathKey, historyFileName, "history")
	if err != nil {
		return nil, err
	}

	return &HistoryRepository{file: file, clock: clock}, nil
}

// RecentMessages returns automated messages of one stream posted within
// since, newest first, at most maxCount of them.
func (r *HistoryRepository) RecentMessages(ctx context.Context, kind domain.ChannelKind, since time.Duration, maxCount int) ([]domain.HistoryMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("unsupported channel kind %q", kind)
	}

	r.file.mu.RLock()
	defer r.file.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	cutoff := r.clock.Now().Add(-since)
	messages := make([]domain.HistoryMessage, 0, len(file.Messages))
	for _, encoded := range file.Messages {
		if encoded.Stream != string(kind) || !encoded.Automated {
			continue
		}
		msg := fromMessageSchema(encoded)
		if since > 0 && msg.Timestamp.Before(cutoff) {
			continue
		}
		messages = append(messages, msg)
	}

	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].Timestamp.After(messages[j].Timestamp)
	})
	if maxCount > 0 && len(messages) > maxCount {
		messages = messages[:maxCount]
	}

	return messages, nil
}

func (r *HistoryRepository) Append(ctx context.Context, kind domain.ChannelKind, msg domain.HistoryMessage) (domain.HistoryMessage, error) {
	if err := ctx.Err(); err != nil {
		return domain.HistoryMessage{}, err
	}
	if !kind.Valid() {
		return domain.HistoryMessage{}, fmt.Errorf("unsupported channel kind %q", kind)
	}
	if msg.Ref == "" {
		msg.Ref = domain.MessageRef(uuid.NewString())
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = r.clock.Now()
	}

	r.file.mu.Lock()
	defer r.file.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.HistoryMessage{}, err
	}
	for _, encoded := range file.Messages {
		if encoded.Ref == string(msg.Ref) {
			return domain.HistoryMessage{}, fmt.Errorf("message %s already exists", msg.Ref)
		}
	}

	file.Messages = append(file.Messages, toMessageSchema(kind, msg))
	if err := r.file.write(file); err != nil {
		return domain.HistoryMessage{}, err
	}

	return msg, nil
}

func (r *HistoryRepository) Get(ctx context.Context, ref domain.MessageRef) (domain.ChannelKind, domain.HistoryMessage, error) {
	if err := ctx.Err(); err != nil {
		return "", domain.HistoryMessage{}, err
	}

	r.file.mu.RLock()
	defer r.file.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return "", domain.HistoryMessage{}, err
	}

	for _, encoded := range file.Messages {
		if encoded.Ref == string(ref) {
			return domain.ChannelKind(encoded.Stream), fromMessageSchema(encoded), nil
		}
	}

	return "", domain.HistoryMessage{}, fmt.Errorf("get message %s: %w", ref, domain.ErrMessageNotFound)
}

// Move replaces the message stored under ref and files it under kind.
func (r *HistoryRepository) Move(ctx context.Context, ref domain.MessageRef, kind domain.ChannelKind, msg domain.HistoryMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !kind.Valid() {
		return fmt.Errorf("unsupported channel kind %q", kind)
	}

	r.file.mu.Lock()
	defer r.file.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	msg.Ref = ref
	for i := range file.Messages {
		if file.Messages[i].Ref == string(ref) {
			file.Messages[i] = toMessageSchema(kind, msg)
			return r.file.write(file)
		}
	}

	return fmt.Errorf("move message %s: %w", ref, domain.ErrMessageNotFound)
}

func (r *HistoryRepository) readSchema() (historyFileSchema, error) {
	var file historyFileSchema
	if _, err := r.file.read(&file); err != nil {
		return historyFileSchema{}, err
	}
	if err := file.validateVersion(); err != nil {
		return historyFileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func toMessageSchema(kind domain.ChannelKind, msg domain.HistoryMessage) messageSchema {
	return messageSchema{
		Ref:        string(msg.Ref),
		Stream:     string(kind),
		AuthorID:   msg.AuthorID,
		AuthorName: msg.AuthorName,
		Automated:  msg.Automated,
		Asker:      msg.AskerName,
		Content:    msg.Content,
		PostedAt:   formatTime(msg.Timestamp),
	}
}

func fromMessageSchema(encoded messageSchema) domain.HistoryMessage {
	return domain.HistoryMessage{
		AuthorID:   encoded.AuthorID,
		AuthorName: encoded.AuthorName,
		Automated:  encoded.Automated,
		AskerName:  encoded.Asker,
		Content:    encoded.Content,
		Timestamp:  parseTime(encoded.PostedAt),
		Ref:        domain.MessageRef(encoded.Ref),
	}
}
