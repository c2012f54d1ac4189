package domain

import "time"

type RecencyStatus string

const (
	RecencyNone     RecencyStatus = "none"
	RecencyPending  RecencyStatus = "pending"
	RecencyAnswered RecencyStatus = "answered"
)

func (s RecencyStatus) Label() string {
	switch s {
	case RecencyPending:
		return "pending answer"
	case RecencyAnswered:
		return "already answered"
	case RecencyNone, "":
		return "no recent question"
	default:
		return string(s)
	}
}

// Recent reports whether the status should stop a new question.
func (s RecencyStatus) Recent() bool {
	return s == RecencyPending || s == RecencyAnswered
}

type ChannelKind string

const (
	ChannelPending  ChannelKind = "pending"
	ChannelAnswered ChannelKind = "answered"
)

func (k ChannelKind) Valid() bool {
	switch k {
	case ChannelPending, ChannelAnswered:
		return true
	default:
		return false
	}
}

// MessageRef is an opaque pointer to a message held by the history provider.
type MessageRef string

type HistoryMessage struct {
	AuthorID   string
	AuthorName string
	Automated  bool
	// AskerName is the display name of the user the message was posted for, if any.
	AskerName string
	Content   string
	Timestamp time.Time
	Ref       MessageRef
}

type RecencyRecord struct {
	Entry      RosterEntry
	Status     RecencyStatus
	Ref        MessageRef
	Confidence float64
}
