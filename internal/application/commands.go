package application

import "github.com/evananthony17/discord-ask-bot-sub000/internal/domain"

type AskCommand struct {
	Requester domain.RequesterID
	Question  string
}

type RecordPendingCommand struct {
	Asker    string
	Question string
	// Entry is listed on the message when the question named a player.
	Entry *domain.RosterEntry
}

type RecordAnswerCommand struct {
	Ref      domain.MessageRef
	Reply    string
	Answerer string
}
