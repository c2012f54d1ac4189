package main

import (
	"os"

	"github.com/evananthony17/discord-ask-bot-sub000/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
