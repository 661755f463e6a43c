package delivery

import (
	"context"
)

// Delivery is an entry point that serves user input until it is exhausted or ctx ends.
type Delivery interface {
	Serve(ctx context.Context) error
}

// Command is one parsed line of user input.
type Command struct {
	Keyword string   // Matched command keyword, e.g. "phone add".
	Args    []string // Whitespace-separated arguments after the keyword.
}

// CommandHandler executes a command and returns the text to show the user.
type CommandHandler func(ctx context.Context, cmd *Command) (string, error)

// CommandMiddleware decorates a CommandHandler.
type CommandMiddleware func(next CommandHandler) CommandHandler
