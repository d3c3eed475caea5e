package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/hackernews/internal/client/client"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Post(ctx context.Context, args []string) error
	Vote(ctx context.Context, args []string) error
	Feed(ctx context.Context, args []string) error
}

var errUnknownCommand = errors.New("unknown command")

// dispatch runs a single command.
func dispatch(ctx context.Context, a execIface, cmd string, args []string) error {
	switch cmd {
	case "signup", "register":
		return a.Signup(ctx)
	case "login":
		return a.Login(ctx)
	case "logout":
		return a.Logout(ctx)
	case "post":
		return a.Post(ctx, args)
	case "vote":
		return a.Vote(ctx, args)
	case "feed", "l", "list":
		return a.Feed(ctx, args)
	default:
		return fmt.Errorf("%w: %s", errUnknownCommand, cmd)
	}
}

// runREPL starts a simple read–eval–print loop.
//
// It reads a line from reader, parses the first token as the
// command, and dispatches it. Errors are printed and the loop continues. The
// loop exits on scanner EOF or when the user types "exit" or "quit".
//
//	Not logged in:  help, signup, login, feed, exit
//	Logged in:      help, post, vote, feed, logout, exit
//
// Commands that prompt for more input read from the same reader, so reader
// must be shared with them.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("hn %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: post [url] [description], vote <id>, feed [first] [skip], logout, exit")
			} else {
				printlnFn("Available commands: signup, login, feed [first] [skip], exit")
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			if err := dispatch(ctx, a, cmd, parts[1:]); err != nil {
				printlnFn(describe(err))
			}
		}
	}
}

// describe turns an error into a line for the user.
func describe(err error) string {
	switch {
	case errors.Is(err, client.ErrUnauthorized):
		return "Not logged in, use 'login' or 'signup' first"
	case errors.Is(err, client.ErrUnavailable):
		return "Server unavailable, try again later"
	default:
		return "Error: " + err.Error()
	}
}
