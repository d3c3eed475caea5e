package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	switch {
	case a.userName != "":
		return fmt.Sprintf("(%s)", a.userName)
	case a.isLoggedIn():
		return "(logged in)"
	default:
		return ""
	}
}

// Root starts the interactive REPL and blocks until the user exits.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to the hackernews CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}
