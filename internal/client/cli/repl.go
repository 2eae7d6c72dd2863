package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Open(ctx context.Context, name string) error
	logout(ctx context.Context) error
}

// runREPL starts the read–eval–print loop.
//
// It reads a line, parses the first token as the command, and dispatches.
// "help", "logout" and "exit"/"quit" are handled here; every other token is
// treated as a view name and resolved through the view registry, which
// reports unknown names by falling back to home. The loop exits on reader
// EOF or when the user types "exit" or "quit".
//
// Errors returned by view renders are ignored here; renders surface their
// own errors to the user. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "inv%s> ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) && strings.TrimSpace(line) != "" {
				// fall through and execute the final partial line
			} else {
				return
			}
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, "Views: home, products, stock, sales, dashboard, profile, notices, about, contact, location")
				fmt.Fprintln(w, "Commands: help, logout, exit")
			} else {
				fmt.Fprintln(w, "Views: home, login, signup, forgot, about, contact, location")
				fmt.Fprintln(w, "Commands: help, exit")
			}

		case "logout":
			_ = a.logout(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			_ = a.Open(ctx, cmd)
		}

		if err != nil {
			// EOF after a partial final line.
			return
		}
	}
}

func (a *App) getStatus() string {
	s := ""
	if u := a.store.User(); u != nil {
		s = " (" + u.Username + ")"
	}
	if n := a.unseen.Load(); n > 0 {
		s += fmt.Sprintf(" [%d new]", n)
	}
	return s
}

func (a *App) repl(ctx context.Context) {
	a.printf("Welcome to InventoryPro (type 'help' for commands)\n")
	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}
