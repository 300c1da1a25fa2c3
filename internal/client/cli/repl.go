package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	loggedIn(ctx context.Context) bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Status(ctx context.Context) error
	Profile(ctx context.Context) error
	Open(ctx context.Context, page string) error
}

// runREPL starts a simple read-eval-print loop.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands:
//
//	register       — create an account
//	login          — authenticate
//	logout         — drop the session
//	status         — show session state and current page
//	profile        — show the user profile
//	open <page>    — navigate to a page (e.g. dashboard.html)
//	help           — show available commands
//	exit | quit    — leave the program
//
// Errors returned by command handlers are ignored here; handlers log their
// own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("auth> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.loggedIn(ctx) {
				printlnFn("Available commands: status, profile, open <page>, logout, exit")
			} else {
				printlnFn("Available commands: register, login, status, open <page>, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "status":
			_ = a.Status(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "open":
			if len(args) == 0 {
				printlnFn("Usage: open <page>")
				continue
			}
			_ = a.Open(ctx, args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
