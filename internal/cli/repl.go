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
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	List(ctx context.Context) error
	Search(ctx context.Context) error
	Filter(ctx context.Context) error
	AddProduct(ctx context.Context) error
	EditProduct(ctx context.Context) error
	DeleteProduct(ctx context.Context) error
	Stats(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Browsing commands (list, search, filter) are available to everyone;
// register/login when logged out; listing management, stats, and profile
// commands once logged in.
//
// Errors returned by command handlers are ignored here; handlers render
// their own feedback from the state snapshots. This keeps the loop resilient
// and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("vitrine> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, search, filter, add, edit, delete, stats, profile, editprofile, logout, exit")
			} else {
				printlnFn("Available commands: (l)ist, search, filter, register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "editprofile":
			_ = a.EditProfile(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "search":
			_ = a.Search(ctx)

		case "filter":
			_ = a.Filter(ctx)

		case "add":
			_ = a.AddProduct(ctx)

		case "edit":
			_ = a.EditProduct(ctx)

		case "delete":
			_ = a.DeleteProduct(ctx)

		case "stats":
			_ = a.Stats(ctx)

		case "exit", "quit":
			printlnFn("Au revoir !")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
