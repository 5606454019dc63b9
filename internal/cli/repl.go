package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL dispatches to. App satisfies
// it; tests use a stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	List(ctx context.Context) error
	Filter(ctx context.Context, query string) error
	Show(ctx context.Context, id string) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Export(ctx context.Context, path string) error
	Seed(ctx context.Context) error
	Clear(ctx context.Context) error
}

// runREPL reads commands line by line from r and dispatches them to a.
// Errors returned by handlers are printed; the loop ends on EOF, "exit" or
// "quit".
//
//	Not logged in: help, signup, login, seed, clear, exit
//	Logged in:     help, list, filter [query], show <id>, add, edit <id>,
//	               delete <id>, export <file>, whoami, logout, seed, clear, exit
func runREPL(ctx context.Context, a execIface, statusFn func() string, r *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "eventdesk%s> ", prefixSpace(statusFn()))
		line, err := r.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			fmt.Fprintln(w)
			return
		}

		cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
		arg = strings.TrimSpace(arg)
		if cmd == "" {
			continue
		}

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, "Available commands: (l)ist, filter [query|reset], show <id>, add, edit <id>, delete <id>, export <file>, whoami, logout, seed, clear, exit")
			} else {
				fmt.Fprintln(w, "Available commands: signup, login, seed, clear, exit")
			}
		case "signup", "register":
			cmdErr = a.Signup(ctx)
		case "login":
			cmdErr = a.Login(ctx)
		case "logout":
			cmdErr = a.Logout(ctx)
		case "whoami":
			cmdErr = a.WhoAmI(ctx)
		case "l", "list":
			cmdErr = a.List(ctx)
		case "filter":
			cmdErr = a.Filter(ctx, arg)
		case "show":
			cmdErr = withID(arg, "show", func(id string) error { return a.Show(ctx, id) })
		case "add":
			cmdErr = a.Add(ctx)
		case "edit":
			cmdErr = withID(arg, "edit", func(id string) error { return a.Edit(ctx, id) })
		case "delete", "rm":
			cmdErr = withID(arg, "delete", func(id string) error { return a.Delete(ctx, id) })
		case "export":
			if arg == "" {
				cmdErr = errors.New("usage: export <file.ics>")
				break
			}
			cmdErr = a.Export(ctx, arg)
		case "seed":
			cmdErr = a.Seed(ctx)
		case "clear":
			cmdErr = a.Clear(ctx)
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}

		if cmdErr != nil {
			for _, msg := range messagesFor(cmdErr) {
				fmt.Fprintln(w, "Error:", msg)
			}
		}
	}
}

func withID(arg, cmd string, fn func(id string) error) error {
	if arg == "" {
		return fmt.Errorf("usage: %s <id>", cmd)
	}
	return fn(arg)
}

func prefixSpace(s string) string {
	if s == "" {
		return ""
	}
	return " " + s
}
