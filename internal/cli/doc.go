// Package cli provides the interactive eventdesk command-line client.
//
// It wires configuration, the local store, the session and event services,
// and a REPL. On start it opens the database (falling back to an in-memory
// store when that fails), runs the one-shot legacy migration and restores
// the previous session.
//
// Commands:
//   - signup / login / logout / whoami
//   - list, filter [query], show <id>
//   - add, edit <id>, delete <id>
//   - export <file.ics>
//   - seed, clear (demo data tooling)
//
// The REPL is started with App.Run(ctx), which blocks until the user exits.
// Operation failures are printed and never end the loop.
package cli
