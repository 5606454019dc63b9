package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/eventdesk/internal/config"
	"github.com/dmitrijs2005/eventdesk/internal/cryptox"
	"github.com/dmitrijs2005/eventdesk/internal/logging"
	"github.com/dmitrijs2005/eventdesk/internal/models"
	"github.com/dmitrijs2005/eventdesk/internal/repositories/records"
	"github.com/dmitrijs2005/eventdesk/internal/services"
	"github.com/dmitrijs2005/eventdesk/internal/storage"
	"github.com/dmitrijs2005/eventdesk/internal/store"
	"golang.org/x/term"
)

type App struct {
	store  *store.Store
	closer io.Closer
	auth   services.AuthService
	events services.EventService
	filter models.FilterSpec

	scheme cryptox.Scheme
	loc    *time.Location
	logger logging.Logger

	in          *bufio.Reader
	out         io.Writer
	interactive bool
}

// NewApp opens storage according to cfg and prepares the services. A
// database that cannot be opened is replaced by an in-memory store, so the
// desk still works for the current run.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	scheme, err := cryptox.ParseScheme(cfg.CredentialScheme)
	if err != nil {
		return nil, err
	}

	loc, err := cfg.Location()
	if err != nil {
		logger.Warn(ctx, "falling back to UTC", "err", err)
		loc = time.UTC
	}

	var (
		st     *store.Store
		closer io.Closer
	)
	db, err := storage.InitDatabase(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.Warn(ctx, "database unavailable, changes will not be saved", "dsn", cfg.DatabaseDSN, "err", err)
		st = store.NewWithRepository(records.NewMemoryRepository(), logger)
	} else {
		logger.Debug(ctx, "database opened", "dialect", string(db.Dialect))
		st = store.New(db.DB, db.Records, logger)
		closer = db
	}

	a := newApp(ctx, st, scheme, loc, logger, os.Stdin, os.Stdout)
	a.closer = closer
	a.interactive = term.IsTerminal(int(os.Stdin.Fd()))
	return a, nil
}

func newApp(ctx context.Context, st *store.Store, scheme cryptox.Scheme, loc *time.Location,
	logger logging.Logger, in io.Reader, out io.Writer) *App {

	if _, err := services.MigrateLegacyEvents(ctx, st, logger); err != nil {
		logger.Warn(ctx, "legacy migration will be retried on next start", "err", err)
	}

	a := &App{
		store:  st,
		filter: models.DefaultFilter(),
		scheme: scheme,
		loc:    loc,
		logger: logger,
		in:     bufio.NewReader(in),
		out:    out,
	}
	a.reloadSession(ctx)
	return a
}

// reloadSession rebuilds the services from what the store holds now.
func (a *App) reloadSession(ctx context.Context) {
	a.auth = services.NewAuthService(ctx, a.store, a.scheme, a.logger)
	a.events = services.NewEventService(ctx, a.store, a.auth.CurrentUser(ctx), a.logger)
}

// switchUser binds the event service to the session's current user.
func (a *App) switchUser(ctx context.Context) {
	a.events = services.NewEventService(ctx, a.store, a.auth.CurrentUser(ctx), a.logger)
	a.filter = models.DefaultFilter()
}

// Run starts the REPL and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.println("Welcome to eventdesk (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.in, a.out)
}

func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

func (a *App) isLoggedIn() bool {
	return a.auth.CurrentUser(context.Background()) != nil
}

func (a *App) status() string {
	u := a.auth.CurrentUser(context.Background())
	if u == nil {
		return ""
	}
	return "(" + u.Email + ")"
}
