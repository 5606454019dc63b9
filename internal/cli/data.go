package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/eventdesk/internal/common"
	"github.com/dmitrijs2005/eventdesk/internal/export"
	"github.com/dmitrijs2005/eventdesk/internal/filex"
	"github.com/dmitrijs2005/eventdesk/internal/models"
	"github.com/dmitrijs2005/eventdesk/internal/query"
	"github.com/dmitrijs2005/eventdesk/internal/services"
)

// Export writes the events visible under the current filter to an .ics file.
func (a *App) Export(ctx context.Context, path string) (err error) {
	if !a.isLoggedIn() {
		return common.ErrNotAuthenticated
	}

	events := query.ApplyIn(a.loc, a.events.List(), a.filter)

	if err := filex.EnsureParentDir(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := export.WriteICS(f, a.auth.CurrentUser(ctx), events, a.loc); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	a.printf("Exported %d events to %s\n", len(events), path)
	return nil
}

// Seed installs the demo account and logs it in.
func (a *App) Seed(ctx context.Context) error {
	u, err := services.SeedDemoData(ctx, a.store, a.scheme)
	if err != nil {
		return err
	}
	a.reloadSession(ctx)
	a.filter = models.DefaultFilter()
	a.printf("Demo data loaded. Logged in as %s (password: %s)\n", u.Email, services.DemoPassword)
	return nil
}

// Clear wipes every record the desk owns and ends the session.
func (a *App) Clear(ctx context.Context) error {
	answer, err := a.text("Remove all users, events and sessions? [y/N]")
	if err != nil {
		return err
	}
	if answer != "y" && answer != "Y" && answer != "yes" {
		a.println("Cancelled.")
		return nil
	}

	n, err := services.ClearAllData(ctx, a.store)
	if err != nil {
		return err
	}
	a.reloadSession(ctx)
	a.filter = models.DefaultFilter()
	a.printf("Removed %d records.\n", n)
	return nil
}
