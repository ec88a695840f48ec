// Package cli implements the interactive shell of the catalog application.
// It plays the role of the UI layer: it renders state snapshots and routes
// user commands to the state machines, and nothing more.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/abertrand/vitrine/internal/config"
	"github.com/abertrand/vitrine/internal/kv"
	"github.com/abertrand/vitrine/internal/logging"
	"github.com/abertrand/vitrine/internal/models"
	"github.com/abertrand/vitrine/internal/repositories/products"
	"github.com/abertrand/vitrine/internal/repositories/session"
	"github.com/abertrand/vitrine/internal/repositories/users"
	"github.com/abertrand/vitrine/internal/state"

	_ "modernc.org/sqlite"
)

type App struct {
	config  *config.Config
	auth    *state.Auth
	catalog *state.Catalog
	reader  *bufio.Reader
	db      *sql.DB
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	db, err := kv.Open(ctx, c.DatabasePath)
	if err != nil {
		return nil, err
	}

	store := kv.NewSQLiteStore(db)
	userRepo := users.NewKVRepository(store, logger)
	productRepo := products.NewKVRepository(store, logger)
	sessionRepo := session.NewKVRepository(store)

	auth := state.NewAuth(userRepo, sessionRepo, logger)
	catalog := state.NewCatalog(productRepo, auth.CurrentUser, logger, c.FetchDelay)

	return &App{
		config:  c,
		auth:    auth,
		catalog: catalog,
		reader:  bufio.NewReader(os.Stdin),
		db:      db,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	// Restore a persisted session, then load the catalog once.
	a.auth.CheckAuth(ctx)
	a.catalog.Fetch(ctx)

	// Session changes trigger a catalog reload. The coupling is
	// one-directional: the catalog never drives the auth machine.
	last := sessionEmail(a.auth.CurrentUser())
	unsubscribe := a.auth.Subscribe(func(s state.AuthSnapshot) {
		email := sessionEmail(s.User)
		if email != last {
			last = email
			a.catalog.Fetch(ctx)
		}
	})
	defer unsubscribe()

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func sessionEmail(u *models.SessionUser) string {
	if u == nil {
		return ""
	}
	return u.Email
}

func (a *App) isLoggedIn() bool {
	return a.auth.Snapshot().IsAuthenticated()
}

// status renders the prompt segment: the session user's name, or "visiteur".
func (a *App) status() string {
	if u := a.auth.CurrentUser(); u != nil {
		return u.Name
	}
	return "visiteur"
}
