package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/goaltracker/internal/client/client"
	"github.com/dmitrijs2005/goaltracker/internal/client/config"
	"github.com/dmitrijs2005/goaltracker/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/goaltracker/internal/client/services"
	"github.com/dmitrijs2005/goaltracker/internal/client/session"
	"github.com/dmitrijs2005/goaltracker/internal/client/storage"
	"github.com/dmitrijs2005/goaltracker/internal/logging"
)

type App struct {
	config *config.Config
	log    logging.Logger
	db     *sql.DB

	authService    services.AuthService
	goalService    services.GoalService
	taskService    services.TaskService
	recService     services.RecommendationService
	profileService services.ProfileService
	session        *session.Store

	reader *bufio.Reader
	out    io.Writer
}

// NewApp wires the client stack described by c. The returned App owns the
// session database; call Close when done.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log, err := logging.New(c.LogLevel, c.LogFormat, os.Stderr)
	if err != nil {
		return nil, err
	}

	db, err := storage.Open(ctx, c.StoragePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.StoragePath, "error", err)
		return nil, err
	}

	tokens := storage.NewSQLiteTokenStore(metadata.NewSQLiteRepository(db))

	app, err := newApp(c, log, tokens)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	app.db = db
	return app, nil
}

func newApp(c *config.Config, log logging.Logger, tokens client.TokenStore) (*App, error) {
	api, err := client.NewHTTPClient(c.APIBaseURL, tokens,
		client.WithTimeout(c.RequestTimeout),
		client.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}

	auth := services.NewAuthService(api, tokens, log)
	sess := session.New(auth, log)
	api.OnUnauthorized(sess.Invalidate)

	return &App{
		config:         c,
		log:            log,
		authService:    auth,
		goalService:    services.NewGoalService(api),
		taskService:    services.NewTaskService(api),
		recService:     services.NewRecommendationService(api),
		profileService: services.NewProfileService(api),
		session:        sess,
		reader:         bufio.NewReader(os.Stdin),
		out:            os.Stdout,
	}, nil
}

// Run checks the stored session and starts the REPL. It blocks until the
// user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to GoalTracker CLI (type 'help' for commands)")

	a.session.Init(ctx)
	a.printSession()

	runREPL(ctx, a, a.status, bufio.NewScanner(a.reader))
}

// Close tears down the session store and releases local resources.
func (a *App) Close() error {
	a.session.Close()

	if s, ok := a.log.(interface{ Sync() error }); ok {
		_ = s.Sync()
	}
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.session.Snapshot().Authenticated()
}

func (a *App) status() string {
	snap := a.session.Snapshot()
	switch {
	case snap.Loading:
		return "(checking)"
	case snap.Authenticated():
		return fmt.Sprintf("(%s)", snap.User.Name)
	default:
		return ""
	}
}

func (a *App) printSession() {
	snap := a.session.Snapshot()
	switch {
	case snap.Authenticated():
		fmt.Fprintf(a.out, "Logged in as %s <%s>\n", snap.User.Name, snap.User.Email)
	case snap.Error != "":
		fmt.Fprintf(a.out, "Session expired: %s\n", snap.Error)
	default:
		fmt.Fprintln(a.out, "Not logged in. Use 'login' or 'register'.")
	}
}
