package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/papacapim/papacapim/internal/client/client"
	"github.com/papacapim/papacapim/internal/client/config"
	"github.com/papacapim/papacapim/internal/client/models"
	"github.com/papacapim/papacapim/internal/client/screens"
	"github.com/papacapim/papacapim/internal/client/services"
	"github.com/papacapim/papacapim/internal/client/session"
	"github.com/papacapim/papacapim/internal/client/storage"
	"github.com/papacapim/papacapim/internal/logging"
)

type App struct {
	authService services.AuthService
	postService services.PostService
	logger      logging.Logger
	db          *sql.DB

	reader *bufio.Reader
	out    io.Writer

	// set by the screens through the Navigator methods
	route    screens.Route
	opened   *models.Post
	wentBack bool
}

// NewApp opens the session database, builds the API client on top of the
// session manager and restores a session saved by a previous run.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	sessions := session.NewManager(session.NewStore(db))

	apiClient, err := client.NewHTTPClient(c.APIBaseURL,
		client.WithTokenSource(sessions),
		client.WithTimeout(c.RequestTimeout),
		client.WithLogger(logger),
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	as := services.NewAuthService(apiClient, sessions, logger)
	ps := services.NewPostService(apiClient)

	if err := as.Restore(ctx); err != nil {
		// continue signed out
		logger.Warn(ctx, "could not restore session", "error", err)
	}

	a := newApp(as, ps, logger, os.Stdin, os.Stdout)
	a.db = db
	return a, nil
}

func newApp(as services.AuthService, ps services.PostService, logger logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		authService: as,
		postService: ps,
		logger:      logger,
		reader:      bufio.NewReader(in),
		out:         out,
	}
}

func (a *App) Run(ctx context.Context) {
	defer a.close()

	fmt.Fprintln(a.out, "Welcome to Papacapim CLI (type 'help' for commands)")
	if u, ok := a.authService.CurrentUser(); ok {
		fmt.Fprintf(a.out, "Signed in as %s\n", u.Login)
	}
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) close() {
	if a.db == nil {
		return
	}
	if err := a.db.Close(); err != nil {
		a.logger.Error(context.Background(), "closing database", "error", err)
	}
}

func (a *App) isLoggedIn() bool {
	_, ok := a.authService.CurrentUser()
	return ok
}

func (a *App) getStatus() string {
	if u, ok := a.authService.CurrentUser(); ok {
		return fmt.Sprintf("(%s)", u.Login)
	}
	return ""
}

// Alert implements screens.Alerter.
func (a *App) Alert(title, message string) {
	fmt.Fprintf(a.out, "[%s] %s\n", title, message)
}

// Navigate implements screens.Navigator.
func (a *App) Navigate(route screens.Route) {
	a.route = route
}

// OpenPost implements screens.Navigator.
func (a *App) OpenPost(post models.Post) {
	p := post
	a.opened = &p
}

// GoBack implements screens.Navigator.
func (a *App) GoBack() {
	a.wentBack = true
}

// resetNav forgets navigation requests made by a previous screen.
func (a *App) resetNav() {
	a.route = ""
	a.opened = nil
	a.wentBack = false
}
