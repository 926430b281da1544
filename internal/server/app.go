// Package server initializes and runs the metadata session keys server.
// It opens the database, applies migrations, wires the archive and the
// gRPC endpoint, and handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/teamkeeper/internal/logging"
	"github.com/dmitrijs2005/teamkeeper/internal/server/archive"
	"github.com/dmitrijs2005/teamkeeper/internal/server/auth"
	"github.com/dmitrijs2005/teamkeeper/internal/server/config"
	"github.com/dmitrijs2005/teamkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/teamkeeper/internal/server/services"

	gs "github.com/dmitrijs2005/teamkeeper/internal/server/grpc"
)

type App struct {
	config             *config.Config
	logger             logging.Logger
	db                 *sql.DB
	sessionKeysService *services.SessionKeysService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := logging.NewJSONLogger(os.Stdout, level)

	db, err := repomanager.OpenPostgres(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	arch, err := archive.New(ctx, c)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("archive init error: %w", err)
	}

	sks := services.NewSessionKeysService(db, rm, arch, logger)

	return &App{config: c, logger: logger, db: db, sessionKeysService: sks}, nil
}

// IssueToken writes an access token for userID to w. It is how operators
// hand credentials to clients; the server has no user registry of its own.
func IssueToken(w io.Writer, c *config.Config, userID string) error {
	token, err := auth.GenerateToken(userID, []byte(c.SecretKey), c.AccessTokenValidityDuration)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, token)
	return err
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()
	defer app.db.Close()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.sessionKeysService, app.config.SecretKey)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		return err
	}

	return nil
}
