// Package server wires the configured storage backend, credential hashing
// and account services together and runs the gRPC server until shutdown.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/sampleapp/internal/credential"
	"github.com/dmitrijs2005/sampleapp/internal/logging"
	"github.com/dmitrijs2005/sampleapp/internal/server/config"
	"github.com/dmitrijs2005/sampleapp/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/sampleapp/internal/server/services"

	gs "github.com/dmitrijs2005/sampleapp/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	userService *services.UserService
	authService *services.AuthService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	logger, err := logging.New(os.Stdout, c.LogLevel, c.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	rm, err := repomanager.NewRepositoryManager(c.DatabaseDriver)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	db, err := sql.Open(rm.SQLDriver(), c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := initDB(ctx, db, rm); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db init error: %w", err)
	}

	hasher, err := credential.NewHasher(c.HashScheme, c.HashParams())
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("hasher init error: %w", err)
	}
	if hasher.Name() == credential.SchemeSHA256 {
		logger.Warn(ctx, "sha256 password hashing is meant for legacy credentials only")
	}

	enc, err := credential.NewEncoder(hasher,
		credential.WithSaltLength(c.SaltLength),
		credential.WithMaxPasswordLength(c.MaxPasswordLength))
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("encoder init error: %w", err)
	}
	ver := credential.NewVerifier(hasher)

	as, err := services.NewAuthService(rm.Users(db), enc, ver, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	us := services.NewUserService(db, rm, enc, logger)

	return &App{config: c, logger: logger, db: db, userService: us, authService: as}, nil
}

func initDB(ctx context.Context, db *sql.DB, rm repomanager.RepositoryManager) error {
	if err := db.PingContext(ctx); err != nil {
		return err
	}
	return rm.RunMigrations(ctx, db)
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

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) error {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.userService, app.authService,
		app.config.SecretKey, app.config.RememberTokenValidityDuration)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return err
	}
	return nil
}

// Run serves until ctx is cancelled or a termination signal arrives, then
// closes the database.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var (
		wg     sync.WaitGroup
		runErr error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		runErr = app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.logger.Info(ctx, "Stopping app...")
	return errors.Join(runErr, app.db.Close())
}
