// Package server wires configuration, storage, services and transports into
// the running hackernews backend and handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/hackernews/internal/logging"
	"github.com/dmitrijs2005/hackernews/internal/server/auth"
	"github.com/dmitrijs2005/hackernews/internal/server/config"
	"github.com/dmitrijs2005/hackernews/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/hackernews/internal/server/services"
	_ "github.com/jackc/pgx/v5/stdlib"

	gq "github.com/dmitrijs2005/hackernews/internal/server/graphql"
	gs "github.com/dmitrijs2005/hackernews/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	userService *services.UserService
	linkService *services.LinkService
	voteService *services.VoteService
}

func NewApp(c *config.Config) (*App, error) {

	logger := logging.New(c.LogFormat, os.Stdout)

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	tokens := auth.NewTokenService([]byte(c.SecretKey), c.TokenValidityDuration)
	identity := auth.NewIdentity(tokens)
	hasher := auth.NewPasswordHasher(c.BcryptCost)
	rm := repomanager.NewPostgresRepositoryManager()

	return &App{
		config:      c,
		logger:      logger,
		db:          db,
		repomanager: rm,
		userService: services.NewUserService(db, rm, hasher, tokens, c, logger),
		linkService: services.NewLinkService(db, rm, identity, logger),
		voteService: services.NewVoteService(db, rm, identity, logger),
	}, nil
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

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	resolver := gq.NewResolver(app.userService, app.linkService, app.voteService, app.config.HideUserEnumeration, app.logger)
	schema, err := gq.NewSchema(resolver)
	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := gq.NewServer(app.config, schema, app.logger).Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.db, app.config.HealthCheckInterval, app.logger)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run migrates the database and serves until a termination signal arrives or
// one of the servers fails.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()
	defer app.db.Close()

	app.logger.Info(ctx, "Starting app...")

	if app.config.SecretKey == config.DefaultSecretKey {
		app.logger.Warn(ctx, "using the default signing secret, set APP_SECRET in production")
	}

	if err := app.repomanager.RunMigrations(ctx, app.db); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.logger.Info(ctx, "App stopped")
	return nil
}
