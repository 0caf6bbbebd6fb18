package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type AppProvider interface {
	Run() error
	Serve() func() error
	Stop(context.Context, context.Context) func() error
}

type App struct {
	logger         *zap.Logger
	config         *Config
	server         *http.Server
	cleanups       []func() error
	queueConsumers []func(context.Context) error
}

// NewApp provides an instance of App configured from the given files.
func NewApp(configFile, envFile string) (AppProvider, error) {
	config, err := LoadAndInitConfigs(configFile, envFile, GitCommit, GitTag, BuildTime)
	if err != nil {
		return nil, fmt.Errorf("failed to setup app configuration: %w", err)
	}

	// ensure the logs folder exists and Setup the logging module.
	err = os.MkdirAll(config.LogFolder, 0o700)
	if err != nil {
		return nil, fmt.Errorf("failed to create logging folder: %w", err)
	}
	clock := NewClock(config.IsProduction)
	logWriter := NewRotatingLogWriter(config, clock)
	logger, flusher := SetupLogging(config, logWriter, clock)

	app := &App{
		logger: logger,
		config: config,
	}
	app.cleanups = append(app.cleanups, logWriter.Close, flusher)

	storage, queue, err := app.setupStorage()
	if err != nil {
		app.Clean()
		return nil, err
	}

	bookService := NewBookService(logger, NewObjectIDsHandler(), storage, queue)
	apiService := NewAPIHandler(
		logger,
		config,
		&Statistics{
			version:   config.GitTag,
			container: IsAppRunningInDocker(),
			started:   clock.Now(),
			runtime:   runtime.Version(),
			platform:  runtime.GOOS + "/" + runtime.GOARCH,
		},
		clock,
		NewMetrics(),
		bookService,
	)

	// Use git commit in case the tag is not set.
	if config.GitTag == "" {
		apiService.stats.version = config.GitCommit
	}

	// Build the map of middlewares stacks.
	middlewaresPublic, middlewaresOps := apiService.MiddlewaresStacks()

	// Configure the endpoints with their handlers and middlewares.
	router := apiService.SetupRoutes(httprouter.New(),
		&MiddlewareMap{
			public: middlewaresPublic.Chain,
			ops:    middlewaresOps.Chain,
		},
	)
	// Wrap the router with the default http timeout handler.
	routerWithTimeout := http.TimeoutHandler(
		router,
		config.Server.RequestTimeout,
		"Timeout. Processing taking too long. Please reach out to support.")

	// Build the api server definition.
	app.server = &http.Server{
		Addr:           fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
		Handler:        routerWithTimeout,
		ReadTimeout:    config.Server.ReadTimeout,
		WriteTimeout:   config.Server.WriteTimeout,
		MaxHeaderBytes: 1 << 20, // Max headers size : 1MB
	}

	return app, nil
}

// setupStorage connects to the configured primary storage and, when replication
// is enabled, to the redis queue and the boltdb replica fed by a queue consumer.
// Every opened client registers its own cleanup.
func (app *App) setupStorage() (BookStorage, Queuer, error) {
	config := app.config
	var storage BookStorage
	var queue Queuer

	if config.Storage.Driver == MongoDriver {
		mongoClient, err := GetMongoClient(config)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to mongo server: %w", err)
		}
		app.cleanups = append(app.cleanups, func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return mongoClient.Disconnect(ctx)
		})
		storage = NewMongoBookStorage(app.logger, mongoClient, &config.Mongo)
	}

	if config.NeedsRedis() {
		redisClient, err := GetRedisClient(config)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to redis server: %w", err)
		}
		app.cleanups = append(app.cleanups, redisClient.Close)
		if config.Storage.Driver == RedisDriver {
			storage = NewRedisBookStorage(app.logger, redisClient)
		}
		if config.Replication.Enable {
			queue = NewRedisQueue(redisClient)
		}
	}

	if config.NeedsBoltDB() {
		boltDBClient, err := GetBoltDBClient(config)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to boltDB server: %w", err)
		}
		app.cleanups = append(app.cleanups, boltDBClient.Close)
		boltBookStorage := NewBoltBookStorage(app.logger, &config.BoltDB, boltDBClient)
		if config.Storage.Driver == BoltDriver {
			storage = boltBookStorage
		}
		if queue != nil {
			consumer := NewReplicaConsumer(app.logger.With(zap.String("component", "replica")), queue, boltBookStorage)
			app.queueConsumers = append(app.queueConsumers, func(ctx context.Context) error {
				return consumer.Consume(ctx, AllQueues...)
			})
		}
	}

	app.logger.Info("storage ready",
		zap.String("storage.driver", config.Storage.Driver),
		zap.Bool("replication.enable", config.Replication.Enable),
	)
	return storage, queue, nil
}

// Run starts the api web server and a goroutine which is responsible to stop it.
func (app *App) Run() error {
	defer app.Clean()
	nCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(nCtx)

	g.Go(app.ConsumeQueues(gCtx, g))
	g.Go(app.Serve())
	g.Go(app.Stop(nCtx, gCtx))

	err := g.Wait()
	app.logger.Info("api server stopped",
		zap.String("app.host", app.config.Server.Host),
		zap.String("app.port", app.config.Server.Port),
		zap.Error(err),
	)
	return err
}

// Clean calls all registered cleanups functions in reverse order.
// The logs flusher and writer are registered first so they run last.
func (app *App) Clean() {
	for i := len(app.cleanups) - 1; i >= 0; i-- {
		if err := app.cleanups[i](); err != nil {
			fmt.Fprintln(os.Stderr, "error during cleanup: ", err)
		}
	}
}

// Serve starts the api web server. It returned error
// will be caught by the errorgroup.
func (app *App) Serve() func() error {
	return func() error {
		app.logger.Info("api server starting",
			zap.String("app.host", app.config.Server.Host),
			zap.String("app.port", app.config.Server.Port),
		)
		err := app.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		return err
	}
}

// Stop listens for the group context and triggers the server graceful shutdown.
// It states the reason of its call. We proceed with a brutal shutdown if the
// the graceful did not complete successfully. We explicitly return `nil` to
// allow the errorgroup catches only the `Serve` method result.
func (app *App) Stop(nCtx, gCtx context.Context) func() error {
	return func() error {
		<-gCtx.Done()

		if nCtx.Err() != nil {
			app.logger.Info("api server stopping. reason: requested to stop")
		} else {
			app.logger.Info("api server stopping. reason: errored at running")
		}

		sCtx, cancel := context.WithTimeout(context.Background(), app.config.Server.ShutdownTimeout)
		defer cancel()
		err := app.server.Shutdown(sCtx)
		switch {
		case err == nil, errors.Is(err, http.ErrServerClosed):
			app.logger.Info("api server graceful shutdown succeeded")
		case errors.Is(err, context.DeadlineExceeded):
			app.logger.Info("api server graceful shutdown timed out")
		default:
			app.logger.Info("api server graceful shutdown failed", zap.Error(err))
		}

		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.logger.Info("api server going to force shutdown", zap.Error(app.server.Close()))
		}
		return nil
	}
}

// ConsumeQueues runs all queue consumers into separate controlled goroutines.
func (app *App) ConsumeQueues(gCtx context.Context, g *errgroup.Group) func() error {
	return func() error {
		for _, consume := range app.queueConsumers {
			consume := consume
			g.Go(func() error {
				return consume(gCtx)
			})
		}
		return nil
	}
}
