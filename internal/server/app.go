// Package server initializes and runs the application: it connects the
// database, wires repositories, services, and the GraphQL schema, and starts
// the HTTP server with graceful shutdown.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/graphql-go/graphql"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dlevchenko/staffgraph/internal/config"
	"github.com/dlevchenko/staffgraph/internal/employees"
	"github.com/dlevchenko/staffgraph/internal/graph"
	"github.com/dlevchenko/staffgraph/internal/logging"
	"github.com/dlevchenko/staffgraph/internal/mongodb"
	employeesrepo "github.com/dlevchenko/staffgraph/internal/repositories/employees"
	usersrepo "github.com/dlevchenko/staffgraph/internal/repositories/users"
	"github.com/dlevchenko/staffgraph/internal/users"
)

type App struct {
	config *config.Config
	logger logging.Logger
	client *mongo.Client
	schema graphql.Schema
}

// NewApp connects to MongoDB and assembles the resolver stack. The database
// handle is constructed here and injected explicitly; no package holds an
// ambient connection.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewJSON()

	client, err := mongodb.Connect(ctx, cfg.DatabaseURI)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	db := client.Database(cfg.DatabaseName)

	us := users.NewService(usersrepo.NewMongoRepository(db), cfg)
	es := employees.NewService(employeesrepo.NewMongoRepository(db))

	schema, err := graph.NewSchema(&graph.Resolver{Users: us, Employees: es})
	if err != nil {
		return nil, fmt.Errorf("schema init error: %w", err)
	}

	return &App{config: cfg, logger: logger, client: client, schema: schema}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until the context is canceled or a signal arrives, then shuts
// down the HTTP server and disconnects the database.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	srv := NewHTTPServer(app.config.Addr, app.logger, app.schema)
	err := srv.Run(ctx)

	if dErr := app.client.Disconnect(context.Background()); dErr != nil {
		app.logger.Error(ctx, "error disconnecting from mongodb", "error", dErr)
	}

	return err
}
