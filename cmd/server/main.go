package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/dlevchenko/staffgraph/internal/config"
	"github.com/dlevchenko/staffgraph/internal/server"
)

func main() {

	// optional .env for local development
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Printf("%v", err)
	}
}
