package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/authgate/internal/server"
	"github.com/dmitrijs2005/authgate/internal/server/config"
)

func main() {

	// optional .env for JWT_SECRET_KEY etc.
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)
}
