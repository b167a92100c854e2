package main

import (
	"context"
	"log"
	"os"

	"github.com/aislekit/aislekit/internal/buildinfo"
	"github.com/aislekit/aislekit/internal/server"
	"github.com/aislekit/aislekit/internal/server/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Printf("%v", err)
	}
}
