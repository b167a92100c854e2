package main

import (
	"context"
	"os"

	"github.com/aislekit/aislekit/internal/buildinfo"
	"github.com/aislekit/aislekit/internal/client/cli"
	"github.com/aislekit/aislekit/internal/client/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app := cli.NewApp(cfg)

	app.Run(ctx)
}
