package main

import (
	"context"
	"fmt"
	"hotelier/config"
	"hotelier/di"
	"hotelier/shared/logger"
	"os"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	app := newApp(cfg, di.InitializeServices, os.Stdout)
	err := app.root.ExecuteContext(context.Background())

	app.shutdown()

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}
