package main

import (
	"os"

	"codicefiscale/internal/cli"
	"codicefiscale/internal/platform/config"
	"codicefiscale/internal/platform/logger"
	"codicefiscale/pkg/belfiore"
)

// main wires the municipality directory and hands off to the CLI. All
// command logic lives in internal/cli.
func main() {
	cfg := config.FromEnv()
	log := logger.New(os.Stderr)

	dir, err := loadDirectory(cfg)
	if err != nil {
		log.Fatalf("loading municipality table: %v", err)
	}

	app := cli.New(dir, os.Stdout, os.Stderr)
	os.Exit(app.Run(os.Args[1:]))
}

func loadDirectory(cfg config.CLI) (belfiore.Directory, error) {
	if cfg.BelfiorePath == "" {
		return belfiore.Load()
	}

	f, err := os.Open(cfg.BelfiorePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return belfiore.LoadReader(f)
}
