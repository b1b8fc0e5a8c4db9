package main

import (
	"blog-server/confs"
	"blog-server/db"
	"blog-server/server"
)

func main() {
	// load config
	envErr := confs.LoadConfig()
	cfg, warnings := confs.Load()
	logger := confs.NewLogger(cfg.AppName, cfg.Env)
	if envErr != nil {
		logger.WithError(envErr).Warn("continuing without .env")
	}
	for _, w := range warnings {
		logger.Warn(w)
	}

	// connect to database
	database, err := db.Connect(cfg, logger)
	if err != nil {
		logger.Fatalf("Failed to connect to DB: %v", err)
	}
	defer func() { _ = database.Close() }()

	// run server
	if err := server.NewServer(cfg, database, logger).Start(); err != nil {
		logger.Errorf("server stopped: %v", err)
	}
}
