package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/arnavshah/scheduler-cli-go/internal/config"
	"github.com/arnavshah/scheduler-cli-go/pkg/handlers"
)

// serveCmd exposes the scheduling pipeline as a JSON API
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scheduler as a JSON API",
	Long: `Starts an HTTP server running the same assignment pipeline per
request:

  POST /api/schedule  run one assignment over the posted input
  POST /api/validate  check an input without running it
  GET  /              service banner

Configuration comes from SCHEDULER_* environment variables or a .env
file: port, gin mode, log level and log format.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load .env if it exists
	// Try root and parent directories for flexibility
	envPaths := []string{".env", "../.env", "../../.env"}
	for _, p := range envPaths {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			break
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	log.SetOutput(os.Stdout)
	log.SetLevel(level)
	if cfg.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	gin.SetMode(cfg.GinMode)

	h := handlers.NewHandler(log, version)

	log.WithFields(logrus.Fields{"addr": cfg.Addr(), "gin_mode": cfg.GinMode}).Info("server starting")
	return h.Router().Run(cfg.Addr())
}
