package main

import (
	"os"

	"github.com/trueproject/capstone/internal/pkg/logger"
	"github.com/trueproject/capstone/internal/server"
)

// @title Capstone Registration API
// @version 1.0
// @description API for capstone-project team registration and mentor allocation

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until a shutdown signal or a startup failure.
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
