package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/bazooka-parts/backend/internal/config"
	"github.com/bazooka-parts/backend/internal/controllers/healthz"
	v1 "github.com/bazooka-parts/backend/internal/controllers/v1"
	"github.com/bazooka-parts/backend/internal/models"
	"github.com/bazooka-parts/backend/internal/router"
	"github.com/bazooka-parts/backend/internal/watch"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title			Bazooka Parts Backend
// @description	The backend for Bazooka Parts, a bicycle parts inventory.
// @license.name	AGPL-3.0
//
// @contact.name	GitHub issues of the backend repository
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// gin uses debug as the default mode, we use release for
	// security reasons
	gin.SetMode(cfg.GinMode)

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stdout)
	if (cfg.LogFormat == "" && gin.IsDebugging()) || cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	zerolog.SetGlobalLevel(level)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	// Create the data directory for the database file
	err = os.MkdirAll(filepath.Dir(cfg.DBPath), os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// The hub distributes database change notifications to all live
	// query subscriptions and to the event stream
	hub := watch.NewHub()

	db, err := models.Connect(cfg.DBPath, hub)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	r, err := router.Router(cfg, v1.NewController(db, hub), healthz.NewController(db))
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
