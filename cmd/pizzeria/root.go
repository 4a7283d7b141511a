package main

import (
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/auth"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/config"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/controllers"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/server"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "pizzeria",
		Short:        "Pizza restaurants API",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load environment variables
			loadDotenvFile()
			// Initialize logger
			setUpLogger()
		},
	}

	root.AddCommand(newServeCommand())
	root.AddCommand(newSeedCommand())
	root.AddCommand(newClientCommand())
	return root
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// applyLogLevel propagates LOG_LEVEL to the package loggers
func applyLogLevel(conf *config.Config) {
	level, err := log.ParseLevel(conf.LogLevel)
	if err != nil {
		return
	}
	log.SetLevel(level)
	config.SetLogLevel(level)
	database.SetLogLevel(level)
	auth.SetLogLevel(level)
	services.SetLogLevel(level)
	controllers.SetLogLevel(level)
	server.SetLogLevel(level)
}

// openDatabase loads the configuration, connects and migrates the schema
func openDatabase() (*config.Config, *gorm.DB, error) {
	conf, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	applyLogLevel(conf)

	db, err := database.InitDatabase(conf.Database())
	if err != nil {
		return nil, nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, nil, err
	}
	return conf, db, nil
}
