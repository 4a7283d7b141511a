package main

import (
	"os/signal"
	"syscall"

	_ "github.com/franciscosanchezn/pizza-restaurants-api/docs" // Import generated docs
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/server"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, db, err := openDatabase()
			if err != nil {
				return err
			}

			if conf.SeedDatabase {
				if _, err := database.Seed(cmd.Context(), db); err != nil {
					return err
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			log.Infof("Starting server on %s:%d", conf.Host, conf.Port)
			return server.Run(ctx, conf, db)
		},
	}
}
