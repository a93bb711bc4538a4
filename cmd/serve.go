package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/kass/go-school-locator/pkg/api"
	"github.com/kass/go-school-locator/pkg/directory"
	"github.com/kass/go-school-locator/pkg/store"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	e, err := setup(ctx)
	if err != nil {
		return err
	}
	defer e.store.Close()

	if e.cfg.Seed {
		n, err := store.Seed(ctx, e.store, store.SampleSchools())
		if err != nil {
			return err
		}
		e.logger.Info("sample schools seeded", "inserted", n)
	}

	if e.cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	svc := directory.NewService(e.store, e.logger)
	router := api.NewRouter(svc, e.logger)

	return api.NewServer(e.cfg.HTTP, router, e.logger).Run(ctx)
}
