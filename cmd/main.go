package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/kass/go-school-locator/pkg/config"
	"github.com/kass/go-school-locator/pkg/logging"
	"github.com/kass/go-school-locator/pkg/store"
	"github.com/spf13/cobra"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "school-locator",
	Short: "School directory with distance-ranked listings",
	Long: `Registers schools with their coordinates and lists them ordered by
great-circle distance from a query point, over HTTP or from the command line.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "YAML config file")

	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd, nearestCmd, benchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// env is what every subcommand needs once flags are parsed
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	store  store.Store
}

func setup(ctx context.Context) (*env, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(os.Stderr, cfg.Log)
	if err != nil {
		return nil, err
	}

	st, err := store.Open(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.Database.Driver, err)
	}

	if err := st.Migrate(ctx); err != nil {
		st.Close()
		return nil, err
	}

	return &env{cfg: cfg, logger: logger, store: st}, nil
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the schools table",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd.Context())
		if err != nil {
			return err
		}
		defer e.store.Close()

		e.logger.Info("schema ready", "driver", e.cfg.Database.Driver)
		return nil
	},
}
