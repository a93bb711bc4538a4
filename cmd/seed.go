package main

import (
	"context"
	"errors"
	"log/slog"

	"github.com/kass/go-school-locator/pkg/directory"
	"github.com/kass/go-school-locator/pkg/sheet"
	"github.com/kass/go-school-locator/pkg/store"
	"github.com/kass/go-school-locator/pkg/validate"
	"github.com/spf13/cobra"
)

var (
	seedFile  string
	seedSheet string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load sample schools or import a spreadsheet",
	Long: `Without --file, inserts the built-in sample schools if the store is empty.
With --file, registers every row of the given xlsx sheet (name, address,
latitude, longitude); rows that fail validation are skipped and logged.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "xlsx file to import")
	seedCmd.Flags().StringVar(&seedSheet, "sheet", sheet.DefaultSheet, "Sheet name inside the workbook")
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	e, err := setup(ctx)
	if err != nil {
		return err
	}
	defer e.store.Close()

	if seedFile == "" {
		n, err := store.Seed(ctx, e.store, store.SampleSchools())
		if err != nil {
			return err
		}
		e.logger.Info("sample schools seeded", "inserted", n)
		return nil
	}

	rows, err := sheet.ReadSchools(seedFile, seedSheet)
	if err != nil {
		return err
	}

	svc := directory.NewService(e.store, e.logger)
	added, skipped, err := importRows(ctx, svc, rows, e.logger)
	if err != nil {
		return err
	}
	e.logger.Info("spreadsheet imported", "file", seedFile, "added", added, "skipped", skipped)
	return nil
}

// importRows registers each row, skipping the invalid ones. A store failure
// aborts the import.
func importRows(ctx context.Context, svc *directory.Service, rows []sheet.Row, logger *slog.Logger) (added, skipped int, err error) {
	for _, row := range rows {
		_, err := svc.Register(ctx, directory.RegisterRequest{
			Name:      row.Name,
			Address:   row.Address,
			Latitude:  row.Latitude,
			Longitude: row.Longitude,
		})

		var verr *validate.ValidationError
		switch {
		case err == nil:
			added++
		case errors.As(err, &verr):
			skipped++
			logger.Warn("row skipped", "line", row.Line, "problems", verr.Problems)
		default:
			return added, skipped, err
		}
	}
	return added, skipped, nil
}
