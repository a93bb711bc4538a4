package main

import (
	"encoding/json"
	"io"

	"github.com/kass/go-school-locator/pkg/directory"
	"github.com/kass/go-school-locator/pkg/models"
	"github.com/kass/go-school-locator/pkg/sheet"
	"github.com/kass/go-school-locator/pkg/store"
	"github.com/kass/go-school-locator/pkg/validate"
	"github.com/spf13/cobra"
)

var (
	nearestLat   string
	nearestLon   string
	nearestLimit int
	nearestJSON  bool
	nearestXLSX  string
)

var nearestCmd = &cobra.Command{
	Use:   "nearest",
	Short: "List schools ordered by distance from a point",
	Example: `  school-locator nearest --lat 47.61 --lon -122.33 --limit 5
  school-locator nearest --lat 32.72 --lon -117.16 --xlsx ranked.xlsx`,
	RunE: runNearest,
}

func init() {
	nearestCmd.Flags().StringVar(&nearestLat, "lat", "", "Query latitude")
	nearestCmd.Flags().StringVar(&nearestLon, "lon", "", "Query longitude")
	nearestCmd.Flags().IntVarP(&nearestLimit, "limit", "n", 0, "Show at most this many schools (0 = all)")
	nearestCmd.Flags().BoolVar(&nearestJSON, "json", false, "Print the listing as JSON")
	nearestCmd.Flags().StringVar(&nearestXLSX, "xlsx", "", "Also write the listing to this xlsx file")
	nearestCmd.MarkFlagRequired("lat")
	nearestCmd.MarkFlagRequired("lon")
}

func runNearest(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	e, err := setup(ctx)
	if err != nil {
		return err
	}
	defer e.store.Close()

	if e.cfg.Seed {
		if _, err := store.Seed(ctx, e.store, store.SampleSchools()); err != nil {
			return err
		}
	}

	listing, err := directory.NewService(e.store, e.logger).List(ctx, nearestLat, nearestLon)
	if err != nil {
		return err
	}

	if nearestXLSX != "" {
		if err := sheet.WriteRanked(nearestXLSX, sheet.DefaultSheet, listing.Schools); err != nil {
			return err
		}
		e.logger.Info("listing written", "file", nearestXLSX, "schools", listing.Count)
	}

	// both values passed validation inside List
	var origin models.Location
	origin.Lat, _ = validate.ParseNumber(nearestLat)
	origin.Lon, _ = validate.ParseNumber(nearestLon)

	return printListing(cmd.OutOrStdout(), origin, listing, nearestLimit, nearestJSON)
}

func printListing(w io.Writer, origin models.Location, listing *directory.Listing, limit int, asJSON bool) error {
	shown := listing.Schools
	if limit > 0 && limit < len(shown) {
		shown = shown[:limit]
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(directory.Listing{Count: len(shown), Schools: shown})
	}

	_, err := io.WriteString(w, renderListing(origin, listing.Count, shown))
	return err
}
