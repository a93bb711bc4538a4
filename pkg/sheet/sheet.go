// Package sheet imports schools from and exports ranked results to xlsx files.
package sheet

import (
	"fmt"
	"strings"

	"github.com/kass/go-school-locator/pkg/models"
	"github.com/xuri/excelize/v2"
)

// DefaultSheet is used when the caller does not name a sheet
const DefaultSheet = "Schools"

// Row is one imported line, kept as raw cell text so that the directory
// validator decides what is acceptable
type Row struct {
	Line      int
	Name      string
	Address   string
	Latitude  string
	Longitude string
}

// ReadSchools reads columns A..D (name, address, latitude, longitude) from
// sheetName, skipping the header row and blank lines
func ReadSchools(path, sheetName string) ([]Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}

	var out []Row
	for i, cells := range rows {
		if i == 0 {
			continue // header
		}
		if isBlank(cells) {
			continue
		}
		out = append(out, Row{
			Line:      i + 1,
			Name:      cell(cells, 0),
			Address:   cell(cells, 1),
			Latitude:  decimal(cell(cells, 2)),
			Longitude: decimal(cell(cells, 3)),
		})
	}
	return out, nil
}

// WriteRanked writes one row per ranked school to a new workbook at path
func WriteRanked(path, sheetName string, ranked []models.RankedSchool) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return err
	}

	headers := []interface{}{"Rank", "ID", "Name", "Address", "Latitude", "Longitude", "Distance (km)"}
	if err := sw.SetRow("A1", headers); err != nil {
		return err
	}

	for i, r := range ranked {
		cellName, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			i + 1, r.ID, r.Name, r.Address, r.Latitude, r.Longitude, r.DistanceKm,
		}
		if err := sw.SetRow(cellName, row); err != nil {
			return err
		}
	}

	if err := sw.Flush(); err != nil {
		return err
	}

	f.SetActiveSheet(index)
	if sheetName != "Sheet1" {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

func cell(cells []string, i int) string {
	if i < len(cells) {
		return strings.TrimSpace(cells[i])
	}
	return ""
}

// decimal accepts comma decimal separators as written by many locales
func decimal(s string) string {
	return strings.ReplaceAll(s, ",", ".")
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
