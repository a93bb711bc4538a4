package sheet

import (
	"path/filepath"
	"testing"

	"github.com/kass/go-school-locator/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, sheetName string, rows [][]interface{}) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schools.xlsx")

	f := excelize.NewFile()
	defer f.Close()
	_, err := f.NewSheet(sheetName)
	require.NoError(t, err)

	for i, row := range rows {
		cellName, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheetName, cellName, &row))
	}
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadSchools(t *testing.T) {
	path := writeWorkbook(t, DefaultSheet, [][]interface{}{
		{"Name", "Address", "Latitude", "Longitude"},
		{"Garfield High School", "400 23rd Ave, Seattle, WA", 47.6062, -122.3321},
		{"", "", "", ""},
		{"  Lowell High School ", "1101 Eucalyptus Dr", "37,7308", "-122,4836"},
		{"Half Row", "Somewhere"},
	})

	rows, err := ReadSchools(path, DefaultSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, Row{
		Line:      2,
		Name:      "Garfield High School",
		Address:   "400 23rd Ave, Seattle, WA",
		Latitude:  "47.6062",
		Longitude: "-122.3321",
	}, rows[0])

	assert.Equal(t, 4, rows[1].Line)
	assert.Equal(t, "Lowell High School", rows[1].Name)
	assert.Equal(t, "37.7308", rows[1].Latitude)
	assert.Equal(t, "-122.4836", rows[1].Longitude)

	assert.Equal(t, "Half Row", rows[2].Name)
	assert.Empty(t, rows[2].Latitude)
	assert.Empty(t, rows[2].Longitude)
}

func TestReadSchoolsErrors(t *testing.T) {
	_, err := ReadSchools(filepath.Join(t.TempDir(), "missing.xlsx"), DefaultSheet)
	assert.Error(t, err)

	path := writeWorkbook(t, DefaultSheet, [][]interface{}{{"Name"}})
	_, err = ReadSchools(path, "Nope")
	assert.Error(t, err)
}

func TestWriteRanked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ranked.xlsx")
	ranked := []models.RankedSchool{
		{School: models.School{ID: 3, Name: "La Jolla High School", Address: "750 Nautilus St", Latitude: 32.8328, Longitude: -117.2713}, DistanceKm: 16.42},
		{School: models.School{ID: 1, Name: "Garfield High School", Address: "400 23rd Ave", Latitude: 47.6062, Longitude: -122.3321}, DistanceKm: 1712.05},
	}

	require.NoError(t, WriteRanked(path, "Nearest", ranked))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Nearest"}, f.GetSheetList())

	rows, err := f.GetRows("Nearest")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Distance (km)", rows[0][6])
	assert.Equal(t, []string{"1", "3", "La Jolla High School", "750 Nautilus St", "32.8328", "-117.2713", "16.42"}, rows[1])
	assert.Equal(t, "Garfield High School", rows[2][2])
	assert.Equal(t, "1712.05", rows[2][6])
}

func TestWriteRankedEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, WriteRanked(path, DefaultSheet, nil))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(DefaultSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
