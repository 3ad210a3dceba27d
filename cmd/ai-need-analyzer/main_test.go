package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"ai-need-analyzer/internal/config"
	"ai-need-analyzer/internal/loader"
	"ai-need-analyzer/internal/logger"
	"ai-need-analyzer/internal/models"
	"ai-need-analyzer/internal/views"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testConfig(dataFile string) *config.Config {
	return &config.Config{
		Data:   config.DataConfig{File: dataFile},
		Window: config.WindowConfig{Width: 640, Height: 450},
		Chart:  config.ChartConfig{Width: 400, Height: 300},
		Log:    config.LogConfig{Level: "info", Format: "console"},
	}
}

func writeWorkbook(t *testing.T, path string) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"AI need survey"},
		{"unit: %"},
		{models.HeaderIndustry, models.HeaderVeryNeed, models.HeaderSomeNeed, models.HeaderLessNeed, models.HeaderNeverNeed},
		{models.IndustryManufacturing, 10, 20, 40, 30},
	}
	for i, row := range rows {
		axis, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, axis, &row))
	}
	require.NoError(t, f.SaveAs(path))
}

func TestNewApplicationLoadFailureOpensNoWindow(t *testing.T) {
	fyneApp := test.NewTempApp(t)
	cfg := testConfig(filepath.Join(t.TempDir(), "missing.xlsx"))

	application, err := NewApplication(fyneApp, cfg, logger.NewNop(), nil)

	require.Error(t, err)
	assert.Nil(t, application)

	var loadErr *loader.LoadError
	assert.True(t, errors.As(err, &loadErr))
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Empty(t, fyneApp.Driver().AllWindows())
}

func TestNewApplicationWiresMainWindow(t *testing.T) {
	fyneApp := test.NewTempApp(t)
	path := filepath.Join(t.TempDir(), "survey.xlsx")
	writeWorkbook(t, path)

	application, err := NewApplication(fyneApp, testConfig(path), logger.NewNop(), nil)
	require.NoError(t, err)
	t.Cleanup(application.window.Close)

	windows := fyneApp.Driver().AllWindows()
	require.Len(t, windows, 1)
	assert.Equal(t, views.Title, windows[0].Title())
	assert.Equal(t, 1, application.table.Len())
	assert.Equal(t, models.IndustryManufacturing, application.view.SelectedIndustry())
}
