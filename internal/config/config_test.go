package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, k := range []string{"APP_ENV", "SHEET_URL", "FORM_URL", "REPORT_URL", "FETCH_TIMEOUT", "DIRECTORY_SEARCH", "DIRECTORY_SORT", "DIRECTORY_DETAIL"} {
			t.Setenv(k, "")
		}

		cfg := LoadFromEnv()

		assert.Equal(t, "development", cfg.AppEnv)
		assert.Equal(t, defaultSheetURL, cfg.SheetURL)
		assert.Equal(t, defaultFormURL, cfg.FormURL)
		assert.Equal(t, defaultReport, cfg.ReportURL)
		assert.Equal(t, 15*time.Second, cfg.FetchTimeout)
		assert.Equal(t, "quality_desc", cfg.Sort)
		assert.Empty(t, cfg.Search)
		assert.Empty(t, cfg.Detail)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		t.Setenv("SHEET_URL", "http://localhost/sheet.tsv")
		t.Setenv("FETCH_TIMEOUT", "3s")
		t.Setenv("DIRECTORY_SEARCH", "иван")
		t.Setenv("DIRECTORY_SORT", "name_asc")
		t.Setenv("DIRECTORY_DETAIL", "Иванов")

		cfg := LoadFromEnv()

		assert.Equal(t, "production", cfg.AppEnv)
		assert.Equal(t, "http://localhost/sheet.tsv", cfg.SheetURL)
		assert.Equal(t, 3*time.Second, cfg.FetchTimeout)
		assert.Equal(t, "иван", cfg.Search)
		assert.Equal(t, "name_asc", cfg.Sort)
		assert.Equal(t, "Иванов", cfg.Detail)
	})

	t.Run("invalid timeout falls back", func(t *testing.T) {
		t.Setenv("FETCH_TIMEOUT", "soon")
		assert.Equal(t, 15*time.Second, LoadFromEnv().FetchTimeout)

		t.Setenv("FETCH_TIMEOUT", "-1s")
		assert.Equal(t, 15*time.Second, LoadFromEnv().FetchTimeout)
	})
}

func TestNewLogger(t *testing.T) {
	for _, env := range []string{"production", "development"} {
		logger, err := NewLogger(&Config{AppEnv: env})
		require.NoError(t, err)
		assert.NotNil(t, logger)
	}
}
