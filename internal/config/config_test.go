package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scheduling/internal/model"
)

func TestLoadDefaults(t *testing.T) {
	// Act: no configuration file anywhere near a temp working directory.
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	config, err := Load("")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "subjects", config.SubjectsDir)
	assert.Equal(t, "schedules", config.OutputDir)
	assert.Equal(t, model.DefaultGeometry, config.Geometry())
	assert.False(t, config.Text)
	assert.False(t, config.ASCII)
	assert.True(t, config.PDF)
}

func TestLoadFile(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "scheduling.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
subjects_dir: input
days: 6
start_hour: 7
end_hour: 22
text: true
pdf: false
`), 0o644))

	// Act
	config, err := Load(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "input", config.SubjectsDir)
	assert.Equal(t, model.WeekGeometry{Days: 6, StartHour: 7, EndHour: 22}, config.Geometry())
	assert.True(t, config.Text)
	assert.False(t, config.PDF)
	// Untouched keys keep their defaults.
	assert.Equal(t, "schedules", config.OutputDir)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	scenarios := map[string]string{
		"too many days": "days: 9",
		"inverted day":  "start_hour: 20\nend_hour: 8",
		"missing file":  "",
	}

	for name, content := range scenarios {
		t.Run(name, func(t *testing.T) {
			// Arrange
			path := filepath.Join(t.TempDir(), "scheduling.yaml")
			if name == "missing file" {
				path = filepath.Join(t.TempDir(), "absent.yaml")
			} else {
				require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
			}

			// Act
			_, err := Load(path)

			// Assert
			assert.Error(t, err)
		})
	}
}
