package initcmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/marginalia/internal/core/config"
)

func TestBackupConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	backup, err := BackupConfig(path)
	require.NoError(t, err)
	assert.Empty(t, backup, "missing config needs no backup")

	require.NoError(t, os.WriteFile(path, []byte("theme: gruvbox\n"), 0o644))
	assert.True(t, ConfigExists(path))

	backup, err = BackupConfig(path)
	require.NoError(t, err)
	assert.Equal(t, path+".bak", backup)

	data, err := os.ReadFile(backup)
	require.NoError(t, err)
	assert.Equal(t, "theme: gruvbox\n", string(data))
}

func TestWriteConfig_LoadsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := GenerateConfig(ConfigOptions{Theme: "gruvbox", SliderStep: 10})
	require.NoError(t, WriteConfig(cfg, path))

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, *loaded)
	assert.Equal(t, "gruvbox", loaded.Theme)
	assert.Equal(t, 10, loaded.SliderStep)
}

func TestWriteConfig_RejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := GenerateConfig(ConfigOptions{Theme: "neon"})
	require.Error(t, WriteConfig(cfg, path))
	assert.False(t, ConfigExists(path))
}

func TestGenerateConfig_Defaults(t *testing.T) {
	assert.Equal(t, config.DefaultConfig(), GenerateConfig(ConfigOptions{}))
}

func TestValidateStep(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{in: "5"},
		{in: "1"},
		{in: "100"},
		{in: "0", wantErr: true},
		{in: "101", wantErr: true},
		{in: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			err := validateStep(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWizard_YesWithExistingConfigRequiresForce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o644))

	w := NewWizard(WizardOptions{ConfigPath: path, Yes: true})
	err := w.Run(t.Context())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")
}

func TestWizard_YesForceWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o644))

	w := NewWizard(WizardOptions{ConfigPath: path, Yes: true, Force: true, Theme: "paper"})
	require.NoError(t, w.Run(t.Context()))

	assert.FileExists(t, path+".bak")
	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "paper", loaded.Theme)
}
