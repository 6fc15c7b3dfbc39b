package cmd

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "veil", configBaseName)
	assert.Equal(t, "veil.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "exclude", excludeFlagName)
	assert.Equal(t, "parallel", parallelFlagName)
	assert.Equal(t, "output-dir", outputDirFlagName)
	assert.Equal(t, "anonymize.parallel", parallelConfigKey)
	assert.Equal(t, "anonymize.preserve_strings", preserveStringsConfigKey)
	assert.Equal(t, "anonymize.preserve_comments", preserveCommentsConfigKey)
	assert.Equal(t, "paths.exclude", excludeConfigKey)
	assert.Equal(t, "output.dir", outputDirConfigKey)
	assert.Equal(t, true, defaultPreserveStrings)
	assert.Equal(t, true, defaultPreserveComments)
	assert.Equal(t, 4, defaultParallel)
	assert.Equal(t, "VEIL", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelWarn},
		{"debug", slog.LevelDebug},
		{" INFO ", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelWarn))
		})
	}
}

func TestEnvironmentOverridesDefaults(t *testing.T) {
	resetConfig(t)
	t.Setenv("VEIL_ANONYMIZE_PARALLEL", "9")
	t.Setenv("VEIL_OUTPUT_DIR", "anon")

	opts := optionsFromConfig()
	assert.True(t, opts.PreserveStrings)

	cmd := newAnonymizeCmd()
	bindOptionFlags(cmd)

	parallel, err := cmd.Flags().GetInt(parallelFlagName)
	require.NoError(t, err)
	assert.Equal(t, 9, parallel)

	outputDir, err := cmd.Flags().GetString(outputDirFlagName)
	require.NoError(t, err)
	assert.Equal(t, "anon", outputDir)
}

func TestConfigureLogger(t *testing.T) {
	resetConfig(t)

	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	logPath := filepath.Join(t.TempDir(), "veil.log")

	configureLogger(logPath, false)
	slog.Debug("hidden")
	slog.Info("visible", "file", "Main.java")

	contents, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "visible")
	assert.Contains(t, string(contents), "file=Main.java")
	assert.NotContains(t, string(contents), "hidden")

	configureLogger(logPath, true)
	slog.Debug("now shown")

	contents, err = os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "now shown")
}

func TestReadConfig(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		write    bool
		wantErr  bool
		parallel int
	}{
		{name: "missing file uses defaults", parallel: defaultParallel},
		{name: "valid file", contents: "anonymize:\n  parallel: 7\n", write: true, parallel: 7},
		{name: "malformed file", contents: "anonymize: [\n", write: true, wantErr: true, parallel: defaultParallel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetConfig(t)
			dir := chdirTemp(t)

			if tt.write {
				require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte(tt.contents), 0o644))
			}

			err := readConfig()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), configFileName)
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, tt.parallel, viper.GetInt(parallelConfigKey))
		})
	}
}

func TestRootCmd_WarnsAboutUnreadableConfig(t *testing.T) {
	resetConfig(t)

	original := configReadErr
	configReadErr = errors.New("read veil.yaml: yaml: line 1: did not find expected node content")
	t.Cleanup(func() { configReadErr = original })

	stderr := &bytes.Buffer{}

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(stderr)
	cmd.SetArgs([]string{"--log-file", filepath.Join(t.TempDir(), "veil.log")})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stderr.String(), "warning: read veil.yaml")
	assert.Contains(t, stderr.String(), "using defaults")
}
