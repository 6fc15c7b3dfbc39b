package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "veil"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	preserveStringsFlagName  = "preserve-strings"
	preserveCommentsFlagName = "preserve-comments"
	parallelFlagName         = "parallel"
	outputDirFlagName        = "output-dir"
	clipboardFlagName        = "clipboard"
	excludeFlagName          = "exclude"
	profilesFlagName         = "profiles"
	diffFlagName             = "diff"
	logFileFlagName          = "log-file"
	verboseFlagName          = "verbose"

	preserveStringsConfigKey  = "anonymize.preserve_strings"
	preserveCommentsConfigKey = "anonymize.preserve_comments"
	parallelConfigKey         = "anonymize.parallel"
	excludeConfigKey          = "paths.exclude"
	outputDirConfigKey        = "output.dir"
	clipboardConfigKey        = "output.clipboard"
	profilesConfigKey         = "profiles.file"

	defaultPreserveStrings  = true
	defaultPreserveComments = true
	defaultParallel         = 4
	defaultClipboard        = false

	envPrefix = "VEIL"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".veil.log"
	defaultLogLevel      = "info"
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

// configReadErr is set when veil.yaml exists but cannot be read. Commands
// still run on defaults and report it once logging is configured.
var configReadErr error

func init() {
	initConfig()
	configReadErr = readConfig()
}

// readConfig loads veil.yaml. A missing file is not an error.
func readConfig() error {
	err := viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("read %s: %w", viper.ConfigFileUsed(), err)
}

func warnConfigError(cmd *cobra.Command) {
	if configReadErr == nil {
		return
	}

	slog.Warn("Ignoring configuration file", "error", configReadErr)
	cmd.PrintErrf("warning: %v (using defaults)\n", configReadErr)
}

// initConfig registers the config file location, the environment mapping and
// every default. viper.Reset undoes all of it.
func initConfig() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(preserveStringsConfigKey, defaultPreserveStrings)
	viper.SetDefault(preserveCommentsConfigKey, defaultPreserveComments)
	viper.SetDefault(parallelConfigKey, defaultParallel)
	viper.SetDefault(excludeConfigKey, []string{})
	viper.SetDefault(outputDirConfigKey, "")
	viper.SetDefault(clipboardConfigKey, defaultClipboard)
	viper.SetDefault(profilesConfigKey, "")

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger sends the global slog logger to a rotating log file.
//
// It logs at log.level (Info by default), or at Debug when verbose is set.
// Source text never reaches the log; only paths and counts do.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	logLevel := parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	if verbose {
		logLevel = slog.LevelDebug
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: verbose,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
