package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"go.uber.org/zap/zapcore"
)

const (
	envPrefix        = "CROCK32_"
	defaultChunkSize = 32 << 10
	maxChunkSize     = 1 << 20
)

// config holds the resolved command line settings.
type config struct {
	LogLevel      string // debug, info, warn, error
	LogFile       string // optional rotating JSON log file
	LogMaxSize    int    // megabytes before rotation
	LogMaxBackups int    // rotated files to keep
	LogMaxAge     int    // days to keep rotated files
	ChunkSize     int    // read/write buffer size in bytes
	Output        string // output path, stdout when empty or "-"
}

// bindFlags registers the persistent flags shared by all subcommands.
func (c *config) bindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.LogLevel, "log-level", "warn", "log level: debug|info|warn|error")
	fs.StringVar(&c.LogFile, "log-file", "", "also write JSON logs to this file (rotated)")
	fs.IntVar(&c.LogMaxSize, "log-max-size", 10, "log file size in MB before rotation")
	fs.IntVar(&c.LogMaxBackups, "log-max-backups", 3, "rotated log files to keep")
	fs.IntVar(&c.LogMaxAge, "log-max-age", 7, "days to keep rotated log files")
	fs.IntVar(&c.ChunkSize, "chunk-size", defaultChunkSize, "streaming buffer size in bytes")
	fs.StringVarP(&c.Output, "output", "o", "", "output file (default stdout)")
}

// applyEnv fills flags the user did not set from CROCK32_* variables,
// e.g. --log-level from CROCK32_LOG_LEVEL.
func applyEnv(fs *pflag.FlagSet, lookupEnv func(string) (string, bool)) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Changed {
			return
		}
		name := envPrefix + strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
		value, ok := lookupEnv(name)
		if !ok {
			return
		}
		if setErr := fs.Set(f.Name, value); setErr != nil {
			err = errors.Wrapf(setErr, "invalid %s", name)
		}
	})
	return err
}

func (c *config) validate() error {
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "invalid --log-level")
	}
	if c.ChunkSize < 1 || c.ChunkSize > maxChunkSize {
		return errors.Errorf("--chunk-size must be 1-%d bytes, got %d", maxChunkSize, c.ChunkSize)
	}
	if c.LogMaxSize < 1 {
		return errors.Errorf("--log-max-size must be positive, got %d", c.LogMaxSize)
	}
	if c.LogMaxBackups < 0 || c.LogMaxAge < 0 {
		return errors.New("--log-max-backups and --log-max-age must not be negative")
	}
	return nil
}
