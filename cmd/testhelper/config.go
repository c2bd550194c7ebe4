package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/btcsuite/btclog/v2"
	flags "github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"

	"github.com/vaultsandbox/aes256/trace"
)

const defaultEnvFile = ".env"

// Config holds the I/O streams and environment used by run, so tests can
// drive the commands without touching the process.
type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// EnvFile is a dotenv file loaded before flags are parsed. Variables
	// already present in the environment take precedence. Empty disables
	// loading; a missing file is ignored.
	EnvFile string
}

// DefaultConfig returns a Config wired to the process streams.
func DefaultConfig() *Config {
	envFile := os.Getenv("AES256_ENV_FILE")
	if envFile == "" {
		envFile = defaultEnvFile
	}

	return &Config{
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		EnvFile: envFile,
	}
}

// options are the command line flags. Each may also be set from the
// environment or the env file.
type options struct {
	LogLevel string `long:"loglevel" env:"AES256_LOG_LEVEL" default:"info" description:"Logging level {trace, debug, info, warn, error, critical, off}"`
}

func run(args []string, cfg *Config) error {
	if err := loadEnvFile(cfg.EnvFile); err != nil {
		return err
	}

	var opts options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Usage = "[OPTIONS] <encrypt|expand-key|trace>"

	if len(args) > 0 {
		parser.Name = args[0]
		args = args[1:]
	}

	rest, err := parser.ParseArgs(args)
	if err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	if len(rest) < 1 {
		return errors.New("usage: testhelper [--loglevel=LEVEL] <encrypt|expand-key|trace>")
	}

	logger, err := newLogger(cfg.Stderr, opts.LogLevel)
	if err != nil {
		return err
	}
	trace.UseLogger(logger)
	defer trace.DisableLog()

	switch rest[0] {
	case "encrypt":
		return runEncrypt(cfg)
	case "expand-key":
		return runExpandKey(cfg)
	case "trace":
		return runTrace(cfg)
	default:
		return fmt.Errorf("unknown command: %s", rest[0])
	}
}

func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}

	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

func newLogger(w io.Writer, level string) (btclog.Logger, error) {
	lvl, ok := btclog.LevelFromString(level)
	if !ok {
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	if w == nil {
		w = io.Discard
	}

	logger := btclog.NewSLogger(btclog.NewDefaultHandler(w, btclog.WithNoTimestamp()))
	logger.SetLevel(lvl)
	return logger, nil
}
