package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "CRCSUM"

// Config is the resolved configuration. Precedence: explicit flags, then
// CRCSUM_* environment variables, then the config file, then defaults.
type Config struct {
	Algorithm string `mapstructure:"algorithm"`

	Width  uint8  `mapstructure:"width"`
	Poly   string `mapstructure:"poly"`
	Init   string `mapstructure:"init"`
	RefIn  bool   `mapstructure:"refin"`
	RefOut bool   `mapstructure:"refout"`
	XorOut string `mapstructure:"xorout"`

	Presets      string `mapstructure:"presets"`
	Decompress   string `mapstructure:"decompress"`
	RateLimit    int    `mapstructure:"rate-limit"`
	Jobs         int    `mapstructure:"jobs"`
	Check        string `mapstructure:"check"`
	VerifyStored bool   `mapstructure:"verify-stored"`
	Kernel       string `mapstructure:"kernel"`
	List         bool   `mapstructure:"list"`

	LogFormat string `mapstructure:"log-format"`
	LogLevel  string `mapstructure:"log-level"`

	S3    S3Config    `mapstructure:"s3"`
	MinIO MinIOConfig `mapstructure:"minio"`

	Inputs []string `mapstructure:"-"`
}

// S3Config configures s3:// inputs.
type S3Config struct {
	Region      string `mapstructure:"region"`
	Endpoint    string `mapstructure:"endpoint"`
	PathStyle   bool   `mapstructure:"path-style"`
	PartSize    int64  `mapstructure:"part-size"`
	Concurrency int    `mapstructure:"concurrency"`
}

// MinIOConfig configures minio:// inputs.
type MinIOConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access-key"`
	SecretKey string `mapstructure:"secret-key"`
	Region    string `mapstructure:"region"`
	Secure    bool   `mapstructure:"secure"`
}

// usageError marks errors caused by invalid invocation (exit code 2).
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

func newFlagSet(stderr io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet("crcsum", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.SortFlags = false

	fs.StringP("algorithm", "a", "CRC-32/ISO-HDLC", "catalog algorithm name or alias")
	fs.Uint8("width", 0, "custom algorithm: width in bits (1-32); overrides --algorithm")
	fs.String("poly", "", "custom algorithm: polynomial, normal form")
	fs.String("init", "0", "custom algorithm: initial register value")
	fs.Bool("refin", false, "custom algorithm: reflect input bytes")
	fs.Bool("refout", false, "custom algorithm: reflect the result")
	fs.String("xorout", "0", "custom algorithm: final XOR value")
	fs.String("presets", "", "YAML or JSON file with additional algorithms")
	fs.StringP("decompress", "d", "none", "decode input first: auto|none|gzip|zstd|snappy|s2|lz4")
	fs.Int("rate-limit", 0, "read throttle in bytes per second across all inputs (0 = unlimited)")
	fs.IntP("jobs", "j", 4, "number of inputs processed concurrently")
	fs.StringP("check", "c", "", "expected checksum (hex) of the single input")
	fs.Bool("verify-stored", false, "compare against checksums stored by S3/MinIO when available")
	fs.String("kernel", "auto", "update kernel: auto|generic|hardware")
	fs.Bool("list", false, "list known algorithms and exit")
	fs.String("log-format", "text", "log format: text|json")
	fs.String("log-level", "warn", "log level: debug|info|warn|error")
	fs.String("config", "", "config file (YAML, JSON or TOML)")

	fs.String("s3.region", "", "AWS region for s3:// inputs")
	fs.String("s3.endpoint", "", "custom S3 endpoint URL")
	fs.Bool("s3.path-style", false, "use path-style S3 addressing")
	fs.Int64("s3.part-size", 0, "download whole S3 objects in parallel parts of this size (0 = stream)")
	fs.Int("s3.concurrency", 5, "parallel part downloads per S3 object")

	fs.String("minio.endpoint", "localhost:9000", "MinIO endpoint for minio:// inputs")
	fs.String("minio.access-key", "", "MinIO access key")
	fs.String("minio.secret-key", "", "MinIO secret key")
	fs.String("minio.region", "", "MinIO region")
	fs.Bool("minio.secure", false, "use HTTPS for MinIO")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: crcsum [flags] [input ...]\n\n")
		fmt.Fprintf(stderr, "Inputs: path, - (stdin), s3://bucket/key, minio://bucket/key\n\nFlags:\n")
		fs.PrintDefaults()
	}

	return fs
}

// loadConfig parses args and merges them with the environment and the
// optional config file.
func loadConfig(args []string, stderr io.Writer) (*Config, error) {
	fs := newFlagSet(stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, err
		}
		return nil, &usageError{err: err}
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, usagef("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, usagef("failed to unmarshal config: %w", err)
	}

	cfg.Inputs = fs.Args()
	if len(cfg.Inputs) == 0 {
		cfg.Inputs = []string{"-"}
	}

	if cfg.Jobs < 1 {
		return nil, usagef("--jobs must be at least 1, got %d", cfg.Jobs)
	}
	if cfg.RateLimit < 0 {
		return nil, usagef("--rate-limit must not be negative, got %d", cfg.RateLimit)
	}
	if cfg.Check != "" && len(cfg.Inputs) != 1 {
		return nil, usagef("--check requires exactly one input, got %d", len(cfg.Inputs))
	}

	return &cfg, nil
}
