package config

import (
	"errors"
	"flag"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

// order filter modes: remote forwards criteria to the commerce API and
// trusts its ordering, local filters a fetched snapshot in this process
const (
	OrderFilterModeRemote = "remote"
	OrderFilterModeLocal  = "local"
)

const (
	defaultRunAddr         = ":8090"
	defaultUpstreamAddr    = "http://localhost:4000"
	defaultLogLevel        = "info"
	defaultOrderFilterMode = OrderFilterModeRemote
	defaultSnapshotRefresh = time.Minute
	defaultUpstreamTimeout = 15 * time.Second
)

type Config struct {
	RunAddr         string
	UpstreamAddr    string
	UpstreamToken   string
	LogLevel        string
	OrderFilterMode string
	SnapshotRefresh time.Duration
	UpstreamTimeout time.Duration
}

var (
	once      sync.Once
	singleton *Config
	parseErr  error
)

// New returns new Config. It parses command line and environment variables
// only once; environment variables win over flags. A .env file is loaded
// when present.
func New() (*Config, error) {
	once.Do(func() {
		_ = godotenv.Load()

		cfg := Config{}

		// initialize flags
		flag.StringVar(&cfg.RunAddr, "a", defaultRunAddr, "backoffice server address")
		flag.StringVar(&cfg.UpstreamAddr, "u", defaultUpstreamAddr, "commerce API origin")
		flag.StringVar(&cfg.UpstreamToken, "t", "", "default upstream credential")
		flag.StringVar(&cfg.LogLevel, "l", defaultLogLevel, "log level")
		flag.StringVar(&cfg.OrderFilterMode, "m", defaultOrderFilterMode, "order filter mode: remote or local")
		flag.DurationVar(&cfg.SnapshotRefresh, "r", defaultSnapshotRefresh, "order snapshot refresh interval (local mode)")
		flag.DurationVar(&cfg.UpstreamTimeout, "timeout", defaultUpstreamTimeout, "upstream request timeout")

		flag.Parse()

		// if environment variable is set, then using it
		if v := os.Getenv("RUN_ADDRESS"); v != "" {
			cfg.RunAddr = v
		}
		if v := os.Getenv("UPSTREAM_ADDRESS"); v != "" {
			cfg.UpstreamAddr = v
		}
		if v := os.Getenv("UPSTREAM_TOKEN"); v != "" {
			cfg.UpstreamToken = v
		}
		if v := os.Getenv("LOG_LEVEL"); v != "" {
			cfg.LogLevel = v
		}
		if v := os.Getenv("ORDER_FILTER_MODE"); v != "" {
			cfg.OrderFilterMode = v
		}
		if v := os.Getenv("SNAPSHOT_REFRESH"); v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				parseErr = err
				return
			}
			cfg.SnapshotRefresh = d
		}
		if v := os.Getenv("UPSTREAM_TIMEOUT"); v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				parseErr = err
				return
			}
			cfg.UpstreamTimeout = d
		}

		if cfg.OrderFilterMode != OrderFilterModeRemote && cfg.OrderFilterMode != OrderFilterModeLocal {
			parseErr = errors.New("order filter mode must be remote or local")
			return
		}

		singleton = &cfg
	})

	return singleton, parseErr
}
