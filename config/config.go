package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "JUBILANT_CONFIG_FILE"

const (
	ShortlistMemory = "memory"
	ShortlistRedis  = "redis"
)

// envKeys binds secrets to environment variables. A .env file in the
// working directory is loaded first.
var envKeys = map[string]string{
	"sql_db":    "SQL_DB",
	"smtp.user": "SMTP_USER",
	"smtp.pass": "SMTP_PASS",
}

type cors struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type catalog struct {
	File string `mapstructure:"file"`
}

type shortlist struct {
	Backend  string              `mapstructure:"backend"`
	RedisURL string              `mapstructure:"redis_url"`
	UserID   string              `mapstructure:"user_id"`
	Seed     map[string][]string `mapstructure:"seed"`
}

type smtp struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	User string `mapstructure:"user"`
	Pass string `mapstructure:"pass"`
	To   string `mapstructure:"to"`
}

type topics struct {
	ShortlistEvents string `mapstructure:"shortlist_events"`
}

type tlsFiles struct {
	CA   string `mapstructure:"ca"`
	Cert string `mapstructure:"cert"`
	Key  string `mapstructure:"key"`
}

func (t tlsFiles) Enabled() bool {
	return t.CA != "" && t.Cert != "" && t.Key != ""
}

type broker struct {
	SeedBrokers        []string `mapstructure:"seed_brokers"`
	SchemaRegistryURLs []string `mapstructure:"schema_registry_urls"`
	Topics             topics   `mapstructure:"topics"`
	TLS                tlsFiles `mapstructure:"tls"`
}

// Enabled reports whether shortlist events are published.
func (b broker) Enabled() bool {
	return len(b.SeedBrokers) != 0
}

type Config struct {
	LogLevel       slog.Level `mapstructure:"log_level"`
	HTTPServerAddr string     `mapstructure:"http_server_addr"`
	FrontendDir    string     `mapstructure:"frontend_dir"`
	SQLDB          string     `mapstructure:"sql_db"`
	CORS           cors       `mapstructure:"cors"`
	Catalog        catalog    `mapstructure:"catalog"`
	Shortlist      shortlist  `mapstructure:"shortlist"`
	SMTP           smtp       `mapstructure:"smtp"`
	Broker         broker     `mapstructure:"broker"`
}

func Load() Config {
	cfg, err := load(getConfigFilepath())
	if err != nil {
		die(err)
	}
	return cfg
}

func load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}

	v := viper.New()
	setDefaults(v)
	for key, env := range envKeys {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, err
		}
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := v.UnmarshalExact(&cfg, viper.DecodeHook(decodeHook)); err != nil {
		return Config{}, err
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// decodeHook extends viper's default hooks with text unmarshaling,
// so log_level may be written as "debug", "info" and so on.
var decodeHook = mapstructure.ComposeDecodeHookFunc(
	mapstructure.TextUnmarshallerHookFunc(),
	mapstructure.StringToTimeDurationHookFunc(),
	mapstructure.StringToSliceHookFunc(","),
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("http_server_addr", ":5000")
	v.SetDefault("frontend_dir", "frontend")
	v.SetDefault("shortlist.backend", ShortlistMemory)
	v.SetDefault("shortlist.user_id", "user-123")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("broker.topics.shortlist_events", "shortlist-events")
}

func (c Config) validate() error {
	var errs []error

	switch c.Shortlist.Backend {
	case ShortlistMemory:
	case ShortlistRedis:
		if c.Shortlist.RedisURL == "" {
			errs = append(errs, errors.New("shortlist.redis_url: required for redis backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("shortlist.backend: unknown %q", c.Shortlist.Backend))
	}

	if c.Shortlist.UserID == "" {
		errs = append(errs, errors.New("shortlist.user_id: required"))
	}

	if c.Broker.Enabled() && len(c.Broker.SchemaRegistryURLs) == 0 {
		errs = append(errs, errors.New("broker.schema_registry_urls: required with seed_brokers"))
	}

	return errors.Join(errs...)
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "/config.yaml", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func mask(secret string) string {
	if secret == "" {
		return ""
	}
	return "******"
}

func (c Config) Print() {
	tamplate := `
	General:
	LogLevel=%q
	HTTPServerAddr=%q
	FrontendDir=%q
	SQLDB=%q
	CORSAllowedOrigins=%q
	CatalogFile=%q

	Shortlist:
	Backend=%q
	RedisURL=%q
	UserID=%q
	SeedUsers=%d

	SMTP:
	Host=%q
	Port=%d
	User=%q
	Pass=%q
	To=%q

	BrokerConfig:
	SeedBrokers=%q
	SchemaRegistryURLs=%q
	TLS=%t
	Topics:
		ShortlistEvents=%q

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(tamplate, "\n"),
		c.LogLevel,
		c.HTTPServerAddr,
		c.FrontendDir,
		mask(c.SQLDB),
		c.CORS.AllowedOrigins,
		c.Catalog.File,
		c.Shortlist.Backend,
		mask(c.Shortlist.RedisURL),
		c.Shortlist.UserID,
		len(c.Shortlist.Seed),
		c.SMTP.Host,
		c.SMTP.Port,
		c.SMTP.User,
		mask(c.SMTP.Pass),
		c.SMTP.To,
		c.Broker.SeedBrokers,
		c.Broker.SchemaRegistryURLs,
		c.Broker.TLS.Enabled(),
		c.Broker.Topics.ShortlistEvents,
	)
}
