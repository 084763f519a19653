package config

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"admintable/internal/client"
	"admintable/internal/members"
)

// Config keys, also used as flag names.
const (
	KeyEndpoint       = "endpoint"
	KeyPageSize       = "page-size"
	KeyPagesToDisplay = "pages-to-display"
	KeyTimeout        = "timeout"
	KeyCacheTTL       = "cache-ttl"
	KeyLogFile        = "log-file"
	KeyDebug          = "debug"

	envPrefix = "ADMINTABLE"
)

// Defaults for the duration keys.
const (
	DefaultTimeout  = 10 * time.Second
	DefaultCacheTTL = 5 * time.Minute
)

// envKeyReplacer maps page-size to ADMINTABLE_PAGE_SIZE.
var envKeyReplacer = strings.NewReplacer("-", "_")

// Config is the resolved runtime configuration.
type Config struct {
	Endpoint       string
	PageSize       int
	PagesToDisplay int
	Timeout        time.Duration
	CacheTTL       time.Duration
	LogFile        string
	Debug          bool
}

// DefaultPath returns $XDG_CONFIG_HOME/admintable/config.yaml (or the
// platform equivalent).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "cannot determine config directory")
	}
	return filepath.Join(dir, "admintable", "config.yaml"), nil
}

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyEndpoint, client.DefaultEndpoint)
	v.SetDefault(KeyPageSize, members.DefaultPageSize)
	v.SetDefault(KeyPagesToDisplay, members.DefaultPagesToDisplay)
	v.SetDefault(KeyTimeout, DefaultTimeout)
	v.SetDefault(KeyCacheTTL, DefaultCacheTTL)
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyDebug, false)
}

// Load resolves the configuration. Precedence is flags, then ADMINTABLE_*
// environment variables, then the config file, then defaults.
//
// If path is empty the default path is used, and a missing file there is not
// an error. An explicit path must exist.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, errors.Wrap(err, "bind flags")
		}
	}

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Config{}, err
		}
		path = p
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		if explicit || !isNotExist(err) {
			return Config{}, errors.Wrapf(err, "failed to read config %s", path)
		}
	}

	cfg := Config{
		Endpoint:       v.GetString(KeyEndpoint),
		PageSize:       v.GetInt(KeyPageSize),
		PagesToDisplay: v.GetInt(KeyPagesToDisplay),
		Timeout:        v.GetDuration(KeyTimeout),
		CacheTTL:       v.GetDuration(KeyCacheTTL),
		LogFile:        v.GetString(KeyLogFile),
		Debug:          v.GetBool(KeyDebug),
	}
	return cfg, cfg.Validate()
}

// Validate checks value ranges and the endpoint URL.
func (c Config) Validate() error {
	if c.PageSize <= 0 {
		return errors.Errorf("%s must be positive, got %d", KeyPageSize, c.PageSize)
	}
	if c.PagesToDisplay <= 0 {
		return errors.Errorf("%s must be positive, got %d", KeyPagesToDisplay, c.PagesToDisplay)
	}
	if c.Timeout < 0 {
		return errors.Errorf("%s must not be negative, got %s", KeyTimeout, c.Timeout)
	}
	if c.CacheTTL < 0 {
		return errors.Errorf("%s must not be negative, got %s", KeyCacheTTL, c.CacheTTL)
	}
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return errors.Wrapf(err, "invalid %s", KeyEndpoint)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.Errorf("invalid %s %q: need an absolute http(s) URL", KeyEndpoint, c.Endpoint)
	}
	return nil
}

// isNotExist reports whether err means the config file is absent.
func isNotExist(err error) bool {
	var nf viper.ConfigFileNotFoundError
	if errors.As(err, &nf) {
		return true
	}
	var pe *os.PathError
	return errors.As(err, &pe) && os.IsNotExist(pe)
}
