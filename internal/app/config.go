package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"passphrases/internal/domain"
	"passphrases/internal/logging"
	"passphrases/internal/services/passphrase"
)

// EnvPrefix prefixes every environment override, e.g. PASSPHRASES_WORDLIST.
const EnvPrefix = "passphrases"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds runtime options for building the app.
type Config struct {
	Wordlist        string        `mapstructure:"wordlist"`         // file path or builtin:<name>; empty selects the default built-in
	WordlistDigest  string        `mapstructure:"wordlist_digest"`  // pinned BLAKE2b-256 hex digest
	WordlistTimeout time.Duration `mapstructure:"wordlist_timeout"` // bound on reading a wordlist file
	Count           int           `mapstructure:"count"`            // words per passphrase
	Entropy         float64       `mapstructure:"entropy"`          // target bits; overrides count when positive
	Separator       string        `mapstructure:"separator"`        // joins words
	Repeat          int           `mapstructure:"repeat"`           // passphrases per run
	MinEntropy      float64       `mapstructure:"min_entropy"`      // warn below this many bits
	Format          string        `mapstructure:"format"`           // text, json or yaml
	LogLevel        string        `mapstructure:"log_level"`        // logrus level
}

// Defaults returns the built-in configuration values keyed like the config file.
func Defaults() map[string]any {
	return map[string]any{
		"wordlist":         "",
		"wordlist_digest":  "",
		"wordlist_timeout": 10 * time.Second,
		"count":            7,
		"entropy":          0.0,
		"separator":        " ",
		"repeat":           1,
		"min_entropy":      0.0,
		"format":           FormatText,
		"log_level":        logging.DefaultLevel,
	}
}

// configDir returns the per-user directory searched for passphrases.yaml.
func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not get user config directory: %w", err)
	}
	return filepath.Join(dir, "passphrases"), nil
}

// LoadConfig resolves configuration for cmd. Precedence, highest first:
// changed flags, environment, config file, defaults. configFile, when set,
// must exist; otherwise passphrases.yaml is looked up in the user config
// directory and the working directory and may be absent.
func LoadConfig(cmd *cobra.Command, configFile string) (Config, error) {
	var c Config
	v := viper.New()

	defaults := Defaults()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("passphrases")
		v.SetConfigType("yaml")
		if dir, err := configDir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, fmt.Errorf("reading config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	// Flags use dashes where keys use underscores.
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if _, known := defaults[key]; known && bindErr == nil {
			bindErr = v.BindPFlag(key, f)
		}
	})
	if bindErr != nil {
		return c, bindErr
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decoding config: %w", err)
	}
	return c, c.Validate()
}

// Validate checks ranges that the engine would otherwise reject later.
func (c Config) Validate() error {
	switch {
	case c.Count < 0 || c.Count > passphrase.MaxWords:
		return fmt.Errorf("%w: count %d must be between 1 and %d", domain.ErrInvalidRequest, c.Count, passphrase.MaxWords)
	case c.Entropy < 0:
		return fmt.Errorf("%w: entropy %.2f must not be negative", domain.ErrInvalidRequest, c.Entropy)
	case c.Count == 0 && c.Entropy == 0:
		return fmt.Errorf("%w: word count must be at least 1", domain.ErrInvalidRequest)
	case c.Separator == "":
		return fmt.Errorf("%w: separator must not be empty", domain.ErrInvalidRequest)
	case c.Repeat < 1:
		return fmt.Errorf("%w: repeat %d must be at least 1", domain.ErrInvalidRequest, c.Repeat)
	case c.MinEntropy < 0:
		return fmt.Errorf("%w: min_entropy %.2f must not be negative", domain.ErrInvalidRequest, c.MinEntropy)
	case c.WordlistTimeout < 0:
		return fmt.Errorf("%w: wordlist_timeout %s must not be negative", domain.ErrInvalidRequest, c.WordlistTimeout)
	case !slices.Contains([]string{FormatText, FormatJSON, FormatYAML}, c.Format):
		return fmt.Errorf("%w: unknown format %q", domain.ErrInvalidRequest, c.Format)
	}
	return nil
}

// Request builds a generation request. A positive entropy target takes
// precedence over the word count.
func (c Config) Request(wl domain.Wordlist) domain.Request {
	req := domain.Request{
		Wordlist:  wl,
		Words:     c.Count,
		Separator: c.Separator,
	}
	if c.Entropy > 0 {
		req.Words = 0
		req.EntropyBits = c.Entropy
	}
	return req
}
