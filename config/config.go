// Package config loads settings from flags, COLORMAP_* environment
// variables and an optional config file.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDebug             = "debug"
	ConfigLevel             = "level"
	ConfigWinThreshold      = "win-threshold"
	ConfigGAGenerations     = "ga-generations"
	ConfigSeed              = "seed"
	ConfigNatsURL           = "nats-url"
	ConfigBotChannel        = "bot-channel"
	ConfigBotTimeout        = "bot-timeout"
	ConfigBotRetries        = "bot-retries"
	ConfigAutoplayGames     = "autoplay-games"
	ConfigAutoplayThreads   = "autoplay-threads"
	ConfigAutoplayLogfile   = "autoplay-logfile"
	ConfigAutoplaySummary   = "autoplay-summary"
	ConfigAutoplayRedLevel  = "autoplay-red-level"
	ConfigAutoplayBlueLevel = "autoplay-blue-level"
	ConfigFile              = "config"
)

type Config struct {
	*viper.Viper
	args []string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(ConfigDebug, false)
	v.SetDefault(ConfigLevel, "easy")
	v.SetDefault(ConfigWinThreshold, 50)
	v.SetDefault(ConfigGAGenerations, 100)
	v.SetDefault(ConfigSeed, 0)
	v.SetDefault(ConfigNatsURL, "nats://127.0.0.1:4222")
	v.SetDefault(ConfigBotChannel, "colormap.bot")
	v.SetDefault(ConfigBotTimeout, 10*time.Second)
	v.SetDefault(ConfigBotRetries, 3)
	v.SetDefault(ConfigAutoplayGames, 100)
	v.SetDefault(ConfigAutoplayThreads, 4)
	v.SetDefault(ConfigAutoplayLogfile, "/tmp/colormap_autoplay.csv")
	v.SetDefault(ConfigAutoplaySummary, "")
	v.SetDefault(ConfigAutoplayRedLevel, "")
	v.SetDefault(ConfigAutoplayBlueLevel, "")
}

// DefaultConfig returns a config with every key at its default value. It
// reads neither flags nor the environment.
func DefaultConfig() *Config {
	v := viper.New()
	setDefaults(v)
	return &Config{Viper: v}
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("colormap", pflag.ContinueOnError)
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.String(ConfigLevel, "easy", "AI level: easy or hard")
	fs.Int(ConfigWinThreshold, 50, "a player with more points than this wins")
	fs.Int(ConfigGAGenerations, 100, "generation cap for the genetic search")
	fs.Uint64(ConfigSeed, 0, "random seed; 0 picks one")
	fs.String(ConfigNatsURL, "nats://127.0.0.1:4222", "the NATS server URL")
	fs.String(ConfigBotChannel, "colormap.bot", "the NATS subject the bot listens on")
	fs.Duration(ConfigBotTimeout, 10*time.Second, "how long to wait for a bot reply")
	fs.Int(ConfigBotRetries, 3, "how many times to ask the bot before giving up")
	fs.Int(ConfigAutoplayGames, 100, "number of games to autoplay")
	fs.Int(ConfigAutoplayThreads, 4, "number of concurrent autoplay games")
	fs.String(ConfigAutoplayLogfile, "/tmp/colormap_autoplay.csv", "per-turn autoplay log")
	fs.String(ConfigAutoplaySummary, "", "write a YAML autoplay summary here")
	fs.String(ConfigAutoplayRedLevel, "", "autoplay level for red; defaults to --level")
	fs.String(ConfigAutoplayBlueLevel, "", "autoplay level for blue; defaults to --level")
	fs.String(ConfigFile, "", "optional config file")
	return fs
}

// Load parses args, then layers in the environment and, if given, the
// config file. Flags set on the command line win over both.
func (c *Config) Load(args []string) error {
	c.Viper = viper.New()
	setDefaults(c.Viper)

	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return err
	}
	c.args = fs.Args()
	if err := c.BindPFlags(fs); err != nil {
		return err
	}
	c.SetEnvPrefix("colormap")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	if cfgFile := c.GetString(ConfigFile); cfgFile != "" {
		c.SetConfigFile(cfgFile)
		if err := c.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", cfgFile, err)
		}
	}
	return nil
}

// Args are the command-line arguments left over after flag parsing.
func (c *Config) Args() []string {
	return c.args
}

// SanitizedSettings is AllSettings, fit for logging.
func (c *Config) SanitizedSettings() map[string]any {
	settings := c.AllSettings()
	if u, ok := settings[ConfigNatsURL].(string); ok && strings.Contains(u, "@") {
		settings[ConfigNatsURL] = "<redacted>"
	}
	return settings
}

func (c *Config) Level() string {
	return c.GetString(ConfigLevel)
}

// AutoplayLevel is the level set under key, one of the per-side autoplay
// keys, falling back to Level when it is unset.
func (c *Config) AutoplayLevel(key string) string {
	if l := c.GetString(key); l != "" {
		return l
	}
	return c.Level()
}

func (c *Config) WinThreshold() int {
	return c.GetInt(ConfigWinThreshold)
}

func (c *Config) GAGenerations() int {
	return c.GetInt(ConfigGAGenerations)
}

func (c *Config) Seed() uint64 {
	return c.GetUint64(ConfigSeed)
}

func (c *Config) BotTimeout() time.Duration {
	return c.GetDuration(ConfigBotTimeout)
}
