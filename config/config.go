package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/mirefield/discord-quote/logger/dlog"
)

type DiscordConfig struct {
	Token string `toml:"token"`
}

type PluralKitConfig struct {
	BaseURL string `toml:"base_url"`
	Token   string `toml:"token"`
}

type StatusConfig struct {
	Port int `toml:"port"`
}

type Config struct {
	Discord   *DiscordConfig   `toml:"discord"`
	PluralKit *PluralKitConfig `toml:"pluralkit"`
	Status    *StatusConfig    `toml:"status"`
}

// Load reads an optional .env file, the TOML config at path and finally
// environment overrides. Secrets are expected from the environment in
// deployment; the TOML file covers everything else.
func (c *Config) Load(path string) {
	if err := godotenv.Load(); err != nil {
		dlog.Debug("No .env file loaded", "err", err)
	}

	c.Discord = &DiscordConfig{}
	c.PluralKit = &PluralKitConfig{}
	c.Status = &StatusConfig{Port: 8080}

	data, err := os.ReadFile(path)
	if err != nil {
		dlog.Debug("No config file loaded", "path", path, "err", err)
	} else if err := toml.Unmarshal(data, c); err != nil {
		dlog.Error("Failed to parse config file", "path", path, "err", err)
		panic(err)
	}

	if token := os.Getenv("TOKEN"); token != "" {
		c.Discord.Token = token
	}
	if base := os.Getenv("PLURALKIT_BASE_URL"); base != "" {
		c.PluralKit.BaseURL = base
	}
	if token := os.Getenv("PLURALKIT_TOKEN"); token != "" {
		c.PluralKit.Token = token
	}
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			dlog.Error("Invalid PORT", "port", port, "err", err)
			panic(err)
		}
		c.Status.Port = p
	}

	if c.Discord.Token == "" {
		panic("missing bot token: set TOKEN or [discord] token")
	}
}
