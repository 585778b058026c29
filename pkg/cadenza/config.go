package cadenza

import (
	"math/rand"

	"github.com/cadenza-ai/cadenza/pkg/cadenza/fuzzy"
	"github.com/cadenza-ai/cadenza/pkg/cadenza/geo"
	"github.com/cadenza-ai/cadenza/pkg/cadenza/player"
	"github.com/cadenza-ai/cadenza/pkg/cadenza/profile"
	"github.com/cadenza-ai/cadenza/pkg/cadenza/weather"
)

type Config struct {
	DBPath        string
	MusicDir      string
	CatalogPath   string
	WeatherAPIKey string
	MinScore      int
	Profile       profile.Profile
	Logger        Logger
	Storage       Storage
	Weather       weather.Client
	Geo           geo.Client
	Player        player.Player
	Rand          *rand.Rand
}

type Option func(*Config)

func WithDBPath(path string) Option {
	return func(c *Config) {
		c.DBPath = path
	}
}

func WithMusicDir(dir string) Option {
	return func(c *Config) {
		c.MusicDir = dir
	}
}

func WithCatalogPath(path string) Option {
	return func(c *Config) {
		c.CatalogPath = path
	}
}

func WithWeatherAPIKey(key string) Option {
	return func(c *Config) {
		c.WeatherAPIKey = key
	}
}

func WithMinScore(score int) Option {
	return func(c *Config) {
		c.MinScore = score
	}
}

func WithProfile(p profile.Profile) Option {
	return func(c *Config) {
		c.Profile = p
	}
}

func WithLogger(log Logger) Option {
	return func(c *Config) {
		c.Logger = log
	}
}

func WithStorage(s Storage) Option {
	return func(c *Config) {
		c.Storage = s
	}
}

func WithWeatherClient(w weather.Client) Option {
	return func(c *Config) {
		c.Weather = w
	}
}

func WithGeoClient(g geo.Client) Option {
	return func(c *Config) {
		c.Geo = g
	}
}

func WithPlayer(p player.Player) Option {
	return func(c *Config) {
		c.Player = p
	}
}

// WithRand injects the random source used for track and phrase selection.
// Tests seed this for deterministic picks.
func WithRand(r *rand.Rand) Option {
	return func(c *Config) {
		c.Rand = r
	}
}

func defaultConfig() *Config {
	return &Config{
		DBPath:      "cadenza.sqlite3",
		MusicDir:    "music",
		CatalogPath: "cadenza_music.csv",
		MinScore:    fuzzy.DefaultMinScore,
		Profile:     profile.Default(),
	}
}
