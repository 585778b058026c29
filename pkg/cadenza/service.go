package cadenza

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/cadenza-ai/cadenza/pkg/cadenza/audio"
	"github.com/cadenza-ai/cadenza/pkg/cadenza/fuzzy"
	"github.com/cadenza-ai/cadenza/pkg/cadenza/geo"
	"github.com/cadenza-ai/cadenza/pkg/cadenza/library"
	"github.com/cadenza-ai/cadenza/pkg/cadenza/player"
	"github.com/cadenza-ai/cadenza/pkg/cadenza/profile"
	"github.com/cadenza-ai/cadenza/pkg/cadenza/storage"
	"github.com/cadenza-ai/cadenza/pkg/cadenza/weather"
	"github.com/cadenza-ai/cadenza/pkg/logger"
	"github.com/cadenza-ai/cadenza/pkg/utils"
)

// cadenzaService is the default implementation of the Service interface.
type cadenzaService struct {
	storage Storage
	weather weather.Client
	geo     geo.Client
	player  player.Player
	log     Logger
	rand    *rand.Rand
	config  *Config
}

func NewService(opts ...Option) (Service, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	// Set default logger if none provided
	if cfg.Logger == nil {
		cfg.Logger = logger.GetLogger()
	}

	// Create or use provided storage
	var stor Storage
	var err error
	if cfg.Storage != nil {
		stor = cfg.Storage
	} else {
		stor, err = storage.NewDBClientWithPath(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage: %w", err)
		}
	}

	if cfg.Weather == nil && cfg.WeatherAPIKey == "" {
		cfg.WeatherAPIKey = os.Getenv("CADENZA_WEATHER_KEY")
	}
	if cfg.Weather == nil && cfg.WeatherAPIKey != "" {
		cfg.Weather = weather.NewHTTPClient(cfg.WeatherAPIKey)
	}
	if cfg.Geo == nil {
		cfg.Geo = geo.NewHTTPClient()
	}
	if cfg.Player == nil {
		cfg.Player = player.OSPlayer{}
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &cadenzaService{
		storage: stor,
		weather: cfg.Weather,
		geo:     cfg.Geo,
		player:  cfg.Player,
		log:     cfg.Logger,
		rand:    cfg.Rand,
		config:  cfg,
	}, nil
}

// FindFile fuzzy-matches name against the files directly inside dir.
func (s *cadenzaService) FindFile(name, dir string) fuzzy.Result {
	files, err := utils.ListFiles(dir)
	if err != nil {
		s.log.Errorf("find file %q in %s: %v", name, dir, err)
		return fuzzy.Result{}
	}
	return fuzzy.Match(name, files, fuzzy.WithMinScore(s.config.MinScore))
}

// PlayTrack resolves a fuzzy file name inside the music directory and
// triggers playback. An empty name plays a random file.
func (s *cadenzaService) PlayTrack(ctx context.Context, name string) string {
	if name == "" {
		files, err := utils.ListFiles(s.config.MusicDir)
		if err != nil {
			s.log.Errorf("play random track: %v", err)
			return skillFailedReply(s.config.Profile.Title)
		}
		if len(files) == 0 {
			return fmt.Sprintf("There's nothing to play in %s, %s.", s.config.MusicDir, s.config.Profile.Title)
		}
		file := files[s.rand.Intn(len(files))]
		return s.open(ctx, file, "")
	}

	res := s.FindFile(name, s.config.MusicDir)
	if !res.Found {
		return fileNotFoundReply(name)
	}
	s.log.Infof("Resolved %q to %s (score %d)", name, res.Value, res.Score)
	return s.open(ctx, res.Value, "")
}

// PlayTrackByAttribute selects a catalog row for the query's attribute
// fragments and plays it. A direct file identifier bypasses matching.
func (s *cadenzaService) PlayTrackByAttribute(ctx context.Context, query TrackQuery) string {
	if query.File != "" {
		return s.PlayTrack(ctx, query.File)
	}

	tracks, err := s.loadCatalog()
	if err != nil {
		s.log.Errorf("play by attribute: loading catalog: %v", err)
		return skillFailedReply(s.config.Profile.Title)
	}

	track, ok := SelectTrack(query, tracks, s.rand, fuzzy.WithMinScore(s.config.MinScore))
	if !ok {
		return comboNotFoundReply(s.config.Profile.Title)
	}

	display := track.Name
	if display == "" {
		display = track.File
	}
	return s.open(ctx, track.File, track.Artist, display)
}

// loadCatalog prefers the database catalog and falls back to the CSV
// snapshot when the database has no rows yet.
func (s *cadenzaService) loadCatalog() ([]library.Track, error) {
	tracks, err := s.storage.ListTracks()
	if err == nil && len(tracks) > 0 {
		return tracks, nil
	}
	if err != nil {
		s.log.Warnf("catalog db unavailable, trying csv snapshot: %v", err)
	}
	csvTracks, csvErr := library.LoadCatalogFile(s.config.CatalogPath)
	if csvErr != nil {
		if err != nil {
			return nil, err
		}
		return tracks, nil
	}
	return csvTracks, nil
}

// open triggers playback and phrases the reply. displayOverride, when
// given, names the track instead of the file.
func (s *cadenzaService) open(ctx context.Context, file, artist string, displayOverride ...string) string {
	display := file
	if len(displayOverride) > 0 && displayOverride[0] != "" {
		display = displayOverride[0]
	}

	path := filepath.Join(s.config.MusicDir, file)
	if err := s.player.Open(ctx, path); err != nil {
		s.log.Errorf("opening %s: %v", path, err)
		return skillFailedReply(s.config.Profile.Title)
	}
	s.log.Infof("Playing %s", path)
	return playingReply(display, artist)
}

// IndexLibrary scans the music directory, extracts metadata from every
// playable file, replaces the database catalog and writes the CSV snapshot.
// Returns the number of indexed tracks.
func (s *cadenzaService) IndexLibrary(ctx context.Context) (int, error) {
	files, err := utils.ListAudioFiles(s.config.MusicDir)
	if err != nil {
		return 0, fmt.Errorf("scanning music dir: %w", err)
	}

	tracks := make([]library.Track, 0, len(files))
	for _, file := range files {
		track, err := audio.TrackFromFile(ctx, filepath.Join(s.config.MusicDir, file))
		if err != nil {
			s.log.Warnf("skipping %s: %v", file, err)
			continue
		}
		tracks = append(tracks, track)
	}

	if err := s.storage.ReplaceAll(tracks); err != nil {
		return 0, fmt.Errorf("storing catalog: %w", err)
	}
	if err := library.SaveCatalogFile(s.config.CatalogPath, tracks); err != nil {
		return 0, fmt.Errorf("writing catalog snapshot: %w", err)
	}

	s.log.Infof("Indexed %d tracks from %s", len(tracks), s.config.MusicDir)
	return len(tracks), nil
}

func (s *cadenzaService) CurrentWeather(ctx context.Context, city string) string {
	if s.weather == nil {
		return "I'm not set up for weather reports yet."
	}
	rep, err := s.weather.Current(ctx, city)
	if err != nil {
		s.log.Errorf("current weather for %s: %v", city, err)
		return skillFailedReply(s.config.Profile.Title)
	}
	return currentWeatherReply(rep, s.rand)
}

func (s *cadenzaService) ForecastWeather(ctx context.Context, city string, hours, mins *int) string {
	if s.weather == nil {
		return "I'm not set up for weather reports yet."
	}

	reqHours, reqDays := 5, 0
	switch {
	case hours != nil:
		// A near-full-day window is served better by a day forecast.
		if *hours >= 23 {
			reqDays = 1
		} else {
			reqHours = *hours
		}
	case mins != nil:
		reqHours = *mins / 60
	}

	rep, err := s.weather.Forecast(ctx, city, reqHours, reqDays)
	if err != nil {
		s.log.Errorf("weather forecast for %s: %v", city, err)
		return skillFailedReply(s.config.Profile.Title)
	}
	return forecastWeatherReply(rep, hours, mins, s.rand)
}

func (s *cadenzaService) CurrentForecastWeather(ctx context.Context, city string) string {
	current := s.CurrentWeather(ctx, city)
	forecast := s.ForecastWeather(ctx, city, nil, nil)
	return current + " " + forecast
}

// Locate reverse-geocodes the machine's position. field selects one address
// part (city, road, country, ...); empty returns the full address.
func (s *cadenzaService) Locate(ctx context.Context, field string) string {
	if s.geo == nil {
		return "I'm not set up for location lookups yet."
	}
	loc, err := s.geo.Locate(ctx)
	if err != nil {
		s.log.Errorf("locating: %v", err)
		return skillFailedReply(s.config.Profile.Title)
	}
	value := loc.Field(field)
	if value == "" {
		return fmt.Sprintf("I couldn't work out the %s of your current location.", field)
	}
	return value
}

// Greeting wishes the user according to the time of day.
func (s *cadenzaService) Greeting(now time.Time) string {
	return greetingReply(s.config.Profile.Title, now, s.rand)
}

// Age computes the user's age from an ISO 8601 birthdate.
func (s *cadenzaService) Age(birthdate string) (int, error) {
	return profile.Age(birthdate, time.Now())
}

// Close releases all resources held by the service.
func (s *cadenzaService) Close() error {
	return s.storage.Close()
}
