package cadenza

import (
	"context"
	"time"

	"github.com/cadenza-ai/cadenza/pkg/cadenza/fuzzy"
	"github.com/cadenza-ai/cadenza/pkg/cadenza/library"
)

// Service is the assistant skill surface. Skill methods never fail hard:
// backend faults are logged and the reply degrades to an apology, so every
// method returns something speakable.
type Service interface {
	FindFile(name, dir string) fuzzy.Result
	PlayTrack(ctx context.Context, name string) string
	PlayTrackByAttribute(ctx context.Context, query TrackQuery) string
	IndexLibrary(ctx context.Context) (int, error)
	CurrentWeather(ctx context.Context, city string) string
	ForecastWeather(ctx context.Context, city string, hours, mins *int) string
	CurrentForecastWeather(ctx context.Context, city string) string
	Locate(ctx context.Context, field string) string
	Greeting(now time.Time) string
	Age(birthdate string) (int, error)
	Close() error
}

// Storage persists the music catalog.
type Storage interface {
	UpsertTrack(t library.Track) (string, error)
	ReplaceAll(tracks []library.Track) error
	ListTracks() ([]library.Track, error)
	GetTrackByFile(file string) (*library.Track, error)
	DeleteTrackByFile(file string) error
	Close() error
}

type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	Debugf(format string, args ...any)
}
