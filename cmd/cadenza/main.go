package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/cadenza-ai/cadenza/pkg/cadenza"
	"github.com/cadenza-ai/cadenza/pkg/cadenza/profile"
	"github.com/cadenza-ai/cadenza/pkg/logger"
)

// Global flags
var (
	dbPath      string
	musicDir    string
	catalogPath string
	profilePath string
)

func init() {
	flag.StringVar(&dbPath, "db", getEnvOrDefault("CADENZA_DB_PATH", "cadenza.sqlite3"), "Path to the SQLite catalog database")
	flag.StringVar(&musicDir, "music", getEnvOrDefault("CADENZA_MUSIC_DIR", "music"), "Directory holding the music files")
	flag.StringVar(&catalogPath, "catalog", getEnvOrDefault("CADENZA_CATALOG", "cadenza_music.csv"), "Path of the CSV catalog snapshot")
	flag.StringVar(&profilePath, "profile", os.Getenv("CADENZA_PROFILE"), "Path of the YAML user profile (optional)")
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// createService creates a new Cadenza service with configured options
func createService() (cadenza.Service, error) {
	opts := []cadenza.Option{
		cadenza.WithDBPath(dbPath),
		cadenza.WithMusicDir(musicDir),
		cadenza.WithCatalogPath(catalogPath),
	}
	if profilePath != "" {
		p, err := profile.Load(profilePath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, cadenza.WithProfile(p))
	}
	return cadenza.NewService(opts...)
}

func main() {
	log := logger.GetLogger()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	log.Debugf("Executing command: %s", command)

	switch command {
	case "index":
		handleIndex()
	case "play":
		handlePlay()
	case "play-by":
		handlePlayBy()
	case "find":
		handleFind()
	case "weather":
		handleWeather()
	case "forecast":
		handleForecast()
	case "locate":
		handleLocate()
	case "greet":
		handleGreet()
	case "age":
		handleAge()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	usage := `Cadenza - assistant skills CLI

Usage:
  cadenza index                      Scan the music directory into the catalog
  cadenza play [name]                Play a file by fuzzy name (random if omitted)
  cadenza play-by [flags]            Play a track by attributes, e.g.
                                       cadenza play-by -genre rock -year 1977
  cadenza find <name> <dir>          Fuzzy-find a file in a directory
  cadenza weather <city>             Current weather
  cadenza forecast <city> [flags]    Weather forecast (-hours N | -mins N)
  cadenza locate [field]             Current location (optionally one field, e.g. city)
  cadenza greet                      Time-of-day greeting
  cadenza age <yyyy-mm-dd>           Age from a birthdate

Global flags: -db, -music, -catalog, -profile (or CADENZA_* env vars)
`
	fmt.Println(usage)
}

func mustService() cadenza.Service {
	svc, err := createService()
	if err != nil {
		logger.Fatalf("failed to start: %v", err)
	}
	return svc
}

func handleIndex() {
	flag.CommandLine.Parse(os.Args[2:])
	svc := mustService()
	defer svc.Close()

	start := time.Now()
	n, err := svc.IndexLibrary(context.Background())
	if err != nil {
		logger.Fatalf("indexing failed: %v", err)
	}
	fmt.Printf("Indexed %d tracks in %s.\n", n, time.Since(start).Round(time.Millisecond))
}

func handlePlay() {
	name := ""
	if len(os.Args) > 2 {
		name = os.Args[2]
	}
	svc := mustService()
	defer svc.Close()

	fmt.Println(svc.PlayTrack(context.Background(), name))
}

func handlePlayBy() {
	playCmd := flag.NewFlagSet("play-by", flag.ExitOnError)
	file := playCmd.String("file", "", "Direct file name (bypasses attribute matching)")
	name := playCmd.String("name", "", "Track name fragment")
	artist := playCmd.String("artist", "", "Artist fragment")
	albumArtist := playCmd.String("albumartist", "", "Album artist fragment")
	composer := playCmd.String("composer", "", "Composer fragment")
	album := playCmd.String("album", "", "Album fragment")
	genre := playCmd.String("genre", "", "Genre fragment")
	duration := playCmd.String("duration", "", "Duration fragment (h:mm:ss)")
	year := playCmd.String("year", "", "Year fragment")
	filesize := playCmd.String("filesize", "", "File size fragment")
	playCmd.Parse(os.Args[2:])

	svc := mustService()
	defer svc.Close()

	query := cadenza.TrackQuery{
		File:        *file,
		Name:        *name,
		Artist:      *artist,
		AlbumArtist: *albumArtist,
		Composer:    *composer,
		Album:       *album,
		Genre:       *genre,
		Duration:    *duration,
		Year:        *year,
		FileSize:    *filesize,
	}
	fmt.Println(svc.PlayTrackByAttribute(context.Background(), query))
}

func handleFind() {
	if len(os.Args) < 4 {
		fmt.Println("Usage: cadenza find <name> <dir>")
		os.Exit(1)
	}
	svc := mustService()
	defer svc.Close()

	res := svc.FindFile(os.Args[2], os.Args[3])
	if !res.Found {
		fmt.Printf("No file matching %q found in %s.\n", os.Args[2], os.Args[3])
		return
	}
	fmt.Printf("%s (score %d)\n", res.Value, res.Score)
}

func handleWeather() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: cadenza weather <city>")
		os.Exit(1)
	}
	svc := mustService()
	defer svc.Close()

	fmt.Println(svc.CurrentWeather(context.Background(), os.Args[2]))
}

func handleForecast() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: cadenza forecast <city> [-hours N | -mins N]")
		os.Exit(1)
	}
	city := os.Args[2]

	forecastCmd := flag.NewFlagSet("forecast", flag.ExitOnError)
	hours := forecastCmd.Int("hours", -1, "Forecast window in hours")
	mins := forecastCmd.Int("mins", -1, "Forecast window in minutes")
	forecastCmd.Parse(os.Args[3:])

	var hoursArg, minsArg *int
	if *hours >= 0 {
		hoursArg = hours
	}
	if *mins >= 0 {
		minsArg = mins
	}

	svc := mustService()
	defer svc.Close()

	fmt.Println(svc.ForecastWeather(context.Background(), city, hoursArg, minsArg))
}

func handleLocate() {
	field := ""
	if len(os.Args) > 2 {
		field = os.Args[2]
	}
	svc := mustService()
	defer svc.Close()

	fmt.Println(svc.Locate(context.Background(), field))
}

func handleGreet() {
	svc := mustService()
	defer svc.Close()

	fmt.Println(svc.Greeting(time.Now()))
}

func handleAge() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: cadenza age <yyyy-mm-dd>")
		os.Exit(1)
	}
	svc := mustService()
	defer svc.Close()

	age, err := svc.Age(os.Args[2])
	if err != nil {
		logger.Fatalf("bad birthdate: %v", err)
	}
	fmt.Printf("%d\n", age)
}
