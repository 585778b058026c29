package audio

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/cadenza-ai/cadenza/pkg/cadenza/library"
)

// Metadata holds the tags and stream facts extracted from one audio file.
type Metadata struct {
	Filename    string
	Title       string
	Artist      string
	AlbumArtist string
	Composer    string
	Album       string
	Genre       string
	Year        string
	DurationSec float64
}

type ffprobeOutput struct {
	Format struct {
		Filename string            `json:"filename"`
		Duration string            `json:"duration"`
		Tags     map[string]string `json:"tags"`
	} `json:"format"`
	Streams []struct {
		CodecType string            `json:"codec_type"`
		Tags      map[string]string `json:"tags"`
	} `json:"streams"`
}

// ReadMetadata extracts tags from an audio file with ffprobe.
func ReadMetadata(ctx context.Context, path string) (*Metadata, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
	}

	cmd := exec.CommandContext(
		ctx,
		"ffprobe",
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		path,
	)

	out, err := cmd.Output()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("probing %s: %w", path, err)
	}

	meta, err := parseProbeOutput(out)
	if err != nil {
		return nil, fmt.Errorf("parsing probe output for %s: %w", path, err)
	}
	meta.Filename = filepath.Base(path)
	return meta, nil
}

// parseProbeOutput decodes ffprobe JSON. Container-level tags win; stream
// tags fill the gaps for formats that only tag the audio stream.
func parseProbeOutput(out []byte) (*Metadata, error) {
	var probe ffprobeOutput
	if err := json.Unmarshal(out, &probe); err != nil {
		return nil, err
	}

	tags := make(map[string]string)
	for _, s := range probe.Streams {
		if s.CodecType != "audio" {
			continue
		}
		for k, v := range s.Tags {
			tags[strings.ToLower(k)] = v
		}
	}
	for k, v := range probe.Format.Tags {
		tags[strings.ToLower(k)] = v
	}

	duration, _ := strconv.ParseFloat(probe.Format.Duration, 64)

	year := tags["date"]
	if year == "" {
		year = tags["year"]
	}
	// Dates like 1977-02-04 reduce to the year.
	if len(year) > 4 {
		year = year[:4]
	}

	return &Metadata{
		Title:       tags["title"],
		Artist:      tags["artist"],
		AlbumArtist: tags["album_artist"],
		Composer:    tags["composer"],
		Album:       tags["album"],
		Genre:       tags["genre"],
		Year:        year,
		DurationSec: duration,
	}, nil
}

// TrackFromFile probes an audio file and renders its metadata as a catalog
// record: duration as h:mm:ss text, size as a humanized byte count.
func TrackFromFile(ctx context.Context, path string) (library.Track, error) {
	meta, err := ReadMetadata(ctx, path)
	if err != nil {
		return library.Track{}, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return library.Track{}, fmt.Errorf("stating %s: %w", path, err)
	}

	return library.Track{
		File:        meta.Filename,
		Name:        meta.Title,
		Artist:      meta.Artist,
		AlbumArtist: meta.AlbumArtist,
		Composer:    meta.Composer,
		Album:       meta.Album,
		Genre:       meta.Genre,
		Duration:    FormatDuration(meta.DurationSec),
		Year:        meta.Year,
		FileSize:    humanize.Bytes(uint64(info.Size())),
	}, nil
}

// FormatDuration renders a duration in seconds as h:mm:ss text, the form the
// catalog stores and users query against.
func FormatDuration(seconds float64) string {
	total := int(seconds + 0.5)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}
