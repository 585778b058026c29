package library

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// catalogHeader is the fixed column layout of the flat catalog file.
var catalogHeader = []string{
	"file",
	"track_name",
	"track_artist",
	"track_albumartist",
	"track_composer",
	"track_album",
	"track_genre",
	"track_duration",
	"track_year",
	"track_filesize",
}

// ReadCatalog parses a CSV catalog. The header row must match the fixed
// layout; rows with a missing trailing column are padded with empty values.
func ReadCatalog(r io.Reader) ([]Track, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading catalog header: %w", err)
	}
	if len(header) != len(catalogHeader) || header[0] != catalogHeader[0] {
		return nil, fmt.Errorf("unexpected catalog header: %v", header)
	}

	var tracks []Track
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading catalog row: %w", err)
		}
		for len(row) < len(catalogHeader) {
			row = append(row, "")
		}
		tracks = append(tracks, Track{
			File:        row[0],
			Name:        row[1],
			Artist:      row[2],
			AlbumArtist: row[3],
			Composer:    row[4],
			Album:       row[5],
			Genre:       row[6],
			Duration:    row[7],
			Year:        row[8],
			FileSize:    row[9],
		})
	}
	return tracks, nil
}

// WriteCatalog writes tracks as a CSV catalog with the fixed header.
func WriteCatalog(w io.Writer, tracks []Track) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(catalogHeader); err != nil {
		return fmt.Errorf("writing catalog header: %w", err)
	}
	for _, t := range tracks {
		row := []string{
			t.File,
			t.Name,
			t.Artist,
			t.AlbumArtist,
			t.Composer,
			t.Album,
			t.Genre,
			t.Duration,
			t.Year,
			t.FileSize,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing catalog row for %s: %w", t.File, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// LoadCatalogFile reads a CSV catalog from disk.
func LoadCatalogFile(path string) ([]Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog %s: %w", path, err)
	}
	defer f.Close()
	return ReadCatalog(f)
}

// SaveCatalogFile writes a CSV catalog to disk, replacing any existing file.
func SaveCatalogFile(path string, tracks []Track) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating catalog %s: %w", path, err)
	}
	if err := WriteCatalog(f, tracks); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
