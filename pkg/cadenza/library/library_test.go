package library

import (
	"bytes"
	"strings"
	"testing"
)

func sampleTracks() []Track {
	return []Track{
		{File: "a.mp3", Name: "Go Your Own Way", Artist: "Fleetwood Mac", Album: "Rumours", Genre: "Rock", Year: "1977", Duration: "0:03:38", FileSize: "8.4 MB"},
		{File: "b.mp3", Name: "Dreams", Artist: "Fleetwood Mac", Album: "Rumours", Genre: "Rock", Year: "1977"},
		{File: "c.mp3", Name: "So What", Artist: "Miles Davis", Album: "Kind of Blue", Genre: "Jazz", Year: "1959"},
	}
}

func TestDistinctValues(t *testing.T) {
	tracks := sampleTracks()

	artists := DistinctValues(tracks, ColArtist)
	if len(artists) != 2 {
		t.Fatalf("Expected 2 distinct artists, got %v", artists)
	}
	if artists[0] != "Fleetwood Mac" || artists[1] != "Miles Davis" {
		t.Errorf("Distinct artists out of order: %v", artists)
	}

	// Missing values are skipped, not represented as empty strings.
	sizes := DistinctValues(tracks, ColFileSize)
	if len(sizes) != 1 || sizes[0] != "8.4 MB" {
		t.Errorf("Expected only the present file size, got %v", sizes)
	}
}

func TestColumnAccessors(t *testing.T) {
	track := sampleTracks()[0]
	for _, col := range Columns {
		if col.String() == "unknown" {
			t.Errorf("Column %d has no name", col)
		}
	}
	if track.Attr(ColGenre) != "Rock" {
		t.Errorf("Attr(ColGenre) = %q, want Rock", track.Attr(ColGenre))
	}
	if track.Attr(ColDuration) != "0:03:38" {
		t.Errorf("Attr(ColDuration) = %q", track.Attr(ColDuration))
	}
}

func TestCatalogRoundTrip(t *testing.T) {
	tracks := sampleTracks()

	var buf bytes.Buffer
	if err := WriteCatalog(&buf, tracks); err != nil {
		t.Fatalf("WriteCatalog failed: %v", err)
	}

	got, err := ReadCatalog(&buf)
	if err != nil {
		t.Fatalf("ReadCatalog failed: %v", err)
	}
	if len(got) != len(tracks) {
		t.Fatalf("Expected %d tracks, got %d", len(tracks), len(got))
	}
	if got[0] != tracks[0] {
		t.Errorf("First track mismatch:\n got %+v\nwant %+v", got[0], tracks[0])
	}
	if got[2].Genre != "Jazz" {
		t.Errorf("Expected Jazz genre for c.mp3, got %q", got[2].Genre)
	}
}

func TestReadCatalogRejectsForeignHeader(t *testing.T) {
	_, err := ReadCatalog(strings.NewReader("id,title\n1,x\n"))
	if err == nil {
		t.Fatal("Expected an error for a foreign header")
	}
}

func TestReadCatalogEmpty(t *testing.T) {
	tracks, err := ReadCatalog(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Expected empty input to parse cleanly, got %v", err)
	}
	if len(tracks) != 0 {
		t.Errorf("Expected no tracks, got %d", len(tracks))
	}
}
