package storage

import (
	"path/filepath"
	"testing"

	"github.com/cadenza-ai/cadenza/pkg/cadenza/library"
)

// setupTestDB creates a client backed by a temporary database file.
func setupTestDB(t *testing.T) *DBClient {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test_cadenza.sqlite3")
	client, err := NewDBClientWithPath(dbPath)
	if err != nil {
		t.Fatalf("Failed to create test DB client: %v", err)
	}
	t.Cleanup(func() {
		client.Close()
	})
	return client
}

func testTrack() library.Track {
	return library.Track{
		File:     "dreams.mp3",
		Name:     "Dreams",
		Artist:   "Fleetwood Mac",
		Album:    "Rumours",
		Genre:    "Rock",
		Duration: "0:04:14",
		Year:     "1977",
		FileSize: "9.7 MB",
	}
}

func TestUpsertTrackCreatesAndUpdates(t *testing.T) {
	client := setupTestDB(t)

	id, err := client.UpsertTrack(testTrack())
	if err != nil {
		t.Fatalf("UpsertTrack failed: %v", err)
	}
	if id == "" {
		t.Fatal("Expected a non-empty row ID")
	}

	// Re-indexing the same file must keep the row and refresh attributes.
	updated := testTrack()
	updated.Genre = "Soft Rock"
	id2, err := client.UpsertTrack(updated)
	if err != nil {
		t.Fatalf("Second UpsertTrack failed: %v", err)
	}
	if id2 != id {
		t.Errorf("Expected stable row ID across upserts, got %s then %s", id, id2)
	}

	got, err := client.GetTrackByFile("dreams.mp3")
	if err != nil {
		t.Fatalf("GetTrackByFile failed: %v", err)
	}
	if got.Genre != "Soft Rock" {
		t.Errorf("Expected refreshed genre, got %q", got.Genre)
	}
}

func TestListTracksOrdered(t *testing.T) {
	client := setupTestDB(t)

	for _, file := range []string{"b.mp3", "a.mp3", "c.mp3"} {
		track := testTrack()
		track.File = file
		if _, err := client.UpsertTrack(track); err != nil {
			t.Fatalf("UpsertTrack(%s) failed: %v", file, err)
		}
	}

	tracks, err := client.ListTracks()
	if err != nil {
		t.Fatalf("ListTracks failed: %v", err)
	}
	if len(tracks) != 3 {
		t.Fatalf("Expected 3 tracks, got %d", len(tracks))
	}
	if tracks[0].File != "a.mp3" || tracks[2].File != "c.mp3" {
		t.Errorf("Tracks not ordered by file: %v", tracks)
	}
}

func TestReplaceAll(t *testing.T) {
	client := setupTestDB(t)

	if _, err := client.UpsertTrack(testTrack()); err != nil {
		t.Fatalf("UpsertTrack failed: %v", err)
	}

	fresh := testTrack()
	fresh.File = "so_what.mp3"
	fresh.Name = "So What"
	if err := client.ReplaceAll([]library.Track{fresh}); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}

	tracks, err := client.ListTracks()
	if err != nil {
		t.Fatalf("ListTracks failed: %v", err)
	}
	if len(tracks) != 1 || tracks[0].File != "so_what.mp3" {
		t.Errorf("Expected catalog replaced with so_what.mp3, got %v", tracks)
	}
}

func TestDeleteTrackByFile(t *testing.T) {
	client := setupTestDB(t)

	if _, err := client.UpsertTrack(testTrack()); err != nil {
		t.Fatalf("UpsertTrack failed: %v", err)
	}
	if err := client.DeleteTrackByFile("dreams.mp3"); err != nil {
		t.Fatalf("DeleteTrackByFile failed: %v", err)
	}
	if _, err := client.GetTrackByFile("dreams.mp3"); err == nil {
		t.Fatal("Expected an error for a deleted track")
	}
}

func TestNilClient(t *testing.T) {
	var client *DBClient
	if _, err := client.UpsertTrack(testTrack()); err == nil {
		t.Error("Expected error from nil client UpsertTrack")
	}
	if _, err := client.ListTracks(); err == nil {
		t.Error("Expected error from nil client ListTracks")
	}
	if err := client.Close(); err != nil {
		t.Errorf("Close on nil client should be a no-op, got %v", err)
	}
}
