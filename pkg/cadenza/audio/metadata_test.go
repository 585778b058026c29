package audio

import "testing"

const probeJSON = `{
	"format": {
		"filename": "/music/dreams.mp3",
		"duration": "254.123000",
		"format_name": "mp3",
		"tags": {
			"title": "Dreams",
			"artist": "Fleetwood Mac",
			"ALBUM_ARTIST": "Fleetwood Mac",
			"album": "Rumours",
			"genre": "Rock",
			"date": "1977-02-04"
		}
	},
	"streams": [
		{"codec_type": "audio", "tags": {"composer": "Stevie Nicks"}},
		{"codec_type": "video", "tags": {"title": "cover"}}
	]
}`

func TestParseProbeOutput(t *testing.T) {
	meta, err := parseProbeOutput([]byte(probeJSON))
	if err != nil {
		t.Fatalf("parseProbeOutput failed: %v", err)
	}

	if meta.Title != "Dreams" {
		t.Errorf("Title = %q, want Dreams", meta.Title)
	}
	if meta.AlbumArtist != "Fleetwood Mac" {
		t.Errorf("AlbumArtist = %q; tag keys should be case-folded", meta.AlbumArtist)
	}
	if meta.Composer != "Stevie Nicks" {
		t.Errorf("Composer = %q; audio stream tags should fill gaps", meta.Composer)
	}
	if meta.Year != "1977" {
		t.Errorf("Year = %q, want 1977", meta.Year)
	}
	if meta.DurationSec < 254 || meta.DurationSec > 255 {
		t.Errorf("DurationSec = %f", meta.DurationSec)
	}
}

func TestParseProbeOutputMissingTags(t *testing.T) {
	meta, err := parseProbeOutput([]byte(`{"format":{"duration":"10.0"}}`))
	if err != nil {
		t.Fatalf("parseProbeOutput failed: %v", err)
	}
	if meta.Title != "" || meta.Artist != "" {
		t.Errorf("Expected empty tags, got %+v", meta)
	}
}

func TestParseProbeOutputBadJSON(t *testing.T) {
	if _, err := parseProbeOutput([]byte("not json")); err == nil {
		t.Fatal("Expected an error for malformed probe output")
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		seconds float64
		want    string
	}{
		{0, "0:00:00"},
		{59.4, "0:00:59"},
		{225, "0:03:45"},
		{254.123, "0:04:14"},
		{3661, "1:01:01"},
		{7325.7, "2:02:06"},
	}
	for _, c := range cases {
		if got := FormatDuration(c.seconds); got != c.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", c.seconds, got, c.want)
		}
	}
}
