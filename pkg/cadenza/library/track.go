package library

// Track is one playable item of the music catalog. File is the primary
// identifier (the stored file name); the remaining columns are free-text
// attributes where an empty string means the tag was missing.
type Track struct {
	File        string `json:"file"`
	Name        string `json:"track_name"`
	Artist      string `json:"track_artist"`
	AlbumArtist string `json:"track_albumartist"`
	Composer    string `json:"track_composer"`
	Album       string `json:"track_album"`
	Genre       string `json:"track_genre"`
	Duration    string `json:"track_duration"`
	Year        string `json:"track_year"`
	FileSize    string `json:"track_filesize"`
}

// Column identifies one searchable attribute of a Track.
type Column int

const (
	ColName Column = iota
	ColArtist
	ColAlbumArtist
	ColComposer
	ColAlbum
	ColGenre
	ColDuration
	ColYear
	ColFileSize
)

// Columns lists every searchable attribute in its fixed evaluation order.
var Columns = []Column{
	ColName,
	ColArtist,
	ColAlbumArtist,
	ColComposer,
	ColAlbum,
	ColGenre,
	ColDuration,
	ColYear,
	ColFileSize,
}

func (c Column) String() string {
	switch c {
	case ColName:
		return "track_name"
	case ColArtist:
		return "track_artist"
	case ColAlbumArtist:
		return "track_albumartist"
	case ColComposer:
		return "track_composer"
	case ColAlbum:
		return "track_album"
	case ColGenre:
		return "track_genre"
	case ColDuration:
		return "track_duration"
	case ColYear:
		return "track_year"
	case ColFileSize:
		return "track_filesize"
	default:
		return "unknown"
	}
}

// Attr returns the track's value for the given column.
func (t Track) Attr(c Column) string {
	switch c {
	case ColName:
		return t.Name
	case ColArtist:
		return t.Artist
	case ColAlbumArtist:
		return t.AlbumArtist
	case ColComposer:
		return t.Composer
	case ColAlbum:
		return t.Album
	case ColGenre:
		return t.Genre
	case ColDuration:
		return t.Duration
	case ColYear:
		return t.Year
	case ColFileSize:
		return t.FileSize
	default:
		return ""
	}
}

// DistinctValues returns the distinct non-missing values of one column
// across the catalog, in first-seen order.
func DistinctValues(tracks []Track, col Column) []string {
	seen := make(map[string]struct{}, len(tracks))
	values := make([]string, 0, len(tracks))
	for _, t := range tracks {
		v := t.Attr(col)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	return values
}
