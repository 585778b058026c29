package cadenza

import "github.com/cadenza-ai/cadenza/pkg/cadenza/library"

// TrackQuery carries the free-text attribute fragments of a music request.
// Any subset may be empty. File, when set, is a direct identifier that
// bypasses attribute matching entirely.
type TrackQuery struct {
	File        string
	Name        string
	Artist      string
	AlbumArtist string
	Composer    string
	Album       string
	Genre       string
	Duration    string
	Year        string
	FileSize    string
}

// fragment returns the query text for one catalog column.
func (q TrackQuery) fragment(col library.Column) string {
	switch col {
	case library.ColName:
		return q.Name
	case library.ColArtist:
		return q.Artist
	case library.ColAlbumArtist:
		return q.AlbumArtist
	case library.ColComposer:
		return q.Composer
	case library.ColAlbum:
		return q.Album
	case library.ColGenre:
		return q.Genre
	case library.ColDuration:
		return q.Duration
	case library.ColYear:
		return q.Year
	case library.ColFileSize:
		return q.FileSize
	default:
		return ""
	}
}

// Empty reports whether no fragment at all was supplied.
func (q TrackQuery) Empty() bool {
	if q.File != "" {
		return false
	}
	for _, col := range library.Columns {
		if q.fragment(col) != "" {
			return false
		}
	}
	return true
}
