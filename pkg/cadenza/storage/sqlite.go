package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cadenza-ai/cadenza/pkg/cadenza/library"
	customlogger "github.com/cadenza-ai/cadenza/pkg/logger"
	"github.com/cadenza-ai/cadenza/pkg/utils"
)

const DefaultDBFile = "cadenza.sqlite3"
const errDBClientNil = "db client is nil"

type DBClient struct {
	DB *gorm.DB
	db *sql.DB
}

// Track is the persisted catalog row. File is unique per library; the
// attribute columns mirror library.Track.
type Track struct {
	ID          string `gorm:"primaryKey;type:varchar(36)"`
	File        string `gorm:"uniqueIndex:idx_track_file" json:"file"`
	Name        string `gorm:"index:idx_track_name" json:"track_name"`
	Artist      string `gorm:"index:idx_track_artist" json:"track_artist"`
	AlbumArtist string `json:"track_albumartist"`
	Composer    string `json:"track_composer"`
	Album       string `json:"track_album"`
	Genre       string `json:"track_genre"`
	Duration    string `json:"track_duration"`
	Year        string `json:"track_year"`
	FileSize    string `json:"track_filesize"`
	CreatedAt   time.Time
}

func NewDBClient() (*DBClient, error) {
	dbPath := os.Getenv("CADENZA_DB_PATH")
	if dbPath == "" {
		dbPath = DefaultDBFile
	}
	return NewDBClientWithPath(dbPath)
}

func NewDBClientWithPath(dbPath string) (*DBClient, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil && !os.IsExist(err) {
		if filepath.Dir(dbPath) != "." {
			return nil, fmt.Errorf("creating db dir: %w", err)
		}
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(dbPath+"?_foreign_keys=on"), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting sql.DB from gorm: %w", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(&Track{}); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	return &DBClient{DB: db, db: sqlDB}, nil
}

func (c *DBClient) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

// UpsertTrack inserts the track or refreshes the attribute columns of an
// existing row with the same file name. Returns the row ID.
func (c *DBClient) UpsertTrack(t library.Track) (string, error) {
	if c == nil || c.DB == nil {
		return "", errors.New(errDBClientNil)
	}

	var row Track
	err := c.DB.Where("file = ?", t.File).First(&row).Error
	if err == nil {
		updates := fromLibrary(t)
		if err := c.DB.Model(&row).Updates(updates).Error; err != nil {
			return "", fmt.Errorf("updating track %s: %w", t.File, err)
		}
		return row.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("querying existing track: %w", err)
	}

	row = fromLibrary(t)
	row.ID = utils.GenerateUUID()
	if err := c.DB.Create(&row).Error; err != nil {
		return "", fmt.Errorf("creating track %s: %w", t.File, err)
	}
	return row.ID, nil
}

// ReplaceAll swaps the whole catalog for the given tracks in one
// transaction. Used by the indexer to drop rows for deleted files.
func (c *DBClient) ReplaceAll(tracks []library.Track) error {
	if c == nil || c.DB == nil {
		return errors.New(errDBClientNil)
	}
	return c.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&Track{}).Error; err != nil {
			return fmt.Errorf("clearing catalog: %w", err)
		}
		for _, t := range tracks {
			row := fromLibrary(t)
			row.ID = utils.GenerateUUID()
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("inserting track %s: %w", t.File, err)
			}
		}
		return nil
	})
}

func (c *DBClient) ListTracks() ([]library.Track, error) {
	if c == nil || c.DB == nil {
		return nil, errors.New(errDBClientNil)
	}
	var rows []Track
	if err := c.DB.Order("file").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("listing tracks: %w", err)
	}
	out := make([]library.Track, len(rows))
	for i, r := range rows {
		out[i] = toLibrary(r)
	}
	return out, nil
}

func (c *DBClient) GetTrackByFile(file string) (*library.Track, error) {
	if c == nil || c.DB == nil {
		return nil, errors.New(errDBClientNil)
	}
	var row Track
	if err := c.DB.Where("file = ?", file).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("track %s not found", file)
		}
		return nil, fmt.Errorf("querying track %s: %w", file, err)
	}
	t := toLibrary(row)
	return &t, nil
}

func (c *DBClient) DeleteTrackByFile(file string) error {
	if c == nil || c.DB == nil {
		return errors.New(errDBClientNil)
	}
	return c.DB.Where("file = ?", file).Delete(&Track{}).Error
}

func fromLibrary(t library.Track) Track {
	return Track{
		File:        t.File,
		Name:        t.Name,
		Artist:      t.Artist,
		AlbumArtist: t.AlbumArtist,
		Composer:    t.Composer,
		Album:       t.Album,
		Genre:       t.Genre,
		Duration:    t.Duration,
		Year:        t.Year,
		FileSize:    t.FileSize,
	}
}

func toLibrary(r Track) library.Track {
	return library.Track{
		File:        r.File,
		Name:        r.Name,
		Artist:      r.Artist,
		AlbumArtist: r.AlbumArtist,
		Composer:    r.Composer,
		Album:       r.Album,
		Genre:       r.Genre,
		Duration:    r.Duration,
		Year:        r.Year,
		FileSize:    r.FileSize,
	}
}

// MustNewDBClient builds a DB client or panics. Intended for program startup.
func MustNewDBClient() *DBClient {
	cli, err := NewDBClient()
	if err != nil {
		customlogger.GetLogger().Errorf("failed to open DB: %v", err)
		panic(err)
	}
	return cli
}
