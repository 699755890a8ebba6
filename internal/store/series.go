package store

import (
	"database/sql"
	"errors"
	"fmt"
)

// Item kinds stored in the items and progress tables.
const (
	KindEpisode = "episode"
	KindChapter = "chapter"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// Series is one entry in the library catalog.
type Series struct {
	ID           int64
	Slug         string
	Title        string
	Kind         string // "anime" or "manga"
	Synopsis     string
	Year         int
	Status       string
	EpisodeCount int
	ChapterCount int
	CoverURL     string
	BannerURL    string
	AniListID    int
}

// UpsertSeries inserts the series or updates the existing row with the
// same slug. The series ID is filled in on return.
func (s *Store) UpsertSeries(sr *Series) error {
	res, err := s.db.Exec(`
		INSERT INTO series (slug, title, kind, synopsis, year, status,
			episode_count, chapter_count, cover_url, banner_url, anilist_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(slug) DO UPDATE SET
			title = excluded.title,
			kind = excluded.kind,
			synopsis = excluded.synopsis,
			year = excluded.year,
			status = excluded.status,
			episode_count = excluded.episode_count,
			chapter_count = excluded.chapter_count,
			cover_url = excluded.cover_url,
			banner_url = excluded.banner_url,
			anilist_id = excluded.anilist_id`,
		sr.Slug, sr.Title, sr.Kind, sr.Synopsis, sr.Year, sr.Status,
		sr.EpisodeCount, sr.ChapterCount, sr.CoverURL, sr.BannerURL, sr.AniListID)
	if err != nil {
		return fmt.Errorf("failed to upsert series %q: %w", sr.Slug, err)
	}
	if id, err := res.LastInsertId(); err == nil && id > 0 {
		sr.ID = id
	}
	if sr.ID == 0 {
		row := s.db.QueryRow(`SELECT id FROM series WHERE slug = ?`, sr.Slug)
		if err := row.Scan(&sr.ID); err != nil {
			return fmt.Errorf("failed to resolve series %q: %w", sr.Slug, err)
		}
	}
	return nil
}

func scanSeries(row interface{ Scan(...any) error }) (Series, error) {
	var sr Series
	err := row.Scan(&sr.ID, &sr.Slug, &sr.Title, &sr.Kind, &sr.Synopsis,
		&sr.Year, &sr.Status, &sr.EpisodeCount, &sr.ChapterCount,
		&sr.CoverURL, &sr.BannerURL, &sr.AniListID)
	return sr, err
}

const seriesColumns = `id, slug, title, kind, synopsis, year, status,
	episode_count, chapter_count, cover_url, banner_url, anilist_id`

// SeriesBySlug looks up one series by its slug.
func (s *Store) SeriesBySlug(slug string) (Series, error) {
	row := s.db.QueryRow(`SELECT `+seriesColumns+` FROM series WHERE slug = ?`, slug)
	sr, err := scanSeries(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Series{}, ErrNotFound
	}
	if err != nil {
		return Series{}, fmt.Errorf("failed to load series %q: %w", slug, err)
	}
	return sr, nil
}

// AllSeries returns the catalog sorted by title. kind filters to
// "anime" or "manga"; an empty kind returns everything.
func (s *Store) AllSeries(kind string) ([]Series, error) {
	query := `SELECT ` + seriesColumns + ` FROM series`
	args := []any{}
	if kind != "" {
		query += ` WHERE kind = ?`
		args = append(args, kind)
	}
	query += ` ORDER BY title COLLATE NOCASE`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list series: %w", err)
	}
	defer rows.Close()

	var out []Series
	for rows.Next() {
		sr, err := scanSeries(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sr)
	}
	return out, rows.Err()
}
