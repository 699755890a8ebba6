package store

import (
	"database/sql"
	"errors"
	"fmt"
)

// ContinueEntry is one series the user is part way through, paired with
// the next unwatched or unread number.
type ContinueEntry struct {
	Series Series
	Kind   string
	Next   int
}

// RatedEntry is one rated series with its score.
type RatedEntry struct {
	Series Series
	Score  int
}

// SetProgress records that the user finished the given episode or
// chapter. The recorded number never decreases, so re-watching an
// earlier episode does not lose the continue position.
func (s *Store) SetProgress(seriesID int64, kind string, number int) error {
	_, err := s.db.Exec(`
		INSERT INTO progress (series_id, kind, number, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(series_id, kind) DO UPDATE SET
			number = MAX(number, excluded.number),
			updated_at = excluded.updated_at`,
		seriesID, kind, number)
	if err != nil {
		return fmt.Errorf("failed to record progress: %w", err)
	}
	return nil
}

// Progress returns the highest finished number for a series, or 0 when
// nothing has been marked yet.
func (s *Store) Progress(seriesID int64, kind string) (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT number FROM progress WHERE series_id = ? AND kind = ?`,
		seriesID, kind).Scan(&n)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to load progress: %w", err)
	}
	return n, nil
}

// SetRating stores the user's score for a series.
func (s *Store) SetRating(seriesID int64, score int) error {
	_, err := s.db.Exec(`
		INSERT INTO ratings (series_id, score, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(series_id) DO UPDATE SET
			score = excluded.score, updated_at = excluded.updated_at`,
		seriesID, score)
	if err != nil {
		return fmt.Errorf("failed to store rating: %w", err)
	}
	return nil
}

// Rating returns the stored score for a series, or 0 when unrated.
func (s *Store) Rating(seriesID int64) (int, error) {
	var score int
	err := s.db.QueryRow(`SELECT score FROM ratings WHERE series_id = ?`, seriesID).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to load rating: %w", err)
	}
	return score, nil
}

// ContinueList returns series with unfinished progress, most recently
// touched first. Next is the number after the last one finished.
func (s *Store) ContinueList(limit int) ([]ContinueEntry, error) {
	rows, err := s.db.Query(`
		SELECT `+prefixedSeriesColumns+`, p.kind, p.number
		FROM progress p JOIN series s ON s.id = p.series_id
		WHERE (p.kind = ? AND p.number < s.episode_count)
		   OR (p.kind = ? AND p.number < s.chapter_count)
		ORDER BY p.updated_at DESC LIMIT ?`,
		KindEpisode, KindChapter, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load continue list: %w", err)
	}
	defer rows.Close()

	var out []ContinueEntry
	for rows.Next() {
		var e ContinueEntry
		var done int
		if err := rows.Scan(&e.Series.ID, &e.Series.Slug, &e.Series.Title, &e.Series.Kind,
			&e.Series.Synopsis, &e.Series.Year, &e.Series.Status,
			&e.Series.EpisodeCount, &e.Series.ChapterCount,
			&e.Series.CoverURL, &e.Series.BannerURL, &e.Series.AniListID,
			&e.Kind, &done); err != nil {
			return nil, err
		}
		e.Next = done + 1
		out = append(out, e)
	}
	return out, rows.Err()
}

// RecentRatings returns the most recently rated series.
func (s *Store) RecentRatings(limit int) ([]RatedEntry, error) {
	rows, err := s.db.Query(`
		SELECT `+prefixedSeriesColumns+`, r.score
		FROM ratings r JOIN series s ON s.id = r.series_id
		ORDER BY r.updated_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load ratings: %w", err)
	}
	defer rows.Close()

	var out []RatedEntry
	for rows.Next() {
		var e RatedEntry
		if err := rows.Scan(&e.Series.ID, &e.Series.Slug, &e.Series.Title, &e.Series.Kind,
			&e.Series.Synopsis, &e.Series.Year, &e.Series.Status,
			&e.Series.EpisodeCount, &e.Series.ChapterCount,
			&e.Series.CoverURL, &e.Series.BannerURL, &e.Series.AniListID,
			&e.Score); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

const prefixedSeriesColumns = `s.id, s.slug, s.title, s.kind, s.synopsis, s.year, s.status,
	s.episode_count, s.chapter_count, s.cover_url, s.banner_url, s.anilist_id`
