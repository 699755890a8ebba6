package store

import (
	"fmt"
	"strings"
)

// ItemRow is one episode or chapter row.
type ItemRow struct {
	ID     int64
	Number int
	Title  string
}

// ArtworkRow is one artwork candidate attached to an item.
type ArtworkRow struct {
	ItemID  int64
	URL     string
	Primary bool
	Votes   *int
	Width   *int
}

// Character is one cast member, ordered by ord starting at 1.
type Character struct {
	Ord      int
	Name     string
	Role     string
	ImageURL string
}

// AddItem inserts an episode or chapter and returns its row ID.
func (s *Store) AddItem(seriesID int64, kind string, number int, title string) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO items (series_id, kind, number, title) VALUES (?, ?, ?, ?)
		ON CONFLICT(series_id, kind, number) DO UPDATE SET title = excluded.title`,
		seriesID, kind, number, title)
	if err != nil {
		return 0, fmt.Errorf("failed to add %s %d: %w", kind, number, err)
	}
	id, err := res.LastInsertId()
	if err != nil || id == 0 {
		row := s.db.QueryRow(`SELECT id FROM items WHERE series_id = ? AND kind = ? AND number = ?`,
			seriesID, kind, number)
		if err := row.Scan(&id); err != nil {
			return 0, fmt.Errorf("failed to resolve %s %d: %w", kind, number, err)
		}
	}
	return id, nil
}

// AddArtwork attaches an artwork candidate to an item. votes and width
// may be nil when the source did not report them.
func (s *Store) AddArtwork(itemID int64, url string, primary bool, votes, width *int) error {
	_, err := s.db.Exec(`
		INSERT INTO artwork (item_id, url, is_primary, votes, width) VALUES (?, ?, ?, ?, ?)`,
		itemID, url, primary, votes, width)
	if err != nil {
		return fmt.Errorf("failed to add artwork: %w", err)
	}
	return nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

// ItemsByNumbers loads the items with the given numbers. Numbers with
// no row are simply absent from the result.
func (s *Store) ItemsByNumbers(seriesID int64, kind string, numbers []int) ([]ItemRow, error) {
	if len(numbers) == 0 {
		return nil, nil
	}
	args := []any{seriesID, kind}
	for _, n := range numbers {
		args = append(args, n)
	}
	rows, err := s.db.Query(`
		SELECT id, number, title FROM items
		WHERE series_id = ? AND kind = ? AND number IN (`+placeholders(len(numbers))+`)
		ORDER BY number`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load %ss: %w", kind, err)
	}
	defer rows.Close()

	var out []ItemRow
	for rows.Next() {
		var it ItemRow
		if err := rows.Scan(&it.ID, &it.Number, &it.Title); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// ArtworkForItems loads all artwork candidates for the given item IDs,
// grouped by item.
func (s *Store) ArtworkForItems(itemIDs []int64) (map[int64][]ArtworkRow, error) {
	if len(itemIDs) == 0 {
		return map[int64][]ArtworkRow{}, nil
	}
	args := make([]any, len(itemIDs))
	for i, id := range itemIDs {
		args[i] = id
	}
	rows, err := s.db.Query(`
		SELECT item_id, url, is_primary, votes, width FROM artwork
		WHERE item_id IN (`+placeholders(len(itemIDs))+`)`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load artwork: %w", err)
	}
	defer rows.Close()

	out := map[int64][]ArtworkRow{}
	for rows.Next() {
		var a ArtworkRow
		if err := rows.Scan(&a.ItemID, &a.URL, &a.Primary, &a.Votes, &a.Width); err != nil {
			return nil, err
		}
		out[a.ItemID] = append(out[a.ItemID], a)
	}
	return out, rows.Err()
}

// AddCharacter inserts a cast member at the given position.
func (s *Store) AddCharacter(seriesID int64, ord int, name, role, imageURL string) error {
	_, err := s.db.Exec(`
		INSERT INTO characters (series_id, ord, name, role, image_url) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(series_id, ord) DO UPDATE SET
			name = excluded.name, role = excluded.role, image_url = excluded.image_url`,
		seriesID, ord, name, role, imageURL)
	if err != nil {
		return fmt.Errorf("failed to add character %q: %w", name, err)
	}
	return nil
}

// CharactersByRange loads cast members with ord in [first, last].
func (s *Store) CharactersByRange(seriesID int64, first, last int) ([]Character, error) {
	rows, err := s.db.Query(`
		SELECT ord, name, role, image_url FROM characters
		WHERE series_id = ? AND ord BETWEEN ? AND ? ORDER BY ord`,
		seriesID, first, last)
	if err != nil {
		return nil, fmt.Errorf("failed to load characters: %w", err)
	}
	defer rows.Close()

	var out []Character
	for rows.Next() {
		var c Character
		if err := rows.Scan(&c.Ord, &c.Name, &c.Role, &c.ImageURL); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// CharacterCount returns how many cast members a series has.
func (s *Store) CharacterCount(seriesID int64) (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM characters WHERE series_id = ?`, seriesID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count characters: %w", err)
	}
	return n, nil
}

// SetVolumeMap replaces the volume assignments for a series. The map
// goes from volume label to the chapter numbers it contains, both as
// the source reported them.
func (s *Store) SetVolumeMap(seriesID int64, volumes map[string][]string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to start volume update: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM volumes WHERE series_id = ?`, seriesID); err != nil {
		return fmt.Errorf("failed to clear volumes: %w", err)
	}
	for label, chapters := range volumes {
		for _, ch := range chapters {
			if _, err := tx.Exec(`INSERT INTO volumes (series_id, label, chapter) VALUES (?, ?, ?)`,
				seriesID, label, ch); err != nil {
				return fmt.Errorf("failed to store volume %q: %w", label, err)
			}
		}
	}
	return tx.Commit()
}

// VolumeMap loads the volume assignments for a series. Returns an empty
// map when the source provided none.
func (s *Store) VolumeMap(seriesID int64) (map[string][]string, error) {
	rows, err := s.db.Query(`SELECT label, chapter FROM volumes WHERE series_id = ?`, seriesID)
	if err != nil {
		return nil, fmt.Errorf("failed to load volumes: %w", err)
	}
	defer rows.Close()

	out := map[string][]string{}
	for rows.Next() {
		var label, ch string
		if err := rows.Scan(&label, &ch); err != nil {
			return nil, err
		}
		out[label] = append(out[label], ch)
	}
	return out, rows.Err()
}
