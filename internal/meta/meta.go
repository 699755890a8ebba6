// Package meta hydrates navigator strips with display metadata: titles and
// best-ranked artwork for the currently visible card range, cached per item
// so a scroll position is never fetched twice.
package meta

// ItemMeta is the hydrated display metadata for one card. Empty fields mean
// "known absent": the item was looked up and has no title or artwork.
type ItemMeta struct {
	Title    string
	ImageURL string
}

// Item is one row returned by a metadata fetch.
type Item struct {
	Number  int // 1-based episode/chapter number
	Title   string
	Artwork []Artwork
}

// Artwork is one candidate image for an item. Votes and Width are nil when
// the source row does not carry them; missing values rank last.
type Artwork struct {
	URL     string
	Primary bool
	Votes   *int
	Width   *int
}

// FetchFunc loads item rows for a set of item numbers.
type FetchFunc func(numbers []int) ([]Item, error)
