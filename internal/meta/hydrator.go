package meta

import (
	"fmt"
	"sync"
)

// Hydrator fills a per-item metadata cache for one series at a time. Safe
// for concurrent use: screens call Ensure from a background goroutine while
// the draw path reads through Get.
//
// The cache is append-only for the lifetime of an identity key and is
// discarded wholesale when the key changes (navigating to another series).
// Items that resolve to nothing, and whole batches whose fetch failed,
// are cached as empty so they are never re-requested.
type Hydrator struct {
	kind  string // display-label prefix: "Episode", "Chapter", ...
	batch int
	fetch FetchFunc

	mu    sync.Mutex
	key   string
	cache map[int]ItemMeta
}

// NewHydrator creates a hydrator. batch caps how many items a single
// Ensure call may request.
func NewHydrator(kind string, batch int, fetch FetchFunc) *Hydrator {
	if batch <= 0 {
		batch = 64
	}
	return &Hydrator{
		kind:  kind,
		batch: batch,
		fetch: fetch,
		cache: make(map[int]ItemMeta),
	}
}

// Reset binds the hydrator to a new identity key, discarding the cache if
// the key actually changed.
func (h *Hydrator) Reset(key string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.key == key {
		return
	}
	h.key = key
	h.cache = make(map[int]ItemMeta)
}

// Get returns cached metadata for an item number.
func (h *Hydrator) Get(number int) (ItemMeta, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	m, ok := h.cache[number]
	return m, ok
}

// Ensure hydrates every uncached item number in [first, last], issuing at
// most one batched fetch. Re-entrant: overlapping calls for a moving
// visible window only ever add cache entries, so no cancellation is needed.
func (h *Hydrator) Ensure(key string, first, last int) error {
	if first > last {
		return nil
	}

	h.mu.Lock()
	if h.key != key {
		h.mu.Unlock()
		return nil // stale request from a previous series
	}
	var missing []int
	for n := first; n <= last && len(missing) < h.batch; n++ {
		if _, ok := h.cache[n]; !ok {
			missing = append(missing, n)
		}
	}
	h.mu.Unlock()

	if len(missing) == 0 {
		return nil
	}

	items, err := h.fetch(missing)

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.key != key {
		return nil // series changed while the fetch was in flight
	}

	byNumber := make(map[int]Item, len(items))
	for _, it := range items {
		byNumber[it.Number] = it
	}
	for _, n := range missing {
		m := ItemMeta{Title: fmt.Sprintf("%s %d", h.kind, n)}
		if it, ok := byNumber[n]; ok && err == nil {
			if it.Title != "" {
				m.Title = it.Title
			}
			if best, ok := BestArtwork(it.Artwork); ok {
				m.ImageURL = best.URL
			}
		}
		// Failed or empty lookups are cached too: degrade to the
		// synthesized label instead of retrying forever.
		if _, exists := h.cache[n]; !exists {
			h.cache[n] = m
		}
	}

	if err != nil {
		return fmt.Errorf("hydrate %s %d-%d: %w", h.kind, first, last, err)
	}
	return nil
}
