package anilist

import "fmt"

const mediaFields = `
	id
	title { romaji english }
	type
	format
	status
	description
	seasonYear
	episodes
	chapters
	volumes
	coverImage { large extraLarge }
	bannerImage
	averageScore`

const searchQuery = `
query ($search: String, $page: Int) {
	Page(page: $page, perPage: 20) {
		media(search: $search, sort: SEARCH_MATCH) {` + mediaFields + `
		}
	}
}`

const trendingQuery = `
query ($page: Int) {
	Page(page: $page, perPage: 20) {
		media(sort: TRENDING_DESC) {` + mediaFields + `
		}
	}
}`

const mediaByIDQuery = `
query ($id: Int) {
	Media(id: $id) {` + mediaFields + `
	}
}`

type pageData struct {
	Page struct {
		Media []Media `json:"media"`
	} `json:"Page"`
}

// Search queries AniList for anime and manga matching the query string.
func (c *Client) Search(query string, page int) ([]Media, error) {
	var data pageData
	err := c.query(searchQuery, map[string]any{"search": query, "page": page}, &data)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	return data.Page.Media, nil
}

// Trending fetches the currently trending titles.
func (c *Client) Trending(page int) ([]Media, error) {
	var data pageData
	err := c.query(trendingQuery, map[string]any{"page": page}, &data)
	if err != nil {
		return nil, fmt.Errorf("get trending: %w", err)
	}
	return data.Page.Media, nil
}

// MediaByID fetches one entry by its AniList ID.
func (c *Client) MediaByID(id int) (*Media, error) {
	var data struct {
		Media Media `json:"Media"`
	}
	err := c.query(mediaByIDQuery, map[string]any{"id": id}, &data)
	if err != nil {
		return nil, fmt.Errorf("get media %d: %w", id, err)
	}
	return &data.Media, nil
}
