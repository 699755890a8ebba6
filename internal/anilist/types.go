package anilist

import (
	"regexp"
	"strings"
)

// Media is one AniList entry, anime or manga.
type Media struct {
	ID    int `json:"id"`
	Title struct {
		Romaji  string `json:"romaji"`
		English string `json:"english"`
	} `json:"title"`
	Type        string `json:"type"` // "ANIME" or "MANGA"
	Format      string `json:"format"`
	Status      string `json:"status"`
	Description string `json:"description"`
	SeasonYear  int    `json:"seasonYear"`
	Episodes    int    `json:"episodes"`
	Chapters    int    `json:"chapters"`
	Volumes     int    `json:"volumes"`
	CoverImage  struct {
		Large      string `json:"large"`
		ExtraLarge string `json:"extraLarge"`
	} `json:"coverImage"`
	BannerImage  string `json:"bannerImage"`
	AverageScore int    `json:"averageScore"`
}

// DisplayTitle prefers the English title and falls back to romaji.
func (m *Media) DisplayTitle() string {
	if m.Title.English != "" {
		return m.Title.English
	}
	return m.Title.Romaji
}

// IsManga reports whether the entry is a manga rather than an anime.
func (m *Media) IsManga() bool {
	return m.Type == "MANGA"
}

// CoverURL returns the best available cover image URL.
func (m *Media) CoverURL() string {
	if m.CoverImage.ExtraLarge != "" {
		return m.CoverImage.ExtraLarge
	}
	return m.CoverImage.Large
}

var htmlTagRe = regexp.MustCompile(`<[^>]+>`)

// PlainDescription strips the HTML markup AniList embeds in synopses.
func (m *Media) PlainDescription() string {
	s := strings.ReplaceAll(m.Description, "<br>", "\n")
	s = htmlTagRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

// Slug derives a library slug from the display title.
func (m *Media) Slug() string {
	s := strings.ToLower(m.DisplayTitle())
	s = slugRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
