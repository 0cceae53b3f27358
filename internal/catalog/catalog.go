package catalog

import (
	"errors"
	"strings"
)

// Fixed category set. Each category maps to one slice of the
// catalog_items table and one localized display name.
const (
	CategoryGames   = "games"
	CategoryMovies  = "movies"
	CategorySeries  = "series"
	CategoryYouTube = "youtube"
)

var Categories = []string{CategoryGames, CategoryMovies, CategorySeries, CategoryYouTube}

var localizedNames = map[string]string{
	CategoryGames:   "ألعاب",
	CategoryMovies:  "أفلام",
	CategorySeries:  "مسلسلات",
	CategoryYouTube: "يوتيوب",
}

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrItemNotFound    = errors.New("item not found")
)

func ValidCategory(category string) bool {
	_, ok := localizedNames[category]
	return ok
}

// LocalizedName returns the Arabic display name of a category. Falls
// back to the canonical name for values outside the fixed set.
func LocalizedName(category string) string {
	if name, ok := localizedNames[category]; ok {
		return name
	}
	return category
}

// Item is a single catalog entry. Items are seeded once and never
// mutated afterwards; Year and Genre are absent for some entries
// (youtube channels have no year).
type Item struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	NameAr   string  `json:"name_ar"`
	Category string  `json:"category"`
	Year     *int    `json:"year"`
	Genre    *string `json:"genre"`
}

// ItemWithURL is an Item decorated with its external search link.
type ItemWithURL struct {
	Item
	ExternalURL string `json:"external_url"`
}

func Decorate(it Item) ItemWithURL {
	return ItemWithURL{Item: it, ExternalURL: SearchURL(it.Name, it.Category)}
}

// SearchURL derives the external search link for an item name. Spaces
// become '+'; categories outside the fixed set get a plain web search.
func SearchURL(name, category string) string {
	q := strings.ReplaceAll(name, " ", "+")
	switch category {
	case CategoryGames:
		return "https://www.google.com/search?q=" + q + "+game"
	case CategoryMovies:
		return "https://www.imdb.com/find/?q=" + q
	case CategorySeries:
		return "https://www.imdb.com/find/?q=" + q + "+tv+series"
	case CategoryYouTube:
		return "https://www.youtube.com/results?search_query=" + q
	}
	return "https://www.google.com/search?q=" + q
}

// CategorySummary is one row of the categories listing.
type CategorySummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	NameAr string `json:"name_ar"`
	Count  int    `json:"count"`
}
