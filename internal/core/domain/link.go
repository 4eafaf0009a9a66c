package domain

import (
	"errors"
	"time"
)

var ErrLinkNotFound = errors.New("link not found")
var ErrForbidden = errors.New("access forbidden")
var ErrCategoryForbidden = errors.New("category forbidden")
var ErrInvalidInput = errors.New("invalid input")
var ErrInvalidURL = errors.New("invalid URL")

// Link is a single directory entry. Category always equals an existing role
// slug or "other", validated against the registry at creation time.
type Link struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	URL           string    `json:"url"`
	Description   string    `json:"description"`
	Logo          string    `json:"logo"`
	Category      string    `json:"category"`
	CreatedBy     string    `json:"createdBy"`
	CreatedByName string    `json:"createdByName"`
	CreatedAt     time.Time `json:"createdAt"`
}
