package domain

import (
	"errors"
	"regexp"
	"strings"
)

const (
	RoleAdmin = "admin"

	// SlugOther is the reserved catch-all category. It is never assignable
	// to a user and can never be created through the API.
	SlugOther = "other"
)

// DefaultAccent is applied when a role is created without an accent color.
const DefaultAccent = "#6366f1"

var ErrRoleExists = errors.New("role already exists")
var ErrRoleNotFound = errors.New("role not found")
var ErrInvalidRoleName = errors.New("invalid role name")

// Role is a registry entry. Roles are immutable after creation.
type Role struct {
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	Accent     string `json:"accent"`
	Assignable bool   `json:"assignable"`
}

// DefaultRoles is the seed set inserted at startup when absent.
func DefaultRoles() []Role {
	return []Role{
		{Name: "Admin", Slug: "admin", Accent: "#fbbf24", Assignable: true},
		{Name: "Marketer", Slug: "marketer", Accent: "#c084fc", Assignable: true},
		{Name: "HR", Slug: "hr", Accent: "#34d399", Assignable: true},
		{Name: "Employee", Slug: "employee", Accent: "#60a5fa", Assignable: true},
		{Name: "Other", Slug: "other", Accent: "#9ca3af", Assignable: false},
	}
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives the URL-safe slug for a role name: lowercase, runs of
// non-alphanumeric characters collapsed to a single hyphen, edge hyphens
// stripped. The empty result and the reserved "other" are not valid slugs
// for a new role.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = nonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// ValidNewRoleSlug reports whether slug may name a newly created role.
func ValidNewRoleSlug(slug string) bool {
	return slug != "" && slug != SlugOther
}
