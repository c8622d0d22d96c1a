package entity

import (
	"path/filepath"
	"strings"
)

const (
	// ProfileIDLength is the length of a generated profile identifier.
	ProfileIDLength = 8

	// ProfileIDAlphabet lists the characters a generated identifier is drawn from.
	ProfileIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

	// ProfileDirSuffix is appended to the identifier to name the profile directory.
	ProfileDirSuffix = ".default"
)

// Profile is an isolated namespace of browsing data.
type Profile struct {
	ID  string
	Dir string
}

// NewProfile derives the profile directory under root.
func NewProfile(root, id string) Profile {
	return Profile{
		ID:  id,
		Dir: filepath.Join(root, id+ProfileDirSuffix),
	}
}

// PlaceholderProfile is returned when the profile configuration is unusable.
func PlaceholderProfile() Profile {
	return Profile{}
}

// IsPlaceholder reports whether the profile carries no identifier.
func (p Profile) IsPlaceholder() bool {
	return p.ID == ""
}

// IsGeneratedProfileID reports whether id has the shape of a generated identifier.
func IsGeneratedProfileID(id string) bool {
	if len(id) != ProfileIDLength {
		return false
	}
	for _, r := range id {
		if !strings.ContainsRune(ProfileIDAlphabet, r) {
			return false
		}
	}
	return true
}

// IsUsableProfileID reports whether id can name a profile directory.
// Hand-edited identifiers are accepted as long as they stay a single path component.
func IsUsableProfileID(id string) bool {
	if id == "" || id == "." || id == ".." {
		return false
	}
	return !strings.ContainsAny(id, `/\`+"\x00")
}
