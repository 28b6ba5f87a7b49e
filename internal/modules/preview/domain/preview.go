package domain

import (
	"errors"
	"regexp"
)

const (
	// DefaultBasePath is where preview images are served from
	DefaultBasePath = "/static/img"
	// DefaultExt is the extension preview URLs carry
	DefaultExt = "jpg"
	// GroupName is the name of the radio group on the page
	GroupName = "animal"
)

var (
	ErrInvalidName   = errors.New("invalid animal name")
	ErrImageNotFound = errors.New("preview image not found")
	ErrCacheMiss     = errors.New("preview not cached")
)

var namePattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

// ImagePath builds <base>/<value>.<ext>. The value is used as is.
func ImagePath(base, value, ext string) string {
	return base + "/" + value + "." + ext
}

// ValidName reports whether name can be served from the image directory
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}
