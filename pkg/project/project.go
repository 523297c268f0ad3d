package project

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned for missing or unreadable entries.
	ErrNotFound = errors.New("project: not found")
	// ErrNameRequired is returned when a project name is blank after
	// sanitising.
	ErrNameRequired = errors.New("project: name is required")
	// ErrIDRequired is returned when saving a project without an ID.
	ErrIDRequired = errors.New("project: id is required")
)

// Project is a saved form. The documents are stored verbatim, including
// invalid JSON a user is still editing.
type Project struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	JSONSchema   string `json:"jsonSchema"`
	UISchema     string `json:"uiSchema"`
	Data         string `json:"data"`
	LastModified int64  `json:"lastModified"`
}

// Current is the unsaved work in progress.
type Current struct {
	JSONSchema   string `json:"jsonSchema"`
	UISchema     string `json:"uiSchema"`
	Data         string `json:"data"`
	LastModified int64  `json:"lastModified"`
}

// Modified returns LastModified as a time.
func (p Project) Modified() time.Time {
	return time.UnixMilli(p.LastModified)
}
