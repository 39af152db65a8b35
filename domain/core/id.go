package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// SiteID identifies a surveyed site (a borehole candidate with its ERP line and VES).
type SiteID ID

func (id SiteID) String() string { return ID(id).String() }

// IsEmpty checks if the site ID is empty
func (id SiteID) IsEmpty() bool { return id == "" }

// NewSiteID generates a fresh site identifier
func NewSiteID() SiteID { return SiteID(NewID()) }

// ParseSiteID parses a string into SiteID
func ParseSiteID(s string) (SiteID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("site ID cannot be empty")
	}
	return SiteID(strings.TrimSpace(s)), nil
}
