// Package classify maps URL query-parameter keys to tracking categories.
// Classification looks only at the key; values are never inspected.
package classify

import (
	"fmt"
	"strings"
)

// Category identifies which decoy strategy applies to a tracking parameter.
// The zero value, None, means the key is not a tracking parameter.
type Category string

const (
	None     Category = ""
	Source   Category = "source"
	Medium   Category = "medium"
	Campaign Category = "campaign"
	Term     Category = "term"
	Content  Category = "content"
	Generic  Category = "generic"
	Hash     Category = "hash"
)

// Categories lists every tracking category in display order.
var Categories = []Category{Source, Medium, Campaign, Term, Content, Generic, Hash}

// IsTracking reports whether c names a tracking category.
func (c Category) IsTracking() bool { return c != None }

func (c Category) String() string {
	if c == None {
		return "none"
	}
	return string(c)
}

// ParseCategory converts a category name (case-insensitive) to a Category.
func ParseCategory(s string) (Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	if s == "none" {
		return None, nil
	}
	return None, fmt.Errorf("unknown category %q", s)
}
