package domain

import "strings"

// Any is the wildcard sentinel for enum-valued filter fields.
const Any = "any"

// Filter is a conjunctive predicate over category, priority, status and
// free-text search. All four conditions must hold for a task to match.
// Construct via NewFilter so out-of-enumeration values are rejected up
// front instead of silently matching nothing.
type Filter struct {
	Category string
	Priority string
	Status   string
	Search   string
}

// NewFilter validates the raw field values and returns a Filter. Empty
// strings and "any" both mean "no constraint" for the enum fields.
func NewFilter(category, priority, status, search string) (Filter, error) {
	f := Filter{Category: Any, Priority: Any, Status: Any, Search: search}

	if category != "" && category != Any {
		c, err := ParseCategory(category)
		if err != nil {
			return Filter{}, err
		}
		f.Category = string(c)
	}
	if priority != "" && priority != Any {
		p, err := ParsePriority(priority)
		if err != nil {
			return Filter{}, err
		}
		f.Priority = string(p)
	}
	if status != "" && status != Any {
		s, err := ParseStatus(status)
		if err != nil {
			return Filter{}, err
		}
		f.Status = string(s)
	}
	return f, nil
}

// MatchAll is the identity filter: every field wildcarded, empty search.
func MatchAll() Filter {
	return Filter{Category: Any, Priority: Any, Status: Any}
}

// Matches reports whether the task satisfies every filter condition.
// The search term matches against title or description, case-insensitively,
// as a plain substring.
func (f Filter) Matches(t Task) bool {
	if f.Category != Any && string(t.Category) != f.Category {
		return false
	}
	if f.Priority != Any && string(t.Priority) != f.Priority {
		return false
	}
	if f.Status != Any && string(t.Status) != f.Status {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(t.Title), needle) &&
			!strings.Contains(strings.ToLower(t.Description), needle) {
			return false
		}
	}
	return true
}
