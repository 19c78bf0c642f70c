package codes

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// Repository is the immutable, ordered code collection.
type Repository struct {
	codes    []Code
	values   []string       // folded values, parallel to codes
	descs    []string       // folded descriptions, parallel to codes
	index    map[string]int // folded value -> first position
	metadata Metadata
}

// NewRepository builds a Repository over codes, keeping their order.
// Values that collide under case folding are kept; lookups resolve to the
// first one and a warning is logged for each later one.
func NewRepository(codes []Code, opts ...Option) *Repository {
	o := newOptions(opts)

	r := &Repository{
		codes:    slices.Clone(codes),
		values:   make([]string, len(codes)),
		descs:    make([]string, len(codes)),
		index:    make(map[string]int, len(codes)),
		metadata: o.metadata,
	}
	if r.codes == nil {
		r.codes = []Code{}
	}

	for i, c := range r.codes {
		r.values[i] = fold(c.Value)
		r.descs[i] = fold(c.Description)
		if first, ok := r.index[r.values[i]]; ok {
			o.logger.Warn().
				Str("code_value", c.Value).
				Str("existing", r.codes[first].Value).
				Int("position", i).
				Msg("Case-insensitive code value collision; keeping first occurrence")
			continue
		}
		r.index[r.values[i]] = i
	}

	return r
}

// folder applies full Unicode case folding, so "ß" folds to "ss".
// The fold transformer keeps no state and is shared by all goroutines.
var folder = cases.Fold()

func fold(s string) string {
	return folder.String(s)
}

// FindByValue returns the code whose value matches case-insensitively.
func (r *Repository) FindByValue(value string) (Code, bool) {
	i, ok := r.index[fold(value)]
	if !ok {
		return Code{}, false
	}
	return r.codes[i], true
}

// Exists reports whether a code with the given value exists.
func (r *Repository) Exists(value string) bool {
	_, ok := r.index[fold(value)]
	return ok
}

// canonical resolves value to its stored casing.
func (r *Repository) canonical(value string) (string, bool) {
	c, ok := r.FindByValue(value)
	if !ok {
		return "", false
	}
	return c.Value, true
}

// FilterByParent returns the direct children of parent in insertion order.
// An unknown parent yields an empty result.
func (r *Repository) FilterByParent(parent string) []Code {
	canonical, ok := r.canonical(parent)
	if !ok {
		return []Code{}
	}

	children := []Code{}
	for _, c := range r.codes {
		if c.Parent == canonical {
			children = append(children, c)
		}
	}
	return children
}

// Search returns codes whose value or description contains query, and whose
// parent is parent. Either filter is skipped when empty. A parent that does
// not resolve yields an empty result whatever the query.
func (r *Repository) Search(query, parent string) []Code {
	var canonical string
	if parent != "" {
		var ok bool
		if canonical, ok = r.canonical(parent); !ok {
			return []Code{}
		}
	}

	q := fold(query)
	results := []Code{}
	for i, c := range r.codes {
		if parent != "" && c.Parent != canonical {
			continue
		}
		if q != "" && !strings.Contains(r.values[i], q) && !strings.Contains(r.descs[i], q) {
			continue
		}
		results = append(results, c)
	}
	return results
}

// All returns a copy of every code in insertion order.
func (r *Repository) All() []Code {
	return slices.Clone(r.codes)
}

// List returns one page of the full collection.
func (r *Repository) List(number, size int) (page []Code, total, pages int) {
	return Page(r.codes, number, size)
}

// Len returns the number of codes.
func (r *Repository) Len() int {
	return len(r.codes)
}

// Metadata returns the collection metadata.
func (r *Repository) Metadata() Metadata {
	return r.metadata
}
