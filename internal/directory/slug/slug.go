// Package slug derives URL-safe unique identifiers from subcontractor
// display names.
package slug

import (
	"context"
	"fmt"
	"strings"
)

// fallback is used when a name normalizes to the empty string, e.g. a
// name made entirely of punctuation.
const fallback = "subcontractor"

// Checker reports whether a slug is already taken.
type Checker interface {
	SlugExists(ctx context.Context, slug string) (bool, error)
}

// Normalize lowers the name, collapses every run of characters outside
// [a-z0-9] into a single hyphen, and trims leading/trailing hyphens.
func Normalize(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	hyphen := false
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if hyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			hyphen = false
			b.WriteRune(r)
		} else {
			hyphen = true
		}
	}
	return b.String()
}

// Resolver probes the store for a free slug variant. The probe loop is
// only an optimization; the slug column's unique index is the actual
// uniqueness guarantee, and callers retry on a duplicate-key insert.
type Resolver struct {
	store Checker
}

func NewResolver(store Checker) *Resolver {
	return &Resolver{store: store}
}

// Resolve returns the normalized name if unused, otherwise the first
// free suffixed variant base-1, base-2, ... The counter is unbounded;
// the store is finite, so the loop terminates.
func (r *Resolver) Resolve(ctx context.Context, name string) (string, error) {
	base := Normalize(name)
	if base == "" {
		base = fallback
	}

	candidate := base
	for counter := 1; ; counter++ {
		exists, err := r.store.SlugExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check slug %q: %w", candidate, err)
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}
}
