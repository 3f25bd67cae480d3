// Package match pairs guide entities with codex pages through codex URIs.
package match

import (
	"fmt"
	"strings"

	"guide-sync/core/reconcile"
)

// Canonical trims a codex URI and ends it with exactly one separator. Blank
// URIs stay empty.
func Canonical(uri string) string {
	uri = strings.TrimSuffix(strings.TrimSpace(uri), "/")
	if uri == "" {
		return ""
	}
	return uri + "/"
}

// Slug strips the namespace prefix and the trailing separator from a codex
// URI. It reports false when the URI is empty or belongs to another namespace.
func Slug(uri, prefix string) (string, bool) {
	rest, ok := strings.CutPrefix(Canonical(uri), prefix)
	if !ok {
		return "", false
	}
	rest = strings.TrimSuffix(rest, "/")
	if rest == "" {
		return "", false
	}
	return rest, true
}

// URI builds the codex URI of a slug in a namespace.
func URI(prefix, slug string) string {
	return prefix + slug + "/"
}

// GuideFor returns the single guide entity whose codex URI points at slug.
func GuideFor[G any](slug, prefix string, guides []G, uri func(G) string) (G, error) {
	var (
		found G
		count int
	)
	for _, g := range guides {
		if s, ok := Slug(uri(g), prefix); ok && s == slug {
			found = g
			count++
		}
	}

	switch count {
	case 0:
		var zero G
		return zero, fmt.Errorf("%s%s: %w", prefix, slug, reconcile.ErrNotFound)
	case 1:
		return found, nil
	default:
		var zero G
		return zero, fmt.Errorf("%s%s matched by %d guide entities: %w", prefix, slug, count, reconcile.ErrDuplicateMatch)
	}
}

// CodexFor returns the codex entity a guide URI points at.
func CodexFor[C any](uri, prefix string, codex []C, slug func(C) string) (C, error) {
	var zero C
	s, ok := Slug(uri, prefix)
	if !ok {
		return zero, fmt.Errorf("uri %q outside %s: %w", uri, prefix, reconcile.ErrNotFound)
	}
	for _, c := range codex {
		if slug(c) == s {
			return c, nil
		}
	}
	return zero, fmt.Errorf("%s%s: %w", prefix, s, reconcile.ErrNotFound)
}
