// Package match maps declared metadata filenames to the files actually on
// disk, tolerating the case and extension normalization the export applies.
package match

import (
	"path/filepath"
	"sort"
	"strings"
)

// Verdict classifies one Match call.
type Verdict int

const (
	// Matched: exactly one on-disk file matches.
	Matched Verdict = iota
	// NoMatch: no on-disk file matches under any rule.
	NoMatch
	// Ambiguous: more than one file matches under a lenient rule. Treated
	// as no-match by callers; a wrong match is worse than a skipped file.
	Ambiguous
)

// Matcher resolves declared names against one folder's filename set.
//
// Match is pure and idempotent; claim tracking is separate so the caller
// can report a second reference to an already-matched file as a duplicate
// reference instead of matching the file twice.
type Matcher struct {
	exact   map[string]struct{}
	folded  map[string][]string // lower(name) → on-disk names
	stems   map[string][]string // lower(stem) → on-disk names
	aliases map[string]string   // lower ext (no dot) → alias class key
	claimed map[string]struct{}
}

// New indexes names (basenames, not paths). aliasClasses lists extension
// groups treated as equivalent under the lenient rule, e.g. {"jpg","jpeg"};
// entries are expected lowercase without the leading dot (config.Validate
// normalizes them).
func New(names []string, aliasClasses [][]string) *Matcher {
	m := &Matcher{
		exact:   make(map[string]struct{}, len(names)),
		folded:  make(map[string][]string),
		stems:   make(map[string][]string),
		aliases: make(map[string]string),
		claimed: make(map[string]struct{}),
	}
	for _, class := range aliasClasses {
		if len(class) == 0 {
			continue
		}
		for _, ext := range class {
			m.aliases[ext] = class[0]
		}
	}
	for _, name := range names {
		m.exact[name] = struct{}{}
		low := strings.ToLower(name)
		m.folded[low] = append(m.folded[low], name)
		m.stems[stem(low)] = append(m.stems[stem(low)], name)
	}
	// Deterministic candidate order regardless of input order.
	for _, names := range m.folded {
		sort.Strings(names)
	}
	for _, names := range m.stems {
		sort.Strings(names)
	}
	return m
}

// Match resolves declared to an on-disk name, applying in order:
//
//  1. exact (case-sensitive) match
//  2. case-insensitive match of the whole name
//  3. case-insensitive stem match with equivalent extensions
//     (e.g. ".jpeg" vs ".jpg", ".heic" vs ".HEIC")
//
// Multiple candidates under rule 2 or 3 yield Ambiguous with no name.
func (m *Matcher) Match(declared string) (string, Verdict) {
	if _, ok := m.exact[declared]; ok {
		return declared, Matched
	}

	low := strings.ToLower(declared)
	if names := m.folded[low]; len(names) > 0 {
		if len(names) > 1 {
			return "", Ambiguous
		}
		return names[0], Matched
	}

	declExt := extOf(low)
	var candidates []string
	for _, name := range m.stems[stem(low)] {
		if m.extEquivalent(declExt, extOf(strings.ToLower(name))) {
			candidates = append(candidates, name)
		}
	}
	switch len(candidates) {
	case 0:
		return "", NoMatch
	case 1:
		return candidates[0], Matched
	default:
		return "", Ambiguous
	}
}

// Claim marks name as matched to a record. Claimed reports whether an
// earlier record already owns it.
func (m *Matcher) Claim(name string)        { m.claimed[name] = struct{}{} }
func (m *Matcher) Claimed(name string) bool { _, ok := m.claimed[name]; return ok }

// extEquivalent reports whether two lowercase extensions (no dot) are the
// same or belong to the same alias class.
func (m *Matcher) extEquivalent(a, b string) bool {
	if a == b {
		return true
	}
	ca, ok := m.aliases[a]
	if !ok {
		return false
	}
	cb, ok := m.aliases[b]
	return ok && ca == cb
}

// stem returns the name without its extension.
func stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// extOf returns the extension without the leading dot.
func extOf(name string) string {
	return strings.TrimPrefix(filepath.Ext(name), ".")
}
