package parser

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jakechorley/volunteer-manager/pkg/core/commands"
)

// ArgumentMultimap holds the values of every prefix found in an argument string
// Repeated prefixes keep every value, in the order they appeared
type ArgumentMultimap struct {
	preamble string
	values   map[commands.Prefix][]string
}

// Value returns the last value given for p
func (m ArgumentMultimap) Value(p commands.Prefix) (string, bool) {
	values := m.values[p]
	if len(values) == 0 {
		return "", false
	}
	return values[len(values)-1], true
}

// AllValues returns every value given for p, in order
func (m ArgumentMultimap) AllValues(p commands.Prefix) []string {
	return append([]string(nil), m.values[p]...)
}

// Preamble returns the text before the first prefix, e.g. the index of an edit command
func (m ArgumentMultimap) Preamble() string {
	return m.preamble
}

// Has reports whether p appeared at least once
func (m ArgumentMultimap) Has(p commands.Prefix) bool {
	return len(m.values[p]) > 0
}

// HasAll reports whether every prefix appeared at least once
func (m ArgumentMultimap) HasAll(prefixes ...commands.Prefix) bool {
	for _, p := range prefixes {
		if !m.Has(p) {
			return false
		}
	}
	return true
}

// VerifyNoDuplicatePrefixesFor fails if any of the single-valued prefixes appeared more than once
func (m ArgumentMultimap) VerifyNoDuplicatePrefixesFor(prefixes ...commands.Prefix) error {
	var duplicated []commands.Prefix
	for _, p := range prefixes {
		if len(m.values[p]) > 1 {
			duplicated = append(duplicated, p)
		}
	}
	if len(duplicated) > 0 {
		return duplicatePrefixes(duplicated)
	}
	return nil
}

// prefixPosition is one occurrence of a prefix in the argument string
type prefixPosition struct {
	prefix commands.Prefix
	start  int
}

// Tokenize splits args into values keyed by the given prefixes
// A prefix only counts at the start of args or straight after whitespace,
// so "e:" inside "alice@e:x" is part of a value. Values and the preamble are trimmed.
func Tokenize(args string, prefixes ...commands.Prefix) ArgumentMultimap {
	positions := findPrefixPositions(args, prefixes)

	m := ArgumentMultimap{values: make(map[commands.Prefix][]string)}

	// Everything before the first prefix is the preamble
	end := len(args)
	if len(positions) > 0 {
		end = positions[0].start
	}
	m.preamble = strings.TrimSpace(args[:end])

	// Each value runs until the next prefix occurrence
	for i, pos := range positions {
		valueStart := pos.start + len(pos.prefix)
		valueEnd := len(args)
		if i+1 < len(positions) {
			valueEnd = positions[i+1].start
		}
		value := strings.TrimSpace(args[valueStart:valueEnd])
		m.values[pos.prefix] = append(m.values[pos.prefix], value)
	}

	return m
}

// findPrefixPositions returns every occurrence of every prefix, ordered by position
func findPrefixPositions(args string, prefixes []commands.Prefix) []prefixPosition {
	var positions []prefixPosition
	for _, p := range prefixes {
		needle := p.String()
		from := 0
		for {
			idx := strings.Index(args[from:], needle)
			if idx == -1 {
				break
			}
			start := from + idx
			if start == 0 || precededBySpace(args, start) {
				positions = append(positions, prefixPosition{prefix: p, start: start})
			}
			from = start + len(needle)
		}
	}

	sort.Slice(positions, func(i, j int) bool {
		return positions[i].start < positions[j].start
	})
	return positions
}

func precededBySpace(s string, i int) bool {
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return unicode.IsSpace(r)
}
