package model

import (
	"slices"
	"strings"
)

// NameContainsKeywords matches names containing any of the keywords as a whole word, ignoring case
type NameContainsKeywords struct {
	Keywords []string
}

// Match reports whether any word of name equals any keyword, case-insensitively
func (p NameContainsKeywords) Match(name Name) bool {
	words := name.Words()
	return slices.ContainsFunc(p.Keywords, func(keyword string) bool {
		return slices.ContainsFunc(words, func(word string) bool {
			return strings.EqualFold(word, keyword)
		})
	})
}

// Volunteer matches on the volunteer's name
func (p NameContainsKeywords) Volunteer(v Volunteer) bool {
	return p.Match(v.Name())
}

// Event matches on the event's name
func (p NameContainsKeywords) Event(e Event) bool {
	return p.Match(e.Name())
}

// ShowAll accepts every element; it is the default filter of every view
func ShowAll[T any](T) bool {
	return true
}
