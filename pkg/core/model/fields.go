package model

import (
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const (
	NameConstraints = "Names should only contain alphanumeric characters and spaces, " +
		"it should not be blank and it should be at most 100 characters long"
	PhoneConstraints = "Phone numbers should only contain numbers, and it should be at least 3 digits long"
	EmailConstraints = "Emails should be of the format local-part@domain and adhere to the following constraints:\n" +
		"1. The local-part should only contain alphanumeric characters and the special characters " +
		"allowed in an address, and may not start or end with a special character.\n" +
		"2. The domain name is made up of domain labels separated by periods, each starting and ending " +
		"with an alphanumeric character.\n" +
		"3. The whole address should be at most 254 characters long."
	AddressConstraints = "Addresses can take any values, and it should not be blank"
	SkillConstraints   = "Skills names should be alphanumeric"

	maxNameLength  = 100
	maxEmailLength = 254
)

var (
	namePattern  = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} ]*$`)
	phonePattern = regexp.MustCompile(`^\d{3,}$`)
	skillPattern = regexp.MustCompile(`^[\p{L}\p{N}]+$`)

	validate = validator.New()
)

// Name is the name of a volunteer or an event
type Name struct {
	value string
}

// NewName validates raw as a name
func NewName(raw string) (Name, error) {
	if !namePattern.MatchString(raw) || utf8.RuneCountInString(raw) > maxNameLength {
		return Name{}, invalid("name", raw, NameConstraints)
	}
	return Name{value: raw}, nil
}

func (n Name) String() string {
	return n.value
}

// Words splits the name on whitespace
func (n Name) Words() []string {
	return strings.Fields(n.value)
}

// Phone is a volunteer's phone number
type Phone struct {
	value string
}

// NewPhone validates raw as a phone number
func NewPhone(raw string) (Phone, error) {
	if !phonePattern.MatchString(raw) {
		return Phone{}, invalid("phone", raw, PhoneConstraints)
	}
	return Phone{value: raw}, nil
}

func (p Phone) String() string {
	return p.value
}

// Email is a volunteer's email address
type Email struct {
	value string
}

// NewEmail validates raw as an email address
func NewEmail(raw string) (Email, error) {
	if len(raw) > maxEmailLength {
		return Email{}, invalid("email", raw, EmailConstraints)
	}
	if err := validate.Var(raw, "required,email"); err != nil {
		return Email{}, invalid("email", raw, EmailConstraints)
	}
	return Email{value: raw}, nil
}

func (e Email) String() string {
	return e.value
}

// Address is a volunteer's postal address
type Address struct {
	value string
}

// NewAddress validates raw as an address
func NewAddress(raw string) (Address, error) {
	if isBlank(raw) {
		return Address{}, invalid("address", raw, AddressConstraints)
	}
	return Address{value: raw}, nil
}

func (a Address) String() string {
	return a.value
}

// Skill is a single skill tag on a volunteer
type Skill struct {
	value string
}

// NewSkill validates raw as a skill tag
func NewSkill(raw string) (Skill, error) {
	if !skillPattern.MatchString(raw) {
		return Skill{}, invalid("skill", raw, SkillConstraints)
	}
	return Skill{value: raw}, nil
}

func (s Skill) String() string {
	return s.value
}

// NewSkills validates every raw value, dropping repeats
func NewSkills(raws []string) ([]Skill, error) {
	return newSet(raws, NewSkill)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// newSet converts raw values with parse, keeping the first occurrence of each value
func newSet[T comparable](raws []string, parse func(string) (T, error)) ([]T, error) {
	values := make([]T, 0, len(raws))
	for _, raw := range raws {
		v, err := parse(raw)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return distinct(values), nil
}

// distinct returns values with repeats removed, preserving first-seen order
func distinct[T comparable](values []T) []T {
	out := make([]T, 0, len(values))
	for _, v := range values {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}

// sameSet reports whether a and b hold the same values, ignoring order
func sameSet[T comparable](a, b []T) bool {
	a, b = distinct(a), distinct(b)
	if len(a) != len(b) {
		return false
	}
	for _, v := range a {
		if !slices.Contains(b, v) {
			return false
		}
	}
	return true
}

// formatSet renders values as [a][b][c]
func formatSet[T interface{ String() string }](values []T) string {
	var sb strings.Builder
	for _, v := range values {
		sb.WriteString("[")
		sb.WriteString(v.String())
		sb.WriteString("]")
	}
	return sb.String()
}
