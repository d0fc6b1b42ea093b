package model

import (
	"fmt"
	"slices"
)

// Volunteer represents a person who can be assigned to events
// Volunteers are immutable: edits build a new Volunteer
type Volunteer struct {
	name    Name
	phone   Phone
	email   Email
	address Address
	skills  []Skill
}

// NewVolunteer builds a volunteer from validated fields
func NewVolunteer(name Name, phone Phone, email Email, address Address, skills []Skill) Volunteer {
	return Volunteer{
		name:    name,
		phone:   phone,
		email:   email,
		address: address,
		skills:  distinct(skills),
	}
}

func (v Volunteer) Name() Name       { return v.name }
func (v Volunteer) Phone() Phone     { return v.phone }
func (v Volunteer) Email() Email     { return v.email }
func (v Volunteer) Address() Address { return v.address }

// Skills returns a copy of the volunteer's skills in insertion order
func (v Volunteer) Skills() []Skill {
	return slices.Clone(v.skills)
}

// IsSame reports whether both volunteers have the same name
// This is the identity used to prevent duplicates, and is case and whitespace sensitive
func (v Volunteer) IsSame(other Volunteer) bool {
	return v.name == other.name
}

// Equal reports whether every field matches; skill order is ignored
func (v Volunteer) Equal(other Volunteer) bool {
	return v.name == other.name &&
		v.phone == other.phone &&
		v.email == other.email &&
		v.address == other.address &&
		sameSet(v.skills, other.skills)
}

func (v Volunteer) String() string {
	return fmt.Sprintf("Volunteer{name=%s, phone=%s, email=%s, address=%s, skills=%s}",
		v.name, v.phone, v.email, v.address, formatSet(v.skills))
}
