package model

// EditVolunteerDescriptor holds the fields to change on a volunteer
// A nil field keeps the existing value
type EditVolunteerDescriptor struct {
	Name    *Name
	Phone   *Phone
	Email   *Email
	Address *Address
	Skills  *[]Skill
}

// IsAnyFieldEdited reports whether at least one field is set
func (d EditVolunteerDescriptor) IsAnyFieldEdited() bool {
	return d.Name != nil || d.Phone != nil || d.Email != nil || d.Address != nil || d.Skills != nil
}

// Apply returns a new volunteer with the set fields taken from the descriptor
func (d EditVolunteerDescriptor) Apply(v Volunteer) Volunteer {
	name, phone, email, address, skills := v.name, v.phone, v.email, v.address, v.skills
	if d.Name != nil {
		name = *d.Name
	}
	if d.Phone != nil {
		phone = *d.Phone
	}
	if d.Email != nil {
		email = *d.Email
	}
	if d.Address != nil {
		address = *d.Address
	}
	if d.Skills != nil {
		skills = *d.Skills
	}
	return NewVolunteer(name, phone, email, address, skills)
}

// EditEventDescriptor holds the fields to change on an event
// A nil field keeps the existing value
type EditEventDescriptor struct {
	Name        *Name
	Roles       *[]Role
	DateAndTime *DateAndTime
	Location    *Location
	Description *Description
	Materials   *[]Material
	Budget      *Budget
	Recurrence  *Recurrence
}

// IsAnyFieldEdited reports whether at least one field is set
func (d EditEventDescriptor) IsAnyFieldEdited() bool {
	return d.Name != nil || d.Roles != nil || d.DateAndTime != nil || d.Location != nil ||
		d.Description != nil || d.Materials != nil || d.Budget != nil || d.Recurrence != nil
}

// Apply returns a new event with the set fields taken from the descriptor
func (d EditEventDescriptor) Apply(e Event) Event {
	edited := e
	if d.Name != nil {
		edited.name = *d.Name
	}
	if d.Roles != nil {
		edited.roles = distinct(*d.Roles)
	}
	if d.DateAndTime != nil {
		edited.dateAndTime = *d.DateAndTime
	}
	if d.Location != nil {
		edited.location = *d.Location
	}
	if d.Description != nil {
		edited.description = *d.Description
	}
	if d.Materials != nil {
		edited.materials = distinct(*d.Materials)
	}
	if d.Budget != nil {
		b := *d.Budget
		edited.budget = &b
	}
	if d.Recurrence != nil {
		r := *d.Recurrence
		edited.recurrence = &r
	}
	return edited
}
