package commands

// Prefix marks the start of a field value in command text, e.g. "n:" in "n:Alice"
type Prefix string

const (
	PrefixName        Prefix = "n:"
	PrefixPhone       Prefix = "p:"
	PrefixEmail       Prefix = "e:"
	PrefixAddress     Prefix = "a:"
	PrefixSkill       Prefix = "s:"
	PrefixRole        Prefix = "r:"
	PrefixDateAndTime Prefix = "dt:"
	PrefixLocation    Prefix = "l:"
	PrefixDescription Prefix = "dsc:"
	PrefixMaterial    Prefix = "m:"
	PrefixBudget      Prefix = "b:"
	PrefixRecurrence  Prefix = "rr:"
)

// Command words
const (
	VolunteerCreateWord = "vcreate"
	VolunteerEditWord   = "vedit"
	VolunteerDeleteWord = "vdelete"
	VolunteerListWord   = "vlist"
	VolunteerFindWord   = "vfind"
	VolunteerClearWord  = "vclear"

	EventCreateWord = "ecreate"
	EventEditWord   = "eedit"
	EventDeleteWord = "edelete"
	EventListWord   = "elist"
	EventFindWord   = "efind"
	EventClearWord  = "eclear"

	HelpWord = "help"
	ExitWord = "exit"
)

func (p Prefix) String() string {
	return string(p)
}
