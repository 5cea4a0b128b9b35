package models

// RoleType defines the credential role type
type RoleType string

const (
	RoleParticipant RoleType = "PARTICIPANT"
	RoleManager     RoleType = "MANAGER"
	RoleAdmin       RoleType = "ADMIN"
)

// Term represents a semester term
type Term string

// Term constants
const (
	TermFall   Term = "Fall"
	TermWinter Term = "Winter"
	TermSpring Term = "Spring"
	TermSummer Term = "Summer"
)

// Rank returns the within-year ordering of a term, Fall newest.
// Unrecognized terms rank 0 so they sort below every known term.
func (t Term) Rank() int {
	switch t {
	case TermFall:
		return 4
	case TermWinter:
		return 3
	case TermSpring:
		return 2
	case TermSummer:
		return 1
	default:
		return 0
	}
}

// IsValid reports whether the term is one of the known constants.
func (t Term) IsValid() bool {
	return t.Rank() > 0
}
