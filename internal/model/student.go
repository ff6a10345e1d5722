package model

// Student is one row of the invitee roster.  The roster is read-only
// from the reservation flow's point of view; rows are maintained by
// the event administrators.
//
// Fields:
//
//	LastName        – family name as stored, matched case-sensitively.
//	FirstName       – given name as stored, matched case-sensitively.
//	TicketAllotment – number of seats this student may claim, > 0.
//	AccessCode      – opaque short code the student must present.  The
//	                  backing store may coerce it to a numeric form
//	                  ("1234" read back as "1234.0"); comparison goes
//	                  through roster normalization, never raw equality.
type Student struct {
	LastName        string // students.last_name
	FirstName       string // students.first_name
	TicketAllotment int    // students.ticket_allotment
	AccessCode      string // students.access_code
}

// FullName joins first and last name with a single space.  This is
// the key under which a student appears on a guest list.
func (s Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
