package domain

import (
	"strings"
	"time"
	"unicode"
)

const dateLayout = "2006-01-02"

// Resident stay status. Derived from the stay dates, never stored as truth:
// handlers recompute it on read so it cannot go stale as time passes.
const (
	StatusActive   = "active"
	StatusUpcoming = "upcoming"
	StatusEnded    = "ended"
)

// Document an attachment on a resident file.
type Document struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"` // "pdf" | "image" | "word"
	Size    string `json:"size"` // display string, e.g. "2.3 MB"
	AddedAt string `json:"addedAt"`
}

// Resident a person currently or prospectively staying at the residence.
// Dates are calendar dates stored as ISO "YYYY-MM-DD" strings; the planning
// package parses them to UTC midnight for all interval math.
type Resident struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Room      string `json:"room"` // expected to parse as 1..TotalRooms, may be blank
	GIR       string `json:"gir"`  // care-dependency code "GIR n", n in 1..6
	Status    string `json:"status"`
	Arrival   string `json:"arrival"`
	Departure string `json:"departure"`
	Phone     string `json:"phone"`

	// Administrative flags
	DocsComplete bool   `json:"docsComplete"`
	QuoteSent    bool   `json:"quoteSent"`
	ImageRights  string `json:"imageRights"`

	// Optional contact details
	Gender                string `json:"gender,omitempty"`
	BirthDate             string `json:"birthDate,omitempty"`
	Email                 string `json:"email,omitempty"`
	Address               string `json:"address,omitempty"`
	FamilyContactName     string `json:"familyContactName,omitempty"`
	FamilyContactRelation string `json:"familyContactRelation,omitempty"`
	FamilyContactPhone    string `json:"familyContactPhone,omitempty"`
	FamilyContactEmail    string `json:"familyContactEmail,omitempty"`

	// Care details
	Allergies      string `json:"allergies,omitempty"`
	MedicalHistory string `json:"medicalHistory,omitempty"`
	TreatingDoctor string `json:"treatingDoctor,omitempty"`
	Mobility       string `json:"mobility,omitempty"`
	DietaryNeeds   string `json:"dietaryNeeds,omitempty"`
	SocialHabits   string `json:"socialHabits,omitempty"`
	Notes          string `json:"notes,omitempty"`

	Documents []Document `json:"documents,omitempty"`
}

// NextID returns the id for a new resident: max existing id + 1, or 1 when
// the collection is empty.
func NextID(residents []Resident) int {
	max := 0
	for _, r := range residents {
		if r.ID > max {
			max = r.ID
		}
	}
	return max + 1
}

// DeriveStatus computes the stay status relative to today (calendar-date
// comparison, time of day ignored). Unparseable dates fail open to active so
// a malformed record still shows up in the resident list.
func DeriveStatus(arrival, departure string, today time.Time) string {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if a, err := time.Parse(dateLayout, arrival); err == nil && day.Before(a) {
		return StatusUpcoming
	}
	if d, err := time.Parse(dateLayout, departure); err == nil && d.Before(day) {
		return StatusEnded
	}
	return StatusActive
}

// GIRValue extracts the numeric care level from a "GIR n" code.
// Values outside 1..6 and codes with no digits are rejected; callers exclude
// them from aggregation rather than failing.
func GIRValue(gir string) (int, bool) {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, gir)
	if digits == "" {
		return 0, false
	}
	n := 0
	for _, r := range digits {
		n = n*10 + int(r-'0')
		if n > 6 {
			return 0, false
		}
	}
	if n < 1 {
		return 0, false
	}
	return n, true
}
