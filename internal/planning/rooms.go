package planning

import (
	"fmt"
	"strconv"
	"time"

	"github.com/jthmssse/saisonnales-app-v2/internal/domain"
)

// Stay a resident's date-bounded occupancy of a room, projected from the
// resident record. Never persisted; rebuilt whenever the collection changes.
type Stay struct {
	ID         int       `json:"id"`
	ResidentID int       `json:"residentId"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
}

// Room one of the facility's fixed virtual slots, identified by its 1-based
// position. Regenerated on every computation pass, not stored.
type Room struct {
	Number int    `json:"number"`
	Name   string `json:"roomName"`
	Stays  []Stay `json:"stays"`
}

// StayFromResident projects a resident onto the planning grid. Residents with
// an unparseable arrival or departure carry no stay.
func StayFromResident(r domain.Resident) (Stay, bool) {
	start, err := ParseDate(r.Arrival)
	if err != nil {
		return Stay{}, false
	}
	end, err := ParseDate(r.Departure)
	if err != nil {
		return Stay{}, false
	}
	return Stay{ID: r.ID, ResidentID: r.ID, Start: start, End: end}, true
}

// RoomNumber parses a resident's room field into a 1-based slot position.
// Blank, non-numeric and out-of-range values mean "unassigned".
func RoomNumber(room string, total int) (int, bool) {
	n, err := strconv.Atoi(room)
	if err != nil || n < 1 || n > total {
		return 0, false
	}
	return n, true
}

// BuildRooms buckets each resident's stay into the room it occupies. The
// result always has exactly total rooms in ascending order; residents with an
// unassigned room or unparseable dates are silently left off the grid (they
// still exist in the collection). O(residents) per rebuild.
func BuildRooms(residents []domain.Resident, total int) []Room {
	rooms := make([]Room, total)
	for i := range rooms {
		rooms[i] = Room{Number: i + 1, Name: fmt.Sprintf("Chambre %d", i+1), Stays: []Stay{}}
	}
	for _, r := range residents {
		n, ok := RoomNumber(r.Room, total)
		if !ok {
			continue
		}
		stay, ok := StayFromResident(r)
		if !ok {
			continue
		}
		rooms[n-1].Stays = append(rooms[n-1].Stays, stay)
	}
	return rooms
}
