package planning

import (
	"strconv"

	"github.com/jthmssse/saisonnales-app-v2/internal/domain"
)

// AvailableRooms returns the room identifiers free for a prospective
// [arrival, departure) range, in ascending room-number order.
//
// Policy on degenerate input:
//   - both dates absent: the form is still exploratory, return every room;
//   - dates present but unparseable or inverted (arrival >= departure): fail
//     safe and return no rooms, so an invalid booking can never be placed.
//
// The overlap test is strict, so a departure on another resident's arrival
// day leaves the room available (same-day checkout/checkin handoff).
// excludeID removes the resident being edited from consideration; pass 0 when
// creating a new reservation.
func AvailableRooms(arrival, departure string, residents []domain.Resident, total int, excludeID int) []string {
	all := make([]string, 0, total)
	for i := 1; i <= total; i++ {
		all = append(all, strconv.Itoa(i))
	}

	if arrival == "" || departure == "" {
		return all
	}

	start, err := ParseDate(arrival)
	if err != nil {
		return []string{}
	}
	end, err := ParseDate(departure)
	if err != nil {
		return []string{}
	}
	if !start.Before(end) {
		return []string{}
	}

	occupied := make(map[string]bool)
	for _, r := range residents {
		if r.ID == excludeID || r.Room == "" {
			continue
		}
		rStart, err := ParseDate(r.Arrival)
		if err != nil {
			continue
		}
		rEnd, err := ParseDate(r.Departure)
		if err != nil {
			continue
		}
		if RangesOverlap(start, end, rStart, rEnd) {
			occupied[r.Room] = true
		}
	}

	available := make([]string, 0, total)
	for _, room := range all {
		if !occupied[room] {
			available = append(available, room)
		}
	}
	return available
}
