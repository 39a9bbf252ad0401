package domain

// Communication an automated message template tied to a reservation milestone
// (confirmation, J-7 reminder, ...). Delivery itself is out of scope; the
// service only manages the template catalog.
type Communication struct {
	ID          int    `json:"id"`
	Type        string `json:"type"`
	Status      string `json:"status"` // trigger label, e.g. "J-7"
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

// NextCommunicationID mirrors NextID for the template catalog.
func NextCommunicationID(comms []Communication) int {
	max := 0
	for _, c := range comms {
		if c.ID > max {
			max = c.ID
		}
	}
	return max + 1
}
