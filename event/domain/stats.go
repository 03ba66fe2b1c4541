package domain

// Stats are the aggregate rendezvous registration figures.
type Stats struct {
	TotalRegistrations int            `json:"totalRegistrations"`
	AttendeeCount      int            `json:"attendeeCount"`
	CheckedInCount     int            `json:"checkedInCount"`
	Revenue            float64        `json:"revenue"`
	ByPaymentStatus    map[string]int `json:"byPaymentStatus"`
	ByOrganizationType map[string]int `json:"byOrganizationType,omitempty"`
}
