package domain

import "time"

// Agency is the authenticated caller scope. Bookings are partitioned by
// agency id; an agency can only see and cancel its own bookings.
type Agency struct {
	ID        string
	Name      string
	APIKey    string
	IsActive  bool
	CreatedAt time.Time
}
