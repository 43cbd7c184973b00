package models

// Order is the record kept for the most recent checkout. Only one order is
// retained; placing a new one overwrites it. The ID is a display token, not
// a uniqueness guarantee.
type Order struct {
	ID        string `json:"id"`
	Total     int    `json:"total"`
	Timestamp int64  `json:"timestamp"` // unix milliseconds
}
