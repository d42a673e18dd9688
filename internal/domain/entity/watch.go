package entity

// PriceWatch is one saved price-tracking subscription. Dates keep the user
// "ДД.ММ" form so re-queries resolve the year the same way the original
// search did.
type PriceWatch struct {
	UserID       int64  `json:"user_id"`
	Origin       string `json:"origin"`
	Dest         string `json:"dest"`
	DepartDate   string `json:"depart_date"`
	ReturnDate   string `json:"return_date,omitempty"`
	CurrentPrice int    `json:"current_price"`
	Passengers   string `json:"passengers"`
	// Threshold is the minimum price movement (rubles) worth notifying
	// about; 0 means any movement above the global jitter floor.
	Threshold    int   `json:"threshold"`
	CreatedAt    int64 `json:"created_at"`
	LastNotified int64 `json:"last_notified"`
}
