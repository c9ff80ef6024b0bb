package domain

// BookedBy is the occupancy marker embedded in an arena document.
// An arena with a nil BookedBy is available.
type BookedBy struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	BookingID string `json:"bookingId"`
}

type Arena struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Address     string    `json:"address"`
	IsPublic    bool      `json:"isPublic"`
	Description string    `json:"description"`
	Capacity    int       `json:"capacity"`
	Sport       string    `json:"sport"`
	Image       string    `json:"image"`
	Rate        float64   `json:"rate"`
	Rating      float64   `json:"rating"`
	IsBooked    *BookedBy `json:"isBooked"`
}

func (a *Arena) Available() bool {
	return a.IsBooked == nil
}

type CreateArenaInput struct {
	Name        string
	Location    string
	Address     string
	IsPublic    *bool
	Description string
	Capacity    int
	Sport       string
	Image       string
	Rate        float64
	Rating      float64
}
