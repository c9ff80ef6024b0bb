package dto

// Field presence is checked by the services, which own the validation
// rules; required-field failures here must produce the documented
// endpoint messages, not binding errors.

type CreateArenaRequest struct {
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	Address     string  `json:"address"`
	IsPublic    *bool   `json:"isPublic"`
	Description string  `json:"description"`
	Capacity    int     `json:"capacity"`
	Sport       string  `json:"sport"`
	Image       string  `json:"image"`
	Rate        float64 `json:"rate"`
	Rating      float64 `json:"rating"`
}

type CreateBookingRequest struct {
	FirstName   string         `json:"firstName"`
	LastName    string         `json:"lastName"`
	PhoneNumber string         `json:"phoneNumber"`
	Email       string         `json:"email"`
	Date        string         `json:"date"`
	Time        string         `json:"time"`
	IsRepeat    *bool          `json:"isRepeat"`
	PaymentInfo map[string]any `json:"paymentInfo"`
	ArenaID     string         `json:"arenaId"`
}

type ScratchItemRequest struct {
	Key1 string `json:"key1"`
	Key2 string `json:"key2"`
}
