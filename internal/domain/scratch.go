package domain

// ScratchItem lives in the scratch collection used for demoing raw
// document operations.
type ScratchItem struct {
	ID   string `json:"id"`
	Key1 string `json:"key1"`
	Key2 string `json:"key2"`
}
