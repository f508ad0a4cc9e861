package model

// Tour is an entry of the static tour catalog.
type Tour struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Duration   string   `json:"duration"`
	Price      string   `json:"price"`
	Short      string   `json:"short"`
	Image      string   `json:"image,omitempty"`
	Highlights []string `json:"highlights"`
}
