package model

import "time"

// Purchase is a purchase record kept alongside the chat history.
type Purchase struct {
	ID         string    `json:"id"`
	Product    string    `json:"product"`
	Price      string    `json:"price"`
	Date       string    `json:"date"`
	Source     string    `json:"source"`
	RecordedAt time.Time `json:"recorded_at"`
}
