package domain

import "time"

// Client identity lives in the surrounding CRM; the engine only needs the id
// and a display name for listings.
type Client struct {
	ID        int32     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedOn time.Time `json:"created_on"`
}
