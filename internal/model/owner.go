package model

import "time"

// Owner represents a portfolio owner. Properties belong to exactly one owner;
// metrics can be scoped to an owner through the session context.
type Owner struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}
