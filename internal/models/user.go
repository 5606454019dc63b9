// Package models defines the records the desk stores and the forms and
// filters that operate on them. JSON field names match the stored record
// shape, so existing data files load unchanged.
package models

import "time"

// User is a registered account. Email is the login key and is compared
// exactly, without case folding.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
