package models

// User defines the user model based on the 'users' table.
// NetID is expected unique by convention but not enforced by the schema.
type User struct {
	ID    int64  `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	NetID string `json:"netid" db:"netid"`
}
