package models

// Admin defines the admin model based on the 'admin' table
type Admin struct {
	ID       int64  `json:"id" db:"id"`
	Email    string `json:"email" db:"email"`
	Password string `json:"-" db:"password"` // hashed, excluded from JSON
}
