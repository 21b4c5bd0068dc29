package domain

import "time"

// User models an account holder. Password always contains the bcrypt hash,
// never the plaintext; the json tag keeps it out of every response.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Name      string    `json:"name"`
	Firstname string    `json:"firstname"`
	BirthDate time.Time `json:"birthDate"`
	City      string    `json:"city"`
	Zipcode   string    `json:"zipcode"`
	RoleID    string    `json:"-"`
	Role      *Role     `json:"role,omitempty"`
}
