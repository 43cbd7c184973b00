package models

// User is an account in the locally persisted user directory.
//
// Passwords are stored and compared in plain text: this is a demo shop with
// no security model, and the stored records are readable by design.
type User struct {
	Name     string `json:"name"`
	Email    string `json:"email"` // lowercase-normalized, unique in the directory
	Password string `json:"password"`
}
