package usersrepo

// User is the stored shape of an account. The password column holds a bcrypt
// hash, never the plain text.
type User struct {
	ID           string `db:"id"`
	Username     string `db:"username"`
	Email        string `db:"email"`
	PasswordHash string `db:"password"`
}

// CreateUser contains the fields for registering an account.
type CreateUser struct {
	Username     string
	Email        string
	PasswordHash string
}

// UpdateProfile replaces the username and optionally the password hash. A nil
// hash leaves the stored hash exactly as it is.
type UpdateProfile struct {
	Username     string
	PasswordHash *string
}
