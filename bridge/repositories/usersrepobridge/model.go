package usersrepobridge

import "fmt"

// Auth action names dispatched on the action body field.
const (
	ActionRegister      = "register"
	ActionLogin         = "login"
	ActionUpdateProfile = "update_profile"
)

// AuthInput is the single envelope for all account operations. Which fields
// matter depends on the action, so validation happens per action after
// dispatch.
type AuthInput struct {
	Action   string `json:"action"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	UserID   string `json:"userId"`
}

func (a AuthInput) validateRegister() error {
	if a.Username == "" {
		return fmt.Errorf("username is required")
	}
	if a.Email == "" {
		return fmt.Errorf("email is required")
	}
	if a.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

func (a AuthInput) validateLogin() error {
	if a.Email == "" {
		return fmt.Errorf("email is required")
	}
	if a.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

func (a AuthInput) validateUpdateProfile() error {
	if a.UserID == "" {
		return fmt.Errorf("userId is required")
	}
	if a.Username == "" {
		return fmt.Errorf("username is required")
	}
	return nil
}

// LoginResult is the identity returned on a successful login. No token is
// issued.
type LoginResult struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}
