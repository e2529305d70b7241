package api

import "time"

// User is the public view of an account. Credentials never leave the server.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Admin     bool      `json:"admin"`
	CreatedAt time.Time `json:"created_at"`
}

type SignupRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// SignupResponse signs the new user in right away.
type SignupResponse struct {
	User          *User  `json:"user"`
	RememberToken string `json:"remember_token"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User          *User  `json:"user"`
	RememberToken string `json:"remember_token"`
}

type WhoamiRequest struct{}

type WhoamiResponse struct {
	User *User `json:"user"`
}

type ShowRequest struct {
	ID string `json:"id"`
}

type ShowResponse struct {
	User *User `json:"user"`
}

type ChangePasswordRequest struct {
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// ChangePasswordResponse carries a replacement token: the old one stops
// working once the salt rotates.
type ChangePasswordResponse struct {
	RememberToken string `json:"remember_token"`
}

type PingRequest struct{}

type PingResponse struct {
	Status string `json:"status"`
}
