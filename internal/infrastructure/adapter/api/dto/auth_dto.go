package dto

// CredentialsRequest is the body of the register and login endpoints
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterResponse confirms a new account
type RegisterResponse struct {
	Username string `json:"username"`
}

// LoginResponse carries the session token issued on a successful login
type LoginResponse struct {
	Token     string `json:"token"`
	Username  string `json:"username"`
	ExpiresIn int64  `json:"expiresIn"` // seconds
}
