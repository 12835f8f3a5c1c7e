package http

import "github.com/wramaba/felipe/internal/felipe/domain"

// UserProfile is the user shape returned by the auth endpoints. The password
// hash never leaves the service layer.
type UserProfile struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Position string `json:"position"`
	Fiscalia string `json:"fiscalia"`
}

func profileOf(u domain.User) UserProfile {
	return UserProfile{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Position: u.Position,
		Fiscalia: u.Fiscalia,
	}
}

// AuthResponse is returned by both register and login.
type AuthResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        UserProfile `json:"user"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Position string `json:"position"`
	Fiscalia string `json:"fiscalia"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateCaseRequest struct {
	Title       string `json:"title"`
	Defendant   string `json:"defendant"`
	CrimeType   string `json:"crime_type"`
	Priority    string `json:"priority"`
	Description string `json:"description"`
}

type ChatRequest struct {
	Query   string         `json:"query"`
	Context map[string]any `json:"context"`
	Model   string         `json:"model"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthChecks struct {
	Database string `json:"database"`
	Cache    string `json:"cache,omitempty"`
}

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
