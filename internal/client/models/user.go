package models

import "time"

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthPayload is the body of a 2xx login or registration response. Error and
// Message are only set when the server refused without a non-2xx status.
type AuthPayload struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	User    *User  `json:"user,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// MePayload is the body of the "who am I" endpoint.
type MePayload struct {
	Success bool  `json:"success"`
	User    *User `json:"user"`
}

type Profile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Bio       string    `json:"bio,omitempty"`
	Interests []string  `json:"interests,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

type ProfileInput struct {
	Name      string   `json:"name,omitempty"`
	Bio       string   `json:"bio,omitempty"`
	Interests []string `json:"interests,omitempty"`
}

type PasswordChange struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// Dashboard aggregates the counters shown on the landing view.
type Dashboard struct {
	TotalGoals     int    `json:"totalGoals"`
	ActiveGoals    int    `json:"activeGoals"`
	CompletedGoals int    `json:"completedGoals"`
	TotalTasks     int    `json:"totalTasks"`
	CompletedTasks int    `json:"completedTasks"`
	UpcomingTasks  []Task `json:"upcomingTasks"`
}
