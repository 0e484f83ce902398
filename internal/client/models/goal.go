package models

import "time"

// Goal statuses as reported by the API.
const (
	GoalStatusActive    = "active"
	GoalStatusCompleted = "completed"
	GoalStatusArchived  = "archived"
)

type Goal struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category,omitempty"`
	Status      string     `json:"status,omitempty"`
	Progress    int        `json:"progress"`
	TargetDate  *time.Time `json:"targetDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt,omitempty"`
	UpdatedAt   time.Time  `json:"updatedAt,omitempty"`
}

type GoalInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category,omitempty"`
	Status      string     `json:"status,omitempty"`
	TargetDate  *time.Time `json:"targetDate,omitempty"`
}

type ProgressUpdate struct {
	Progress int `json:"progress"`
}

type Task struct {
	ID          string     `json:"id"`
	GoalID      string     `json:"goalId"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    string     `json:"priority,omitempty"`
	Completed   bool       `json:"completed"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt,omitempty"`
}

type TaskInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    string     `json:"priority,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
}

// Recommendation is an activity suggested by the server. Ordering is the
// server's; the client never re-ranks.
type Recommendation struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description,omitempty"`
	Category        string   `json:"category,omitempty"`
	Difficulty      string   `json:"difficulty,omitempty"`
	DurationMinutes int      `json:"durationMinutes,omitempty"`
	URL             string   `json:"url,omitempty"`
	Tags            []string `json:"tags,omitempty"`
}
