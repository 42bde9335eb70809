package dto

import "time"

type CreateTodoRequest struct {
	Title string `json:"title" binding:"required,min=1,max=500"`
}

// UpdateTodoRequest is a partial patch. nil = leave unchanged.
// At least one field must be present; the service rejects an empty patch
// before any store call.
type UpdateTodoRequest struct {
	Title     *string `json:"title" binding:"omitempty,min=1,max=500"`
	Completed *bool   `json:"completed"`
}

type TodoResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

type DeleteTodoResponse struct {
	Message     string       `json:"message"`
	DeletedTodo TodoResponse `json:"deletedTodo"`
}

type SummarizeResponse struct {
	Message   string `json:"message"`
	Summary   string `json:"summary"`
	SlackSent bool   `json:"slackSent"`
}
