package dto

type CreateHabitRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Color string `json:"color" binding:"omitempty,habitcolor"`
}

type UpdateHabitRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Color string `json:"color" binding:"omitempty,habitcolor"`
}
