package dto

// CreateToDoItemRequest represents todo creation data
type CreateToDoItemRequest struct {
	Content     string `json:"content" binding:"required"`
	IsCompleted bool   `json:"is_completed"`
}

// UpdateToDoItemRequest represents a partial todo update. Nil fields are
// left unchanged; this keeps "set to false/empty" distinguishable from
// "not supplied".
type UpdateToDoItemRequest struct {
	Content     *string `json:"content"`
	IsCompleted *bool   `json:"is_completed"`
}
