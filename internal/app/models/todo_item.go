package models

// ToDoItem is a standalone action item, created directly or extracted from a
// work log by the assistant.
type ToDoItem struct {
	ID          int64  `db:"id" json:"id"`
	Content     string `db:"content" json:"content"`
	IsCompleted bool   `db:"is_completed" json:"is_completed"`
}
