package repositories

import (
	"github.com/jmoiron/sqlx"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository *StudentRepository
	WorkLogRepository *WorkLogRepository
	TodoRepository    *TodoRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		StudentRepository: NewStudentRepository(db),
		WorkLogRepository: NewWorkLogRepository(db),
		TodoRepository:    NewTodoRepository(db),
	}
}
