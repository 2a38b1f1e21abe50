package db

import (
	"todo-web/internal/domain/entity"
)

// ListGateway is the persistence contract for lists and their todos.
// Identifiers are opaque to callers: they come from the gateway and are only ever handed back to it.
type ListGateway interface {
	FindList(id int64) (*entity.List, error)
	AllLists() ([]entity.List, error)
	ListNames() ([]string, error)

	CreateList(name string) (*entity.List, error)
	RenameList(id int64, name string) error
	DeleteList(id int64) error

	CreateTodo(listID int64, name string) (*entity.Todo, error)
	DeleteTodo(listID int64, todoID int64) error
	SetTodoCompleted(listID int64, todoID int64, completed bool) error
	CompleteAllTodos(listID int64) error
}
