package todolist

import (
	"todo-web/internal/domain/entity"
)

type UseCase interface {
	FindList(id int64) (*entity.List, error)
	AllLists() ([]entity.List, error)
	CreateList(name string) (*entity.List, error)
	RenameList(id int64, name string) error
	DeleteList(id int64) error
	CreateTodo(listID int64, name string) (*entity.Todo, error)
	DeleteTodo(listID int64, todoID int64) error
	SetTodoCompleted(listID int64, todoID int64, completed bool) error
	CompleteAllTodos(listID int64) error
}
