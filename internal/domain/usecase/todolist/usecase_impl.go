package todolist

import (
	"strings"

	"todo-web/internal/domain/entity"
	"todo-web/internal/domain/gateway/db"
	"todo-web/internal/domain/validation"
)

type todoListUseCase struct {
	gateway db.ListGateway
}

func NewTodoListUseCase(gateway db.ListGateway) UseCase {
	return &todoListUseCase{
		gateway: gateway,
	}
}

func (uc *todoListUseCase) FindList(id int64) (*entity.List, error) {
	return uc.gateway.FindList(id)
}

func (uc *todoListUseCase) AllLists() ([]entity.List, error) {
	return uc.gateway.AllLists()
}

func (uc *todoListUseCase) CreateList(name string) (*entity.List, error) {
	name = strings.TrimSpace(name)

	existing, err := uc.gateway.ListNames()
	if err != nil {
		return nil, err
	}
	if err := validation.ValidateListName(name, existing); err != nil {
		return nil, err
	}

	return uc.gateway.CreateList(name)
}

// RenameList validates the new name against every list, the renamed one included
func (uc *todoListUseCase) RenameList(id int64, name string) error {
	name = strings.TrimSpace(name)

	if _, err := uc.gateway.FindList(id); err != nil {
		return err
	}

	existing, err := uc.gateway.ListNames()
	if err != nil {
		return err
	}
	if err := validation.ValidateListName(name, existing); err != nil {
		return err
	}

	return uc.gateway.RenameList(id, name)
}

func (uc *todoListUseCase) DeleteList(id int64) error {
	return uc.gateway.DeleteList(id)
}

func (uc *todoListUseCase) CreateTodo(listID int64, name string) (*entity.Todo, error) {
	name = strings.TrimSpace(name)

	if _, err := uc.gateway.FindList(listID); err != nil {
		return nil, err
	}
	if err := validation.ValidateTodoName(name); err != nil {
		return nil, err
	}

	return uc.gateway.CreateTodo(listID, name)
}

func (uc *todoListUseCase) DeleteTodo(listID int64, todoID int64) error {
	return uc.gateway.DeleteTodo(listID, todoID)
}

func (uc *todoListUseCase) SetTodoCompleted(listID int64, todoID int64, completed bool) error {
	return uc.gateway.SetTodoCompleted(listID, todoID, completed)
}

func (uc *todoListUseCase) CompleteAllTodos(listID int64) error {
	return uc.gateway.CompleteAllTodos(listID)
}
