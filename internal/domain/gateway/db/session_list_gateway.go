package db

import (
	"slices"

	"todo-web/internal/domain/entity"
)

// SessionLists is the list storage kept inside a single browser session
type SessionLists struct {
	Lists []SessionList `json:"lists,omitempty"`
}

type SessionList struct {
	Name  string        `json:"name"`
	Todos []SessionTodo `json:"todos,omitempty"`
}

type SessionTodo struct {
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// Clone returns a deep copy
func (s SessionLists) Clone() SessionLists {
	if s.Lists == nil {
		return SessionLists{}
	}
	lists := make([]SessionList, len(s.Lists))
	for i, list := range s.Lists {
		lists[i] = SessionList{Name: list.Name, Todos: slices.Clone(list.Todos)}
	}
	return SessionLists{Lists: lists}
}

// SessionListGateway stores lists in the session state it was built with.
// Identifiers are positions: deleting a list or a todo shifts the ids of the ones after it.
type SessionListGateway struct {
	state *SessionLists
}

var _ ListGateway = (*SessionListGateway)(nil)

func NewSessionListGateway(state *SessionLists) *SessionListGateway {
	return &SessionListGateway{state: state}
}

func (gateway *SessionListGateway) FindList(id int64) (*entity.List, error) {
	i, ok := gateway.listIndex(id)
	if !ok {
		return nil, ErrListNotFound
	}
	list := gateway.toEntity(i)
	return &list, nil
}

func (gateway *SessionListGateway) AllLists() ([]entity.List, error) {
	lists := make([]entity.List, len(gateway.state.Lists))
	for i := range gateway.state.Lists {
		lists[i] = gateway.toEntity(i)
	}
	return lists, nil
}

func (gateway *SessionListGateway) ListNames() ([]string, error) {
	names := make([]string, len(gateway.state.Lists))
	for i, list := range gateway.state.Lists {
		names[i] = list.Name
	}
	return names, nil
}

func (gateway *SessionListGateway) CreateList(name string) (*entity.List, error) {
	gateway.state.Lists = append(gateway.state.Lists, SessionList{Name: name})
	list := gateway.toEntity(len(gateway.state.Lists) - 1)
	return &list, nil
}

func (gateway *SessionListGateway) RenameList(id int64, name string) error {
	if i, ok := gateway.listIndex(id); ok {
		gateway.state.Lists[i].Name = name
	}
	return nil
}

func (gateway *SessionListGateway) DeleteList(id int64) error {
	if i, ok := gateway.listIndex(id); ok {
		gateway.state.Lists = slices.Delete(gateway.state.Lists, i, i+1)
	}
	return nil
}

func (gateway *SessionListGateway) CreateTodo(listID int64, name string) (*entity.Todo, error) {
	i, ok := gateway.listIndex(listID)
	if !ok {
		return nil, ErrListNotFound
	}

	list := &gateway.state.Lists[i]
	list.Todos = append(list.Todos, SessionTodo{Name: name})
	return &entity.Todo{ID: int64(len(list.Todos) - 1), ListID: listID, Name: name}, nil
}

func (gateway *SessionListGateway) DeleteTodo(listID int64, todoID int64) error {
	if list, j, ok := gateway.todoIndex(listID, todoID); ok {
		list.Todos = slices.Delete(list.Todos, j, j+1)
	}
	return nil
}

func (gateway *SessionListGateway) SetTodoCompleted(listID int64, todoID int64, completed bool) error {
	if list, j, ok := gateway.todoIndex(listID, todoID); ok {
		list.Todos[j].Completed = completed
	}
	return nil
}

func (gateway *SessionListGateway) CompleteAllTodos(listID int64) error {
	i, ok := gateway.listIndex(listID)
	if !ok {
		return nil
	}
	for j := range gateway.state.Lists[i].Todos {
		gateway.state.Lists[i].Todos[j].Completed = true
	}
	return nil
}

func (gateway *SessionListGateway) listIndex(id int64) (int, bool) {
	if id < 0 || id >= int64(len(gateway.state.Lists)) {
		return 0, false
	}
	return int(id), true
}

func (gateway *SessionListGateway) todoIndex(listID int64, todoID int64) (*SessionList, int, bool) {
	i, ok := gateway.listIndex(listID)
	if !ok {
		return nil, 0, false
	}
	list := &gateway.state.Lists[i]
	if todoID < 0 || todoID >= int64(len(list.Todos)) {
		return nil, 0, false
	}
	return list, int(todoID), true
}

func (gateway *SessionListGateway) toEntity(i int) entity.List {
	stored := gateway.state.Lists[i]
	list := entity.List{ID: int64(i), Name: stored.Name, Todos: make([]entity.Todo, len(stored.Todos))}
	for j, todo := range stored.Todos {
		list.Todos[j] = entity.Todo{ID: int64(j), ListID: int64(i), Name: todo.Name, Completed: todo.Completed}
	}
	return list
}
