package db

import (
	"database/sql"
	"errors"

	"todo-web/internal/domain/entity"
	"todo-web/pkg/log"
)

// StatementLogger receives every statement and its bound values right before it is sent to the store
type StatementLogger func(statement string, params []any)

// sqlExecutor is satisfied by both *sql.DB and *sql.Tx
type sqlExecutor interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

type SQLListGateway struct {
	DB      *sql.DB
	Dialect Dialect
	Logger  StatementLogger
}

var _ ListGateway = (*SQLListGateway)(nil)

func NewSQLListGateway(db *sql.DB, dialect Dialect) *SQLListGateway {
	return &SQLListGateway{DB: db, Dialect: dialect, Logger: log.Statement}
}

func (gateway *SQLListGateway) FindList(id int64) (*entity.List, error) {
	list := entity.List{}
	err := gateway.queryRow(gateway.DB, `SELECT id, name FROM lists WHERE id = $1`, id).
		Scan(&list.ID, &list.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrListNotFound
	}
	if err != nil {
		return nil, &StorageError{Op: "find list", Err: err}
	}

	todos, err := gateway.findTodos(`
		SELECT id, list_id, name, completed
		FROM todos
		WHERE list_id = $1
		ORDER BY id`, id)
	if err != nil {
		return nil, err
	}

	list.Todos = todos
	return &list, nil
}

// AllLists reads every list and then every todo, and attaches the todos to their lists
func (gateway *SQLListGateway) AllLists() ([]entity.List, error) {
	rows, err := gateway.query(gateway.DB, `SELECT id, name FROM lists ORDER BY id`)
	if err != nil {
		return nil, &StorageError{Op: "all lists", Err: err}
	}
	defer rows.Close()

	lists := make([]entity.List, 0)
	for rows.Next() {
		list := entity.List{Todos: make([]entity.Todo, 0)}
		if err := rows.Scan(&list.ID, &list.Name); err != nil {
			return nil, &StorageError{Op: "all lists", Err: err}
		}
		lists = append(lists, list)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "all lists", Err: err}
	}
	rows.Close()

	todos, err := gateway.findTodos(`
		SELECT id, list_id, name, completed
		FROM todos
		ORDER BY id`)
	if err != nil {
		return nil, err
	}

	index := make(map[int64]int, len(lists))
	for i, list := range lists {
		index[list.ID] = i
	}
	for _, todo := range todos {
		if i, ok := index[todo.ListID]; ok {
			lists[i].Todos = append(lists[i].Todos, todo)
		}
	}
	return lists, nil
}

func (gateway *SQLListGateway) ListNames() ([]string, error) {
	rows, err := gateway.query(gateway.DB, `SELECT name FROM lists ORDER BY id`)
	if err != nil {
		return nil, &StorageError{Op: "list names", Err: err}
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, &StorageError{Op: "list names", Err: err}
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "list names", Err: err}
	}
	return names, nil
}

func (gateway *SQLListGateway) CreateList(name string) (*entity.List, error) {
	list := entity.List{Name: name, Todos: make([]entity.Todo, 0)}
	err := gateway.queryRow(gateway.DB, `INSERT INTO lists (name) VALUES ($1) RETURNING id`, name).
		Scan(&list.ID)
	if err != nil {
		return nil, &StorageError{Op: "create list", Err: err}
	}
	return &list, nil
}

func (gateway *SQLListGateway) RenameList(id int64, name string) error {
	return gateway.exec(gateway.DB, "rename list", `UPDATE lists SET name = $1 WHERE id = $2`, name, id)
}

// DeleteList removes the todos of the list and then the list, inside one transaction
func (gateway *SQLListGateway) DeleteList(id int64) error {
	tx, err := gateway.DB.Begin()
	if err != nil {
		return &StorageError{Op: "delete list", Err: err}
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := gateway.exec(tx, "delete list", `DELETE FROM todos WHERE list_id = $1`, id); err != nil {
		return err
	}
	if err := gateway.exec(tx, "delete list", `DELETE FROM lists WHERE id = $1`, id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return &StorageError{Op: "delete list", Err: err}
	}
	return nil
}

func (gateway *SQLListGateway) CreateTodo(listID int64, name string) (*entity.Todo, error) {
	todo := entity.Todo{ListID: listID, Name: name}
	err := gateway.queryRow(gateway.DB, `
		INSERT INTO todos (name, list_id)
		VALUES ($1, $2)
		RETURNING id`, name, listID).
		Scan(&todo.ID)
	if err != nil {
		return nil, &StorageError{Op: "create todo", Err: err}
	}
	return &todo, nil
}

func (gateway *SQLListGateway) DeleteTodo(listID int64, todoID int64) error {
	return gateway.exec(gateway.DB, "delete todo",
		`DELETE FROM todos WHERE id = $1 AND list_id = $2`, todoID, listID)
}

func (gateway *SQLListGateway) SetTodoCompleted(listID int64, todoID int64, completed bool) error {
	return gateway.exec(gateway.DB, "update todo",
		`UPDATE todos SET completed = $1 WHERE id = $2 AND list_id = $3`, completed, todoID, listID)
}

func (gateway *SQLListGateway) CompleteAllTodos(listID int64) error {
	return gateway.exec(gateway.DB, "complete all todos",
		`UPDATE todos SET completed = $1 WHERE list_id = $2`, true, listID)
}

func (gateway *SQLListGateway) findTodos(query string, args ...any) ([]entity.Todo, error) {
	rows, err := gateway.query(gateway.DB, query, args...)
	if err != nil {
		return nil, &StorageError{Op: "find todos", Err: err}
	}
	defer rows.Close()

	todos := make([]entity.Todo, 0)
	for rows.Next() {
		var todo entity.Todo
		if err := rows.Scan(&todo.ID, &todo.ListID, &todo.Name, &todo.Completed); err != nil {
			return nil, &StorageError{Op: "find todos", Err: err}
		}
		todos = append(todos, todo)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "find todos", Err: err}
	}
	return todos, nil
}

// statement rebinds the query for the dialect and hands it to the statement logger
func (gateway *SQLListGateway) statement(query string, args []any) string {
	statement := gateway.Dialect.Rebind(query)
	if gateway.Logger != nil {
		gateway.Logger(statement, args)
	}
	return statement
}

func (gateway *SQLListGateway) exec(executor sqlExecutor, op string, query string, args ...any) error {
	if _, err := executor.Exec(gateway.statement(query, args), args...); err != nil {
		return &StorageError{Op: op, Err: err}
	}
	return nil
}

func (gateway *SQLListGateway) query(executor sqlExecutor, query string, args ...any) (*sql.Rows, error) {
	return executor.Query(gateway.statement(query, args), args...)
}

func (gateway *SQLListGateway) queryRow(executor sqlExecutor, query string, args ...any) *sql.Row {
	return executor.QueryRow(gateway.statement(query, args), args...)
}
