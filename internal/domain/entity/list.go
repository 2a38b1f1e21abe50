package entity

// List is a named, ordered collection of todos
type List struct {
	ID    int64  `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"type:text;not null"`
	Todos []Todo `json:"todos" gorm:"foreignKey:ListID"`
}

// IsComplete is true when the list has at least one todo and every todo is completed.
// An empty list is never complete.
func (l List) IsComplete() bool {
	if len(l.Todos) == 0 {
		return false
	}
	for _, todo := range l.Todos {
		if !todo.Completed {
			return false
		}
	}
	return true
}

// CompletedCount returns the number of completed todos
func (l List) CompletedCount() int {
	count := 0
	for _, todo := range l.Todos {
		if todo.Completed {
			count++
		}
	}
	return count
}

// Done reports whether the list is complete
func (l List) Done() bool {
	return l.IsComplete()
}
