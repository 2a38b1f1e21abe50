package entity

// Todo is a single task owned by exactly one List
type Todo struct {
	ID        int64  `json:"id" gorm:"primaryKey"`
	ListID    int64  `json:"-" gorm:"not null"`
	Name      string `json:"name" gorm:"type:text;not null"`
	Completed bool   `json:"completed" gorm:"not null;default:false"`
}

// Done reports whether the todo is completed
func (t Todo) Done() bool {
	return t.Completed
}
