package model

// ListForm is the body of the create and rename list forms
type ListForm struct {
	ListName string `form:"list_name"`
}

// TodoForm is the body of the add todo form
type TodoForm struct {
	Todo string `form:"todo"`
}

// TodoStatusForm is the body of the toggle todo form. Only the literal "true" completes the todo.
type TodoStatusForm struct {
	Completed string `form:"completed"`
}

func (form TodoStatusForm) IsCompleted() bool {
	return form.Completed == "true"
}
