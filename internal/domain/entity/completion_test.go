package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func todos(completed ...bool) []Todo {
	result := make([]Todo, len(completed))
	for i, c := range completed {
		result[i] = Todo{ID: int64(i + 10), Name: string(rune('a' + i)), Completed: c}
	}
	return result
}

func TestList_IsComplete(t *testing.T) {
	tests := []struct {
		name  string
		todos []Todo
		want  bool
	}{
		{name: "empty list is never complete", todos: nil, want: false},
		{name: "single completed todo", todos: todos(true), want: true},
		{name: "one pending todo", todos: todos(true, false), want: false},
		{name: "all completed", todos: todos(true, true, true), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, List{Todos: tt.todos}.IsComplete())
		})
	}
}

func TestList_CompletedCount(t *testing.T) {
	assert.Equal(t, 0, List{}.CompletedCount())
	assert.Equal(t, 0, List{Todos: todos(false, false)}.CompletedCount())
	assert.Equal(t, 2, List{Todos: todos(true, false, true)}.CompletedCount())
}

func TestPartitionByCompletion_KeepsOrderAndPositions(t *testing.T) {
	items := todos(true, false, true, false, false)

	incomplete, complete := PartitionByCompletion(items)

	assert.Equal(t, len(items), len(incomplete)+len(complete))
	assert.Equal(t, []int{1, 3, 4}, positions(incomplete))
	assert.Equal(t, []int{0, 2}, positions(complete))
	for _, p := range append(incomplete, complete...) {
		assert.Equal(t, items[p.Position], p.Item)
	}
}

func TestPartitionByCompletion_Empty(t *testing.T) {
	incomplete, complete := PartitionByCompletion([]Todo{})

	assert.Empty(t, incomplete)
	assert.Empty(t, complete)
}

func TestSortByCompletion_Lists(t *testing.T) {
	lists := []List{
		{ID: 1, Name: "done", Todos: todos(true)},
		{ID: 2, Name: "empty"},
		{ID: 3, Name: "pending", Todos: todos(false, true)},
	}

	sorted := SortByCompletion(lists)

	names := make([]string, len(sorted))
	for i, p := range sorted {
		names[i] = p.Item.Name
	}
	assert.Equal(t, []string{"empty", "pending", "done"}, names)
}

func positions[T any](items []Positioned[T]) []int {
	result := make([]int, len(items))
	for i, item := range items {
		result[i] = item.Position
	}
	return result
}
