package entity

// Completable is implemented by everything that can be rendered as done or pending
type Completable interface {
	Done() bool
}

// Positioned keeps an item together with its index in the original sequence
type Positioned[T any] struct {
	Position int
	Item     T
}

// PartitionByCompletion splits items into incomplete and complete, keeping the relative order inside
// each partition and the original position of every item.
func PartitionByCompletion[T Completable](items []T) (incomplete, complete []Positioned[T]) {
	incomplete = make([]Positioned[T], 0, len(items))
	complete = make([]Positioned[T], 0)
	for i, item := range items {
		positioned := Positioned[T]{Position: i, Item: item}
		if item.Done() {
			complete = append(complete, positioned)
		} else {
			incomplete = append(incomplete, positioned)
		}
	}
	return incomplete, complete
}

// SortByCompletion returns the incomplete items followed by the complete ones
func SortByCompletion[T Completable](items []T) []Positioned[T] {
	incomplete, complete := PartitionByCompletion(items)
	return append(incomplete, complete...)
}
