package dllist

// Node узел содержащий данное значение в связанном списке.
type Node[T any] struct {
	prev *Node[T]
	next *Node[T]

	// list список которому принадлежит узел, nil после удаления из него.
	list *DLList[T]

	value T
}

func newNode[T any](l *DLList[T], v T) *Node[T] {
	return &Node[T]{
		prev:  l.last,
		next:  nil,
		list:  l,
		value: v,
	}
}

// Value возврат значения лежащего в узле.
func (n *Node[T]) Value() T {
	return n.value
}

// Next следующий узел списка или nil для последнего.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Prev предыдущий узел списка или nil для первого.
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

// Detached проверка, что узел уже не принадлежит никакому списку.
func (n *Node[T]) Detached() bool {
	return n.list == nil
}

func (n *Node[T]) cleanup() {
	n.prev = nil
	n.next = nil
	n.list = nil
}
