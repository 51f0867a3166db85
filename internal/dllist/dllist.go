package dllist

import (
	"github.com/google/uuid"
	"github.com/sirkon/errors"
	"golang.org/x/exp/slices"
)

// New конструктор пустого двусвязного списка.
func New[T any]() *DLList[T] {
	return &DLList[T]{
		id: uuid.New(),
	}
}

// DLList двусвязный список с добавлением в конец и удалением произвольного узла.
// Каждый узел знает свой список, поэтому удаление чужого или уже удалённого
// узла обнаруживается и не портит структуру.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type DLList[T any] struct {
	id    uuid.UUID
	first *Node[T]
	last  *Node[T]
	len   int
}

// ID идентификатор списка, попадает в контекст ошибок.
func (l *DLList[T]) ID() uuid.UUID {
	return l.id
}

// Push добавление нового значения в конец списка с возвратом созданного узла.
func (l *DLList[T]) Push(v T) *Node[T] {
	n := newNode(l, v)
	l.len++

	if l.first == nil {
		l.first = n
		l.last = n
		return n
	}

	l.last.next = n
	l.last = n

	return n
}

// First получение первого элемента списка.
func (l *DLList[T]) First() *Node[T] {
	return l.first
}

// Last получение последнего элемента списка.
func (l *DLList[T]) Last() *Node[T] {
	return l.last
}

// Len количество узлов в списке.
func (l *DLList[T]) Len() int {
	return l.len
}

// Empty проверка на пустоту.
func (l *DLList[T]) Empty() bool {
	return l.first == nil
}

// DeleteFirst удаление первого элемента списка.
func (l *DLList[T]) DeleteFirst() {
	if l.first == nil {
		return
	}

	l.unlink(l.first)
}

// Delete удаление данного узла из списка. Удаление nil ничего не делает.
// Возвращает ошибку если узел принадлежит другому списку или уже был удалён,
// сам список при этом не меняется.
func (l *DLList[T]) Delete(n *Node[T]) error {
	if n == nil {
		return nil
	}

	switch n.list {
	case l:
	case nil:
		return errors.Wrap(ErrorDetachedNode, "delete node").Stg("list-id", l.id)
	default:
		return errors.Wrap(ErrorForeignNode, "delete node").
			Stg("list-id", l.id).
			Stg("node-list-id", n.list.id)
	}

	l.unlink(n)
	return nil
}

// Clear удаляет все узлы начиная с последнего. Все ранее выданные узлы
// становятся отсоединёнными.
func (l *DLList[T]) Clear() {
	for !l.Empty() {
		l.unlink(l.last)
	}
}

// Values копия значений списка от первого к последнему.
func (l *DLList[T]) Values() []T {
	res := slices.Grow([]T(nil), l.len)
	for n := l.first; n != nil; n = n.next {
		res = append(res, n.value)
	}

	return res
}

// unlink вырезает узел принадлежащий данному списку.
func (l *DLList[T]) unlink(n *Node[T]) {
	switch {
	case n.prev == nil && n.next == nil:
		// Единственный элемент.
		if l.first != n || l.last != n {
			panic(errors.New("list invariant broken: lone node is not both first and last").
				Stg("list-id", l.id).
				Int("list-length", l.len))
		}
		l.first = nil
		l.last = nil
	case n.prev == nil:
		n.next.prev = nil
		l.first = n.next
	case n.next == nil:
		n.prev.next = nil
		l.last = n.prev
	default:
		n.prev.next = n.next
		n.next.prev = n.prev
	}

	l.len--
	n.cleanup()
}
