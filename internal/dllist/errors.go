package dllist

import "github.com/sirkon/errors"

const (
	// ErrorForeignNode узел принадлежит другому списку.
	ErrorForeignNode errors.Const = "node belongs to another list"

	// ErrorDetachedNode узел уже был удалён из списка.
	ErrorDetachedNode errors.Const = "node has already been removed"
)
