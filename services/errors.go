package services

import (
	"errors"
	"strconv"
)

const (
	KindMenu    = "menu"
	KindSubMenu = "submenu"
	KindDish    = "dish"
)

// ErrNotFound matches every NotFoundError with errors.Is.
var ErrNotFound = errors.New("not found")

// NotFoundError is returned when an entity is missing or does not belong to
// the parent it was addressed under.
type NotFoundError struct {
	Kind string
	ID   uint
}

func (e *NotFoundError) Error() string {
	return e.Kind + " not found"
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Describe includes the id, for logs.
func (e *NotFoundError) Describe() string {
	return e.Kind + " " + strconv.FormatUint(uint64(e.ID), 10) + " not found"
}

func notFound(kind string, id uint) error {
	return &NotFoundError{Kind: kind, ID: id}
}
