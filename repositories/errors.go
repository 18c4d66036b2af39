package repositories

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrInvalidPagination = errors.New("page number and page size must be greater than 0")
	ErrInvalidRelation   = errors.New("relation requires a tag id and an article id")
	ErrMissingFilter     = errors.New("remove requires at least one filter")
)

// RepositoryError wraps a failure of the underlying query engine.
type RepositoryError struct {
	Op    string
	Table string
	Err   error
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("repository %s %s: %v", e.Table, e.Op, e.Err)
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}

func IsRepositoryError(err error) bool {
	var repoErr *RepositoryError
	return errors.As(err, &repoErr)
}
