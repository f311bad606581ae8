package service

import (
	"errors"
	"strings"
	"time"

	"github.com/sangkips/laundry-admin/internal/domain/repository"
	"github.com/sangkips/laundry-admin/pkg/apperror"
)

// Clock returns the current time. Services take one so tests can pin dates.
type Clock func() time.Time

func (c Clock) orDefault() Clock {
	if c == nil {
		return time.Now
	}
	return c
}

// matchesFold reports whether any of fields contains query, ignoring case.
// An empty query matches everything.
func matchesFold(query string, fields ...string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

// isAll reports whether a filter value means "no filter"
func isAll(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || strings.EqualFold(v, "all")
}

// storageError maps repository failures onto application errors
func storageError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case apperror.IsAppError(err):
		return err
	case errors.Is(err, repository.ErrRecordNotFound):
		return apperror.NewNotFoundError("Record")
	case errors.Is(err, repository.ErrDuplicateKey):
		return apperror.NewConflictError(err.Error())
	}
	return apperror.NewStorageError(op, err)
}
