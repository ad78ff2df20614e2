// Package apperrors defines the failure taxonomy shared by the repositories
// and handlers: validation failures, unique-constraint conflicts, missing
// entities. Anything outside the taxonomy is treated as an internal error.
package apperrors

import (
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
)

// ValidationError aggregates one message per offending field.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}

// NewValidationError builds a ValidationError from one or more field messages.
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

// DuplicateError reports a unique-constraint conflict. Field names the
// offending field when it can be determined from the index that tripped.
type DuplicateError struct {
	Message string
	Field   string
}

func (e *DuplicateError) Error() string {
	return e.Message
}

// NotFoundError reports that no entity exists at the given identifier.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsDuplicate reports whether err is (or wraps) a DuplicateError.
func IsDuplicate(err error) bool {
	var de *DuplicateError
	return errors.As(err, &de)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var ne *NotFoundError
	return errors.As(err, &ne)
}

// FromWrite converts a store-level write failure into a DuplicateError when
// the store rejected the write on a unique index. The index name embedded in
// the server message identifies the offending field (indexes are named
// idx_<field> by the bootstrap in internal/database). Any other failure is
// returned unchanged.
func FromWrite(err error, entity string) error {
	if err == nil {
		return nil
	}
	if !mongo.IsDuplicateKeyError(err) {
		return err
	}

	field := "slug"
	msg := err.Error()
	for _, f := range []string{"name", "slug", "sku"} {
		if strings.Contains(msg, "idx_"+f) || strings.Contains(msg, f+"_1") {
			field = f
			break
		}
	}
	return &DuplicateError{
		Message: fmt.Sprintf("A %s with this %s already exists", strings.ToLower(entity), field),
		Field:   field,
	}
}
