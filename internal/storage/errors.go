package storage

import (
	"errors"
	"fmt"
)

type ErrorType string

const (
	ErrCorruptData  ErrorType = "corrupt_data"
	ErrReadFailed   ErrorType = "read_failed"
	ErrWriteFailed  ErrorType = "write_failed"
	ErrEncodeFailed ErrorType = "encode_failed"
)

var errQuotaExceeded = errors.New("storage quota exceeded")

type StorageError struct {
	Type    ErrorType
	Key     string
	Message string
	Cause   error
}

func (e *StorageError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *StorageError) Unwrap() error {
	return e.Cause
}

func NewStorageError(errType ErrorType, key, message string, cause error) *StorageError {
	return &StorageError{
		Type:    errType,
		Key:     key,
		Message: message,
		Cause:   cause,
	}
}

func NewCorruptDataError(key string, cause error) *StorageError {
	return NewStorageError(ErrCorruptData, key, fmt.Sprintf("slot %s holds malformed data", key), cause)
}

func NewReadError(key string, cause error) *StorageError {
	return NewStorageError(ErrReadFailed, key, fmt.Sprintf("failed to read slot %s", key), cause)
}

func NewWriteError(key string, cause error) *StorageError {
	return NewStorageError(ErrWriteFailed, key, fmt.Sprintf("failed to write slot %s", key), cause)
}

func NewEncodeError(key string, cause error) *StorageError {
	return NewStorageError(ErrEncodeFailed, key, fmt.Sprintf("failed to encode slot %s", key), cause)
}

// IsCorrupt reports whether err (or anything it wraps) is a corrupt-slot error.
func IsCorrupt(err error) bool {
	var storageErr *StorageError
	if errors.As(err, &storageErr) {
		return storageErr.Type == ErrCorruptData
	}
	return false
}
