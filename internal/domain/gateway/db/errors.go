package db

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
)

var (
	ErrListNotFound       = errors.New("list not found")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// StorageError wraps every failure coming from the underlying store.
// errors.Is(err, ErrStorageUnavailable) reports whether the store could not be reached at all.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func (e *StorageError) Is(target error) bool {
	return target == ErrStorageUnavailable && isConnectionError(e.Err)
}

func isConnectionError(err error) bool {
	var opErr *net.OpError
	return errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) || errors.As(err, &opErr)
}
