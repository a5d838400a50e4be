package types

import "fmt"

// StorageError marks an operational storage fault (I/O failure, constraint
// violation) as opposed to the expected not-found and validation
// conditions. The global error handler maps it to a 500 response; nothing
// retries it.
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
