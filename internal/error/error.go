package error

import (
	"errors"
	"fmt"
)

var (
	ErrNotExist = errors.New("file does not exist")
	ErrRead     = errors.New("error reading file")
	ErrWrite    = errors.New("error writing file")
	ErrDelete   = errors.New("error deleting file")
	ErrRename   = errors.New("error renaming file")
	ErrList     = errors.New("error listing directory")
	ErrMkdir    = errors.New("error creating directory")
	ErrPurge    = errors.New("error purging directory")
)

var (
	ErrBadPattern = errors.New("invalid date pattern")
	ErrBadDate    = errors.New("malformed date")
	ErrBadRange   = errors.New("invalid date range")
)

var (
	ErrNoFunction = errors.New("function is empty")
)

var (
	ErrUnknownThreshold = errors.New("unknown threshold type")
	ErrMonitorStored    = errors.New("monitor already stored")
	ErrStoreReport      = errors.New("error storing report")
	ErrBadConfig        = errors.New("invalid monitor config")
	ErrLoadConfig       = errors.New("error loading monitor config")
)

func New(err error, str string) error {
	return fmt.Errorf("%w: %s", err, str)
}
