package batchkit

import (
	errs "github.com/osmike/batchkit/internal/error"
)

// Sentinel errors re-exported for matching with errors.Is.
var (
	ErrNotExist = errs.ErrNotExist
	ErrRead     = errs.ErrRead
	ErrWrite    = errs.ErrWrite
	ErrDelete   = errs.ErrDelete
	ErrRename   = errs.ErrRename
	ErrList     = errs.ErrList
	ErrMkdir    = errs.ErrMkdir
	ErrPurge    = errs.ErrPurge

	ErrBadPattern = errs.ErrBadPattern
	ErrBadDate    = errs.ErrBadDate
	ErrBadRange   = errs.ErrBadRange

	ErrNoFunction = errs.ErrNoFunction

	ErrUnknownThreshold = errs.ErrUnknownThreshold
	ErrMonitorStored    = errs.ErrMonitorStored
	ErrStoreReport      = errs.ErrStoreReport
	ErrBadConfig        = errs.ErrBadConfig
	ErrLoadConfig       = errs.ErrLoadConfig
)
