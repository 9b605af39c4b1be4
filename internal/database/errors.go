package database

import (
	"errors"
	"fmt"
)

var (
	ErrGoalNotFound      = errors.New("goal not found")
	ErrInvalidBackup     = errors.New("invalid backup file")
	ErrWrongPassphrase   = errors.New("incorrect passphrase")
	ErrPassphraseNeeded  = errors.New("backup is encrypted; passphrase required")
	ErrDatabaseCorrupted = errors.New("database file is corrupted")
)

// Entity names used in OpError.Resource.
const (
	EntityGoal    = "goal"
	EntityLog     = "daily log"
	EntitySetting = "setting"
	EntityBackup  = "backup"
)

type OpError struct {
	Op       string
	Resource string
	ID       string
	Err      error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.ID != "" {
		return fmt.Sprintf("%s %s %s: %v", e.Op, e.Resource, e.ID, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapErr(entity, op, id string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: entity, ID: id, Err: err}
}

func wrapGoalErr(op, id string, err error) error {
	return wrapErr(EntityGoal, op, id, err)
}
