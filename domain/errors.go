package domain

import "errors"

var (
	ErrNotFound         = errors.New("record not found")
	ErrAlreadyExists    = errors.New("record already exists")
	ErrInUse            = errors.New("record is still referenced")
	ErrInvalidReference = errors.New("referenced record does not exist")
)
