package dataset

import "errors"

var (
	ErrDuplicateID = errors.New("duplicate id")
	ErrInvalidSex  = errors.New("invalid sex")
)
