package models

import "errors"

var (
	ErrNotFound      = errors.New("document not found")
	ErrInvalidID     = errors.New("invalid document id")
	ErrAlreadyExists = errors.New("document already exists")
)
