package storage

import "errors"

var (
	ErrAdminNotFound = errors.New("given admin username doesn't exist in storage")
	ErrAdminExists   = errors.New("given admin username already exists in storage")

	ErrJerseyNumberExists = errors.New("order with given jersey number already exists in storage")
	ErrOrderNotFound      = errors.New("order with given id doesn't exist in storage")
	ErrStatusReversal     = errors.New("completed order can't return to pending")
)
