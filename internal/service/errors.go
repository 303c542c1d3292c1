package service

import "errors"

var (
	ErrNotAuthenticated = errors.New("not authenticated")

	ErrLoginOnServer    = errors.New("login failed on server")
	ErrRegisterOnServer = errors.New("registration failed on server")
)
