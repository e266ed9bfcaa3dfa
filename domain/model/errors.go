package model

import "errors"

var (
	ErrRunNotFound   = errors.New("run not found")
	ErrConfigInvalid = errors.New("deploy config invalid")
)
