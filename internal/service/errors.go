package service

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrIdentityMismatch   = errors.New("identity does not match token")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
	ErrSelfRating         = errors.New("cannot rate yourself")
	ErrUnsupportedAvatar  = errors.New("unsupported avatar image type")
)
