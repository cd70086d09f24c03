package user

import "errors"

var ErrUserDoesNotExist = errors.New("user does not exist")

// ID is the identity assigned by the upstream auth gateway.
type ID string

func (id ID) IsZero() bool {
	return id == ""
}
