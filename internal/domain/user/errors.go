package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrUsernameExists         = errors.New("username already taken")
	ErrSeedAdminProtected     = errors.New("the seed administrator account cannot be deleted or deactivated")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
	ErrManagerAccessRequired  = errors.New("manager access required")
)
