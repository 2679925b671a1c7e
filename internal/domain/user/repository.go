package user

import "context"

type UserRepository interface {
	// Create inserts a user. A zero ID is assigned the next integer id
	// (max existing id + 1, or 1 on an empty table); a non-zero ID is kept,
	// which the seed-admin bootstrap and snapshot restore rely on.
	Create(ctx context.Context, newUser User) (User, error)
	GetByID(ctx context.Context, id int) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	ExistsByUsername(ctx context.Context, username string, excludeID int) (bool, error)
	Update(ctx context.Context, u User) error
	// Delete removes the user with the given id. Deleting a missing id is a
	// no-op, not an error.
	Delete(ctx context.Context, id int) error
	List(ctx context.Context) ([]User, error)
	// Restore replaces the whole collection, keeping record ids.
	Restore(ctx context.Context, users []User) error
}

type UserService interface {
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	Update(ctx context.Context, id int, req UpdateUserRequest) (UserResponse, error)
	Delete(ctx context.Context, id int) error
	Get(ctx context.Context, id int) (UserResponse, error)
	List(ctx context.Context) ([]UserResponse, error)
	// EnsureSeedAdmin creates the bootstrap administrator when absent.
	EnsureSeedAdmin(ctx context.Context, username, password, lastName, firstName string) error
}
