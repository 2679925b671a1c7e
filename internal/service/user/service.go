package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cliniquenova/timeclock-backend-go/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	user.UserRepository
}

func NewUserService(userRepository user.UserRepository) user.UserService {
	return &UserServiceImpl{UserRepository: userRepository}
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Create implements user.UserService.
func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	exists, err := s.UserRepository.ExistsByUsername(ctx, req.Username, 0)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return user.UserResponse{}, user.ErrUsernameExists
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.UserRepository.Create(ctx, user.User{
		Username:     req.Username,
		PasswordHash: hash,
		LastName:     req.LastName,
		FirstName:    req.FirstName,
		Role:         req.Role,
		Active:       true,
	})
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	return user.ToResponse(created), nil
}

// Update implements user.UserService.
func (s *UserServiceImpl) Update(ctx context.Context, id int, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	current, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}

	if current.IsSeedAdmin() {
		// The bootstrap admin keeps its role and stays active.
		if req.Active != nil && !*req.Active {
			return user.UserResponse{}, user.ErrSeedAdminProtected
		}
		if req.Role != nil && *req.Role != user.RoleAdmin {
			return user.UserResponse{}, user.ErrSeedAdminProtected
		}
	}

	if req.Username != nil && *req.Username != current.Username {
		exists, err := s.UserRepository.ExistsByUsername(ctx, *req.Username, id)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to check username: %w", err)
		}
		if exists {
			return user.UserResponse{}, user.ErrUsernameExists
		}
		current.Username = *req.Username
	}

	if req.Password != nil {
		hash, err := hashPassword(*req.Password)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		current.PasswordHash = hash
	}
	if req.LastName != nil {
		current.LastName = *req.LastName
	}
	if req.FirstName != nil {
		current.FirstName = *req.FirstName
	}
	if req.Role != nil {
		current.Role = *req.Role
	}
	if req.Active != nil {
		current.Active = *req.Active
	}

	if err := s.UserRepository.Update(ctx, current); err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to update user: %w", err)
	}

	return user.ToResponse(current), nil
}

// Delete implements user.UserService. Deleting a missing id is a no-op; the
// seed admin is never deletable.
func (s *UserServiceImpl) Delete(ctx context.Context, id int) error {
	if id == user.SeedAdminID {
		return user.ErrSeedAdminProtected
	}
	return s.UserRepository.Delete(ctx, id)
}

// Get implements user.UserService.
func (s *UserServiceImpl) Get(ctx context.Context, id int) (user.UserResponse, error) {
	u, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(u), nil
}

// List implements user.UserService.
func (s *UserServiceImpl) List(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.ToResponse(u))
	}
	return responses, nil
}

// EnsureSeedAdmin implements user.UserService. Called at startup; idempotent.
func (s *UserServiceImpl) EnsureSeedAdmin(ctx context.Context, username, password, lastName, firstName string) error {
	_, err := s.UserRepository.GetByID(ctx, user.SeedAdminID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return fmt.Errorf("failed to look up seed admin: %w", err)
	}

	hash, err := hashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash seed admin password: %w", err)
	}

	_, err = s.UserRepository.Create(ctx, user.User{
		ID:           user.SeedAdminID,
		Username:     username,
		PasswordHash: hash,
		LastName:     lastName,
		FirstName:    firstName,
		Role:         user.RoleAdmin,
		Active:       true,
	})
	if err != nil {
		return fmt.Errorf("failed to create seed admin: %w", err)
	}

	slog.Info("seed admin account created", "username", username)
	return nil
}
