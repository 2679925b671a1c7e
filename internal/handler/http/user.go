package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cliniquenova/timeclock-backend-go/internal/domain/user"
	"github.com/cliniquenova/timeclock-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type UserHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	userService user.UserService
}

// Create implements UserHandler.
func (u *UserHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq user.CreateUserRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create user decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := createReq.Validate(); err != nil {
		slog.Error("Create user validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	created, err := u.userService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create user service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("User created successfully", "user_id", created.ID)
	response.Created(w, "User created successfully", created)
}

// Get implements UserHandler.
func (u *UserHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid user id", nil)
		return
	}

	found, err := u.userService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// List implements UserHandler.
func (u *UserHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	users, err := u.userService.List(r.Context())
	if err != nil {
		slog.Error("List users service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, users)
}

// Update implements UserHandler.
func (u *UserHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid user id", nil)
		return
	}

	var updateReq user.UpdateUserRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update user decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := updateReq.Validate(); err != nil {
		slog.Error("Update user validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	updated, err := u.userService.Update(r.Context(), id, updateReq)
	if err != nil {
		slog.Error("Update user service error", "error", err, "user_id", id)
		response.HandleError(w, err)
		return
	}

	// Success response
	response.SuccessWithMessage(w, "User updated successfully", updated)
}

// Delete implements UserHandler.
func (u *UserHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid user id", nil)
		return
	}

	if err := u.userService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete user service error", "error", err, "user_id", id)
		response.HandleError(w, err)
		return
	}

	slog.Info("User deleted successfully", "user_id", id)
	response.SuccessWithMessage(w, "User deleted successfully", nil)
}

func NewUserHandler(userService user.UserService) UserHandler {
	return &UserHandlerImpl{
		userService: userService,
	}
}
