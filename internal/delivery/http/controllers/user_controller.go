package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"eventease/internal/delivery/http/helpers"
	"eventease/internal/domain"
)

type UserController struct {
	Logger  *slog.Logger
	Service domain.UserService
}

func NewUserController(logger *slog.Logger, svc domain.UserService) *UserController {
	return &UserController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateUserRequest is the request body for POST /api/users.
type CreateUserRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// Validate implements helpers.Validator.
func (req *CreateUserRequest) Validate() []string {
	var errs []string
	if req.FirstName == "" {
		errs = append(errs, "first_name is required")
	}
	email := strings.TrimSpace(req.Email)
	if email == "" {
		errs = append(errs, "email is required")
	} else if !strings.Contains(email, "@") {
		errs = append(errs, "email is invalid")
	}
	return errs
}

// CreateUser godoc
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Param body body controllers.CreateUserRequest true "User fields"
// @Success 201 {object} helpers.APIResponse "data is a one-element user list"
// @Failure 400 {object} helpers.APIResponse "invalid fields or duplicate email"
// @Failure 500 {object} helpers.APIResponse
// @Router /api/users [post]
func (c *UserController) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	user := &domain.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}
	if err := c.Service.CreateUser(r.Context(), user); err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, []*domain.User{user})
}

// GetUser godoc
// @Summary Get a user by ID
// @Tags users
// @Produce json
// @Param userID path string true "User ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data is a one-element user list"
// @Failure 404 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse
// @Router /api/users/{userID} [get]
func (c *UserController) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userID")
	if !ok {
		return
	}
	user, err := c.Service.GetUserByID(r.Context(), userID)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, []*domain.User{user})
}

// UpdateUserRequest is the request body for PATCH /api/users/{userID}.
type UpdateUserRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
}

// Validate implements helpers.Validator.
func (req *UpdateUserRequest) Validate() []string {
	if req.Email != nil && !strings.Contains(*req.Email, "@") {
		return []string{"email is invalid"}
	}
	return nil
}

// UpdateUser godoc
// @Summary Partially update a user
// @Tags users
// @Accept json
// @Produce json
// @Param userID path string true "User ID (UUID)"
// @Param body body controllers.UpdateUserRequest true "Fields to update"
// @Success 200 {object} helpers.APIResponse "data is a one-element user list"
// @Failure 400 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse
// @Router /api/users/{userID} [patch]
func (c *UserController) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userID")
	if !ok {
		return
	}
	var req UpdateUserRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	user, err := c.Service.UpdateUser(r.Context(), userID, domain.UserUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, []*domain.User{user})
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags users
// @Produce json
// @Param userID path string true "User ID (UUID)"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse
// @Router /api/users/{userID} [delete]
func (c *UserController) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userID")
	if !ok {
		return
	}
	if err := c.Service.DeleteUser(r.Context(), userID); err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONMessage(w, http.StatusOK, "User successfully deleted")
}
