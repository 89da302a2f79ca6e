package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "workgroup/internal/errors"
	"workgroup/internal/model"
	"workgroup/internal/service"
)

// UserHandler bundles the user directory HTTP handlers.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// CreateUserRequest represents a user creation request.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
	Bio      string `json:"bio" validate:"omitempty,max=100"`
	Profile  []byte `json:"profile"`
	Resume   []byte `json:"resume"`
}

// UpdateUserRequest represents a partial user update. Absent fields
// leave the stored values untouched.
type UpdateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,password"`
	Bio      string `json:"bio" validate:"omitempty,max=100"`
	Profile  []byte `json:"profile"`
	Resume   []byte `json:"resume"`
}

// LoginRequest represents a credential check request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the authenticated user's public identity.
type LoginResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ProfileImageRequest carries a base64 image payload. An empty payload
// clears the stored image.
type ProfileImageRequest struct {
	Profile string `json:"profile"`
}

// IntroResponse describes the API entry point.
type IntroResponse struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Links       map[string]string `json:"_links"`
}

// MessageResponse carries a human-readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// ExistsResponse reports an email-existence check.
type ExistsResponse struct {
	Exists bool `json:"exists"`
}

// Intro godoc
// @Summary API intro
// @Tags users
// @Produce json
// @Success 200 {object} IntroResponse
// @Router /user [get]
func (h *UserHandler) Intro(c echo.Context) error {
	return c.JSON(http.StatusOK, IntroResponse{
		Name:        "Workgroup API",
		Description: "Welcome to the Workgroup API! Use the provided links to navigate through the available resources.",
		Links: map[string]string{
			"create": "/user/create",
			"all":    "/user/all",
			"page":   "/user/page",
			"login":  "/user/login",
			"exists": "/user/exists",
		},
	})
}

// CreateUser godoc
// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Param user body CreateUserRequest true "User payload"
// @Success 201 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /user/create [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user := &model.User{
		Name:    req.Name,
		Email:   req.Email,
		Bio:     req.Bio,
		Profile: req.Profile,
		Resume:  req.Resume,
	}
	created, err := h.svc.CreateUser(c.Request().Context(), user, req.Password)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// GetUser godoc
// @Summary Get user by id
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} model.User
// @Failure 404 {object} errors.ErrorResponse
// @Router /user/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	user, err := h.svc.GetUser(c.Request().Context(), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// ListUsers godoc
// @Summary List all users
// @Tags users
// @Produce json
// @Success 200 {array} model.User
// @Router /user/all [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.svc.ListUsers(c.Request().Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

// ListUsersPage godoc
// @Summary List users page by page
// @Tags users
// @Produce json
// @Param page query int false "Zero-based page"
// @Param size query int false "Page size"
// @Param sort query string false "Sort, e.g. name,desc"
// @Success 200 {object} model.UserPage
// @Router /user/page [get]
func (h *UserHandler) ListUsersPage(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))
	req := model.PageRequest{Page: page, Size: size, Sort: c.QueryParam("sort")}

	result, err := h.svc.ListUsersPage(c.Request().Context(), req)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// UpdateUser godoc
// @Summary Update user fields
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param user body UpdateUserRequest true "Fields to update"
// @Success 200 {object} model.User
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /user/update/{id} [put]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	patch := service.UserPatch{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Bio:      req.Bio,
		Profile:  req.Profile,
		Resume:   req.Resume,
	}
	updated, err := h.svc.UpdateUser(c.Request().Context(), id, patch)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteUser godoc
// @Summary Delete user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} MessageResponse
// @Router /user/delete/{id} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteUser(c.Request().Context(), id); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "User deleted successfully!"})
}

// Login godoc
// @Summary Validate credentials
// @Tags users
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /user/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.svc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, LoginResponse{ID: user.ID, Name: user.Name, Email: user.Email})
}

// EmailExists godoc
// @Summary Check whether an email is registered
// @Tags users
// @Produce json
// @Param email query string true "Email"
// @Success 200 {object} ExistsResponse
// @Router /user/exists [get]
func (h *UserHandler) EmailExists(c echo.Context) error {
	exists, err := h.svc.EmailExists(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, ExistsResponse{Exists: exists})
}

// UpdateProfileImage godoc
// @Summary Replace or clear a user's profile image
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param image body ProfileImageRequest true "Base64 payload, empty clears"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /user/profile/{id} [put]
func (h *UserHandler) UpdateProfileImage(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req ProfileImageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	updated, err := h.svc.UpdateProfileImage(c.Request().Context(), id, req.Profile)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

func errorResponse(c echo.Context, err error) error {
	he := apperrors.MapErrorToHTTP(err)
	return c.JSON(he.StatusCode, he.ToErrorResponse())
}
