package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cyngu/integration-continue-exo-node/internal/api/middleware"
	"github.com/cyngu/integration-continue-exo-node/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// createUserRequest is the direct-creation payload. Unlike signup it sits
// behind the auth guard, so presence checks run up front; the field-level
// rules still come from the service pipeline.
type createUserRequest struct {
	Email     string `json:"email" validate:"required"`
	Password  string `json:"password" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Firstname string `json:"firstname" validate:"required"`
	BirthDate string `json:"birthDate" validate:"required"`
	City      string `json:"city" validate:"required"`
	Zipcode   string `json:"zipcode" validate:"required"`
}

// Create handles POST /users for authenticated account creation.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "Account details"
// @Success      201   {object}  userDetail
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input, err := toCreateUserInput(req.Email, req.Password, req.Name, req.Firstname, req.BirthDate, req.City, req.Zipcode)
	if err != nil {
		return err
	}

	user, err := h.userService.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toUserDetail(user))
}

// List handles GET /users.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   userDetail
// @Failure      401  {object}  map[string]string
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.FindAll(c.Request().Context())
	if err != nil {
		return err
	}

	details := make([]userDetail, 0, len(users))
	for i := range users {
		details = append(details, toUserDetail(&users[i]))
	}
	return c.JSON(http.StatusOK, details)
}

// GetByEmail handles GET /users/:email.
//
// @Summary      Get a user by email
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "Account email"
// @Success      200    {object}  userDetail
// @Failure      401    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Router       /users/{email} [get]
func (h *UserHandler) GetByEmail(c echo.Context) error {
	user, err := h.userService.FindByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserDetail(user))
}

// Delete handles DELETE /users/:id. The raw bearer token travels down to the
// service, which verifies it and checks the admin role and delete permission
// before touching storage.
//
// @Summary      Delete a user
// @Tags         users
// @Security     BearerAuth
// @Param        id  path  string  true  "Account id"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	token, err := middleware.BearerToken(c)
	if err != nil {
		return err
	}

	if err := h.userService.Remove(c.Request().Context(), c.Param("id"), token); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
