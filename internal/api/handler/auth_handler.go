package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cyngu/integration-continue-exo-node/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type signupRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Name      string `json:"name"`
	Firstname string `json:"firstname"`
	BirthDate string `json:"birthDate"`
	City      string `json:"city"`
	Zipcode   string `json:"zipcode"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string        `json:"token"`
	User  *userResponse `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Signup registers a new account and logs it in.
//
// @Summary      Sign up
// @Description  Creates an account after validating every field, then returns a bearer token for it.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      201   {object}  authResponse
// @Header       201   {string}  Authorization  "Bearer token"
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	input, err := toCreateUserInput(req.Email, req.Password, req.Name, req.Firstname, req.BirthDate, req.City, req.Zipcode)
	if err != nil {
		return err
	}

	token, user, err := h.authService.Signup(c.Request().Context(), input)
	if err != nil {
		return err
	}

	c.Response().Header().Set("Authorization", "Bearer "+token)
	return c.JSON(http.StatusCreated, authResponse{Token: token, User: toUserPayload(user)})
}

// Login authenticates an account and returns a bearer token.
//
// @Summary      Log in
// @Description  Verifies the credentials. The error never reveals whether the email exists.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  authResponse
// @Header       200   {string}  Authorization  "Bearer token"
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	c.Response().Header().Set("Authorization", "Bearer "+token)
	return c.JSON(http.StatusOK, authResponse{Token: token, User: toUserPayload(user)})
}

// Logout acknowledges the logout. No server-side state changes.
//
// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{Message: h.authService.Logout()})
}
