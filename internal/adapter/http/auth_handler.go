package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authUC "expense-approval-service/internal/usecase/auth"
)

type AuthHandler struct{ uc *authUC.Usecase }

func NewAuthHandler(uc *authUC.Usecase) *AuthHandler { return &AuthHandler{uc: uc} }

type signupReq struct {
	CompanyName string `json:"company_name" validate:"required"`
	AdminName   string `json:"admin_name"   validate:"required"`
	Email       string `json:"email"        validate:"required,email"`
	Password    string `json:"password"     validate:"required,min=8"`
	Country     string `json:"country"      validate:"required"`
}

func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Signup(c.Request().Context(), authUC.SignupInput{
		CompanyName: req.CompanyName,
		AdminName:   req.AdminName,
		Email:       req.Email,
		Password:    req.Password,
		Country:     req.Country,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type signinReq struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Signin(c echo.Context) error {
	var req signinReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Signin(c.Request().Context(), authUC.SigninInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type setPasswordReq struct {
	UserID          string `json:"user_id"          validate:"required,hex32"`
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8"`
}

func (h *AuthHandler) SetPassword(c echo.Context) error {
	var req setPasswordReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	if err := h.uc.SetPassword(c.Request().Context(), authUC.SetPasswordInput(req)); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Password updated successfully."})
}

type forgotPasswordReq struct {
	Email string `json:"email" validate:"required,email"`
}

func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	if err := h.uc.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		return writeError(c, err)
	}
	// Uniform reply regardless of whether the account exists.
	return c.JSON(http.StatusOK, map[string]string{
		"message": "If an account with that email exists, a password reset has been initiated. Please contact your administrator for the new temporary password.",
	})
}
