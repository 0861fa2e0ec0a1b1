package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"expense-approval-service/internal/domain/company"
	expenseDomain "expense-approval-service/internal/domain/expense"
	"expense-approval-service/internal/domain/passwordreset"
	userDomain "expense-approval-service/internal/domain/user"
	adminUC "expense-approval-service/internal/usecase/admin"
	authUC "expense-approval-service/internal/usecase/auth"
)

// writeError maps domain errors onto HTTP codes in one place so every
// handler reports failures the same way.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, expenseDomain.ErrInvalidInput),
		errors.Is(err, authUC.ErrInvalidInput),
		errors.Is(err, adminUC.ErrInvalidInput),
		errors.Is(err, adminUC.ErrSelfManager),
		errors.Is(err, adminUC.ErrSelfDelete),
		errors.Is(err, userDomain.ErrEmailTaken),
		errors.Is(err, company.ErrNameTaken):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, authUC.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case errors.Is(err, adminUC.ErrForbidden):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, expenseDomain.ErrNotFoundOrForbidden),
		errors.Is(err, userDomain.ErrNotFound),
		errors.Is(err, passwordreset.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, expenseDomain.ErrConflict):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

// currentUser pulls the authenticated user placed by the auth middleware and
// hands it to usecases as an explicit actingUser argument; nothing below the
// handlers reads it ambiently.
func currentUser(c echo.Context) *userDomain.User {
	u, _ := c.Get("actingUser").(*userDomain.User)
	return u
}
