package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	userDomain "expense-approval-service/internal/domain/user"
	authUC "expense-approval-service/internal/usecase/auth"
)

// Protect verifies the bearer token and loads the account, storing it under
// "actingUser" for handlers to pass explicitly into usecases.
func Protect(users userDomain.Repository, secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}
			userID, err := authUC.ParseToken(strings.TrimPrefix(header, "Bearer "), secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
			}
			acct, err := users.GetByUserID(c.Request().Context(), userID)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "account no longer exists"})
			}
			c.Set("actingUser", acct)
			return next(c)
		}
	}
}

// AdminOrManager gates queue/admin views. This is visibility only: acting on
// a specific expense is enforced downstream by approver identity.
func AdminOrManager(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		acct, _ := c.Get("actingUser").(*userDomain.User)
		if acct == nil || !acct.Role.CanReviewQueues() {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "admin or manager role required"})
		}
		return next(c)
	}
}
