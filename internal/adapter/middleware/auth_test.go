package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	userDomain "expense-approval-service/internal/domain/user"
	"expense-approval-service/internal/testutil/usermock"
	authUC "expense-approval-service/internal/usecase/auth"
)

const authTestSecret = "auth-test-secret"

func protectedEcho(users userDomain.Repository) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	g := e.Group("", Protect(users, authTestSecret))
	g.GET("/me", func(c echo.Context) error {
		u, _ := c.Get("actingUser").(*userDomain.User)
		return c.JSON(http.StatusOK, map[string]string{"user_id": u.UserID})
	})
	g.GET("/queue", AdminOrManager(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}))
	return e
}

func knownUsers(acct *userDomain.User) *usermock.Repo {
	return &usermock.Repo{
		GetByUserIDFn: func(ctx context.Context, userID string) (*userDomain.User, error) {
			if userID == acct.UserID {
				return acct, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
}

func bearerFor(t *testing.T, userID string) string {
	t.Helper()
	tok, err := authUC.GenerateToken(userID, authTestSecret, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	return "Bearer " + tok
}

func TestProtect(t *testing.T) {
	acct := &userDomain.User{UserID: strings.Repeat("a", 32), Role: userDomain.RoleEmployee}
	e := protectedEcho(knownUsers(acct))

	t.Run("valid token loads the account", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set(echo.HeaderAuthorization, bearerFor(t, acct.UserID))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200; body=%s", rec.Code, rec.Body.String())
		}
		if !strings.Contains(rec.Body.String(), acct.UserID) {
			t.Fatalf("actingUser not set: %s", rec.Body.String())
		}
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer not-a-token")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("token for a deleted account", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set(echo.HeaderAuthorization, bearerFor(t, strings.Repeat("b", 32)))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
	})
}

func TestAdminOrManager(t *testing.T) {
	cases := []struct {
		role userDomain.Role
		want int
	}{
		{userDomain.RoleAdmin, http.StatusOK},
		{userDomain.RoleManager, http.StatusOK},
		{userDomain.RoleEmployee, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(string(tc.role), func(t *testing.T) {
			acct := &userDomain.User{UserID: strings.Repeat("a", 32), Role: tc.role}
			e := protectedEcho(knownUsers(acct))

			req := httptest.NewRequest(http.MethodGet, "/queue", nil)
			req.Header.Set(echo.HeaderAuthorization, bearerFor(t, acct.UserID))
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			if rec.Code != tc.want {
				t.Fatalf("role %s: status = %d, want %d", tc.role, rec.Code, tc.want)
			}
		})
	}
}
