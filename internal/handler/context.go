package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"miniblog/internal/model"
)

// CurrentUserKey is the echo context key under which the optional-auth
// middleware stores the resolved user.
const CurrentUserKey = "current_user"

// currentUser returns the user resolved for this request, or nil when the
// request is anonymous.
func currentUser(c echo.Context) *model.User {
	if u, ok := c.Get(CurrentUserKey).(*model.User); ok {
		return u
	}
	return nil
}

// BearerToken extracts the bearer token from the Authorization header, or ""
// when the header is absent or not a bearer scheme.
func BearerToken(c echo.Context) string {
	parts := strings.SplitN(c.Request().Header.Get(echo.HeaderAuthorization), " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

// parseID parses the :id path parameter. Negative and non-numeric values are
// rejected outright rather than wrapping into a huge unsigned id.
func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}
