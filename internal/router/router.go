package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"miniblog/internal/config"
	"miniblog/internal/handler"
	"miniblog/internal/service"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authService service.AuthService,
	authHandler *handler.AuthHandler,
	postHandler *handler.PostHandler,
	commentHandler *handler.CommentHandler,
	adminHandler *handler.AdminHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Identity flows as an explicit parameter: resolve the bearer token (if
	// any) to a user once, and let handlers pass it into the services.
	api.Use(resolveCurrentUser(authService))

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/me", authHandler.Me)

	api.GET("/posts", postHandler.ListPosts)
	api.GET("/posts/:id", postHandler.GetPost)
	api.POST("/posts", postHandler.CreatePost)

	// Anonymous commenting is permitted, so comment creation is public too.
	api.GET("/posts/:id/comments", commentHandler.ListComments)
	api.POST("/posts/:id/comments", commentHandler.CreateComment)

	// Moderation routes additionally require a valid session token up front;
	// the admin check itself lives in the services.
	admin := api.Group("/admin", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))

	admin.GET("/users", adminHandler.ListUsers)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
	admin.DELETE("/posts/:id", adminHandler.DeletePost)
	admin.DELETE("/comments/:id", adminHandler.DeleteComment)
}

// resolveCurrentUser resolves the Authorization bearer token to a live user
// and stores it in the request context. Anonymous and invalid-token requests
// pass through with no user set.
func resolveCurrentUser(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := handler.BearerToken(c)
			if token == "" {
				return next(c)
			}

			user, err := authService.CurrentUser(c.Request().Context(), token)
			if err != nil {
				return next(c)
			}

			c.Set(handler.CurrentUserKey, user)
			return next(c)
		}
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
