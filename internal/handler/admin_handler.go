package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"miniblog/internal/errors"
	"miniblog/internal/service"
)

// AdminHandler handles the moderation endpoints. Every route is gated by
// CanModerate in the services; the router additionally requires a valid
// session token for the whole group.
type AdminHandler struct {
	userService    service.UserService
	postService    service.PostService
	commentService service.CommentService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(userService service.UserService, postService service.PostService, commentService service.CommentService) *AdminHandler {
	return &AdminHandler{
		userService:    userService,
		postService:    postService,
		commentService: commentService,
	}
}

// ListUsers godoc
// @Summary List all users
// @Tags admin
// @Produce json
// @Success 200 {array} UserResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.userService.ListUsers(c.Request().Context(), currentUser(c))
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}

	resp := make([]UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, *toUserResponse(&users[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// DeleteUser godoc
// @Summary Delete a user and everything they own
// @Tags admin
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.userService.DeleteUser(c.Request().Context(), currentUser(c), id); err != nil {
		he := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "user deleted"})
}

// DeletePost godoc
// @Summary Delete a post and its comments
// @Tags admin
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /admin/posts/{id} [delete]
func (h *AdminHandler) DeletePost(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.postService.DeletePost(c.Request().Context(), currentUser(c), id); err != nil {
		he := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "post deleted"})
}

// DeleteComment godoc
// @Summary Delete a single comment
// @Tags admin
// @Produce json
// @Param id path int true "Comment ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /admin/comments/{id} [delete]
func (h *AdminHandler) DeleteComment(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.commentService.DeleteComment(c.Request().Context(), currentUser(c), id); err != nil {
		he := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "comment deleted"})
}
