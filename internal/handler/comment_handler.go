package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"miniblog/internal/errors"
	"miniblog/internal/service"
)

// CommentHandler handles comment endpoints.
type CommentHandler struct {
	commentService service.CommentService
}

// NewCommentHandler creates a new comment handler.
func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// CreateCommentRequest represents a comment creation request. GuestName is
// only honored for anonymous requests; ParentID marks a reply.
type CreateCommentRequest struct {
	Content   string `json:"content" validate:"required"`
	GuestName string `json:"guest_name"`
	ParentID  *uint  `json:"parent_id"`
}

// ListComments godoc
// @Summary List a post's comments, newest first, 5 per page
// @Tags comments
// @Produce json
// @Param id path int true "Post ID"
// @Param page query int false "Page number (1-based)"
// @Success 200 {array} CommentResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts/{id}/comments [get]
func (h *CommentHandler) ListComments(c echo.Context) error {
	postID, err := parseID(c)
	if err != nil {
		return err
	}

	page := 1
	if raw := c.QueryParam("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid page")
		}
	}

	comments, err := h.commentService.ListComments(c.Request().Context(), postID, page)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}

	resp := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		resp = append(resp, toCommentResponse(&comments[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// CreateComment godoc
// @Summary Comment on a post
// @Description Logged-in users comment as themselves; anonymous visitors may
// @Description comment under a free-text guest name.
// @Tags comments
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param request body CreateCommentRequest true "Comment payload"
// @Success 201 {object} CommentResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /posts/{id}/comments [post]
func (h *CommentHandler) CreateComment(c echo.Context) error {
	postID, err := parseID(c)
	if err != nil {
		return err
	}

	var req CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.commentService.CreateComment(
		c.Request().Context(), currentUser(c), postID, req.Content, req.GuestName, req.ParentID)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, toCommentResponse(comment))
}
