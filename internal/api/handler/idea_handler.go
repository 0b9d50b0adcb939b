package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ideadrop/content-api/internal/core/ports"
)

type IdeaHandler struct {
	service ports.IdeaService
}

func NewIdeaHandler(service ports.IdeaService) *IdeaHandler {
	return &IdeaHandler{service: service}
}

// tagList accepts either a JSON array of strings or a single
// comma-separated string, mirroring what web and mobile clients send.
type tagList []string

func (t *tagList) UnmarshalJSON(data []byte) error {
	var asArray []string
	if err := json.Unmarshal(data, &asArray); err == nil {
		*t = asArray
		return nil
	}
	var asString string
	if err := json.Unmarshal(data, &asString); err != nil {
		return err
	}
	parts := strings.Split(asString, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	*t = out
	return nil
}

type createIdeaRequest struct {
	Title       string  `json:"title"`
	Summary     string  `json:"summary"`
	Description string  `json:"description"`
	Tags        tagList `json:"tags"`
}

type updateIdeaRequest struct {
	Title       string  `json:"title"`
	Summary     string  `json:"summary"`
	Description string  `json:"description"`
	Tags        tagList `json:"tags"`
}

// List handles GET /api/v1/ideas, newest first, capped by the _limit query
// parameter (default 10).
//
// @Summary      List ideas
// @Tags         ideas
// @Produce      json
// @Param        _limit  query     int  false  "Maximum number of ideas (default 10)"
// @Success      200     {object}  messageResponse
// @Failure      400     {object}  errorResponse
// @Router       /ideas [get]
func (h *IdeaHandler) List(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("_limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		limit = n
	}

	ideas, err := h.service.List(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Ideas fetched successfully", Data: ideas})
}

// Get handles GET /api/v1/ideas/:id.
//
// @Summary      Get an idea
// @Tags         ideas
// @Produce      json
// @Param        id   path      string  true  "Idea ID"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /ideas/{id} [get]
func (h *IdeaHandler) Get(c echo.Context) error {
	idea, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Idea fetched successfully", Data: idea})
}

// Create handles POST /api/v1/ideas. The authenticated requester becomes the
// owner.
//
// @Summary      Create an idea
// @Tags         ideas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createIdeaRequest  true  "Idea fields"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /ideas [post]
func (h *IdeaHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createIdeaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	idea, err := h.service.Create(c.Request().Context(), ports.CreateIdeaInput{
		Title:       req.Title,
		Summary:     req.Summary,
		Description: req.Description,
		Tags:        req.Tags,
	}, user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, messageResponse{Message: "Idea created successfully", Data: idea})
}

// Update handles PUT /api/v1/ideas/:id. Only the owner may update.
//
// @Summary      Update an idea
// @Tags         ideas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Idea ID"
// @Param        body  body      updateIdeaRequest  true  "Fields to update"
// @Success      200   {object}  messageResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /ideas/{id} [put]
func (h *IdeaHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateIdeaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	idea, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateIdeaInput{
		Title:       req.Title,
		Summary:     req.Summary,
		Description: req.Description,
		Tags:        req.Tags,
	}, user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Idea updated successfully", Data: idea})
}

// Delete handles DELETE /api/v1/ideas/:id. Only the owner may delete.
//
// @Summary      Delete an idea
// @Tags         ideas
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Idea ID"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /ideas/{id} [delete]
func (h *IdeaHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), user.ID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Idea deleted successfully", Data: map[string]any{}})
}
