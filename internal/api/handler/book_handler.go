package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ideadrop/content-api/internal/core/ports"
)

type BookHandler struct {
	service ports.BookService
}

func NewBookHandler(service ports.BookService) *BookHandler {
	return &BookHandler{service: service}
}

type createBookRequest struct {
	Name    string `json:"name"    validate:"required"`
	Caption string `json:"caption" validate:"required"`
	Author  string `json:"author"  validate:"required"`
	Rating  int    `json:"rating"  validate:"required,min=1,max=5"`
	Image   string `json:"image"`
}

// List handles GET /api/v1/books.
//
// @Summary      List books
// @Tags         books
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /books [get]
func (h *BookHandler) List(c echo.Context) error {
	books, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Books fetched successfully", Data: books})
}

// Create handles POST /api/v1/books. A base64 image is uploaded to the media
// host; an http(s) URL is stored as-is.
//
// @Summary      Create a book
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        body  body      createBookRequest  true  "Book fields"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Router       /books [post]
func (h *BookHandler) Create(c echo.Context) error {
	var req createBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	book, err := h.service.Create(c.Request().Context(), ports.CreateBookInput{
		Name:    req.Name,
		Caption: req.Caption,
		Author:  req.Author,
		Rating:  req.Rating,
		Image:   req.Image,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, messageResponse{Message: "Book created successfully", Data: book})
}
