package documents

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cardrequest-backend/internal/shared/server/middleware"
	"cardrequest-backend/internal/shared/server/respond"
)

const (
	maxUploadSize = 10 << 20 // 10MB
	maxMemory     = 1 << 20
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches document routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/documents", h.upload)
	rg.GET("/documents/categories", h.categories)
}

// RegisterAdminRoutes attaches the stored document download.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/documents", h.download)
}

func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize+1<<20)
	if err := c.Request.ParseMultipartForm(maxMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respond.Error(c, http.StatusRequestEntityTooLarge, "file_too_large", "file exceeds 10MB", nil)
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid multipart body", nil)
		return
	}

	category := c.PostForm("category")
	c.Set(middleware.DocumentCategoryKey, category)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}
	if fileHeader.Size > maxUploadSize {
		respond.Error(c, http.StatusRequestEntityTooLarge, "file_too_large", "file exceeds 10MB", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	doc, err := h.Svc.Save(c.Request.Context(), category, fileHeader.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to store document", nil)
		}
		return
	}

	respond.Created(c, toResponse(doc))
}

func (h *Handler) categories(c *gin.Context) {
	cats := Categories()
	out := make([]CategoryResponse, 0, len(cats))
	for _, cat := range cats {
		out = append(out, CategoryResponse{Name: cat.Name, Extensions: cat.Extensions})
	}
	respond.OK(c, out)
}

func (h *Handler) download(c *gin.Context) {
	fileName, body, err := h.Svc.Open(c.Request.Context(), c.Query("path"))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read document", nil)
		}
		return
	}
	respond.Attachment(c, fileName, http.DetectContentType(body), body)
}
