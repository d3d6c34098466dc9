package assets

import (
	"os"
	"path/filepath"
	"strings"

	"ghost-storage-gcs/core/ghost"
	"ghost-storage-gcs/core/logger"
	"ghost-storage-gcs/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for assets.
type Handler struct {
	service    *Service
	imagesPath string
}

// NewHandler creates a new HTTP handler. imagesPath is the public route prefix
// of stored images, e.g. /content/images.
func NewHandler(service *Service, imagesPath string) *Handler {
	return &Handler{service: service, imagesPath: strings.TrimSuffix(imagesPath, "/")}
}

// RegisterRoutes registers the asset routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/assets")
	group.Post("/", h.HandleSave)
	group.Get("/exists", h.HandleExists)
	group.Get("/read", h.HandleRead)
	group.Delete("/", h.HandleDelete)

	if h.imagesPath != "" {
		app.Use(h.imagesPath, h.service.store.Serve())
		app.Get(h.imagesPath+"/*", h.HandleImage)
	}
}

// HandleSave stores an uploaded file.
// @Summary Save Asset
// @Description Uploads a file to the bucket under a unique, date-bucketed name.
// @Tags assets
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to store"
// @Param type formData string false "MIME type, defaults to the part's Content-Type"
// @Success 200 {object} map[string]string "Public URL"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /assets [post]
func (h *Handler) HandleSave(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing file"})
	}

	tmp, err := os.CreateTemp("", "asset-*"+filepath.Ext(fh.Filename))
	if err != nil {
		l.Error("Failed to create temp file", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	tmpPath := tmp.Name()
	_ = tmp.Close()
	defer os.Remove(tmpPath)

	if err := c.SaveFile(fh, tmpPath); err != nil {
		l.Error("Failed to buffer upload", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	contentType := c.FormValue("type")
	if contentType == "" {
		contentType = fh.Header.Get("Content-Type")
	}

	url, err := h.service.Save(c.Context(), ghost.Asset{
		Path: tmpPath,
		Name: fh.Filename,
		Type: contentType,
	})
	if err != nil {
		l.Error("Save failed", zap.Error(err), zap.String("name", fh.Filename))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"url": url})
}

// HandleExists checks whether an object exists.
// @Summary Asset Exists
// @Description Checks whether filename exists, optionally inside dir.
// @Tags assets
// @Produce json
// @Param filename query string true "File name"
// @Param dir query string false "Target directory"
// @Success 200 {object} map[string]bool "Existence"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /assets/exists [get]
func (h *Handler) HandleExists(c *fiber.Ctx) error {
	filename := c.Query("filename")
	if filename == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "filename is required"})
	}

	ok, err := h.service.Exists(c.Context(), filename, c.Query("dir"))
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Exists failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"exists": ok})
}

// HandleRead returns the raw content of an object.
// @Summary Read Asset
// @Description Streams the object at path back to the caller.
// @Tags assets
// @Produce octet-stream
// @Param path query string true "Object path"
// @Success 200 {file} file "Object content"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /assets/read [get]
func (h *Handler) HandleRead(c *fiber.Ctx) error {
	path := c.Query("path")
	if path == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "path is required"})
	}

	data, err := h.service.Read(c.Context(), path)
	if err != nil {
		if storage.IsNotExist(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
		}
		logger.WithRayID(h.service.logger, c).Error("Read failed", zap.Error(err), zap.String("path", path))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if ext := filepath.Ext(path); ext != "" {
		c.Type(strings.TrimPrefix(ext, "."))
	} else {
		c.Type("bin")
	}
	return c.Send(data)
}

// HandleDelete removes an object.
// @Summary Delete Asset
// @Description Deletes filename, optionally inside dir.
// @Tags assets
// @Produce json
// @Param filename query string true "File name"
// @Param dir query string false "Target directory"
// @Success 200 {object} map[string]bool "Deleted"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /assets [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	filename := c.Query("filename")
	if filename == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "filename is required"})
	}

	ok, err := h.service.Delete(c.Context(), filename, c.Query("dir"))
	if err != nil {
		if storage.IsNotExist(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
		}
		logger.WithRayID(h.service.logger, c).Error("Delete failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"deleted": ok})
}

// HandleImage sends the client to the absolute asset URL.
func (h *Handler) HandleImage(c *fiber.Ctx) error {
	return c.Redirect(h.service.URL(c.Params("*")), fiber.StatusFound)
}
