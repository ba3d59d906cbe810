package handler

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"

	"avion/internal/infrastructure/storage"
	"avion/internal/usecase"
	"avion/pkg/errors"
	"avion/pkg/logger"
	"avion/pkg/response"
)

type FileHandler struct {
	storageClient  *storage.CloudStorageClient
	catalogUseCase *usecase.CatalogUseCase
	maxFileSize    int64
}

func NewFileHandler(storageClient *storage.CloudStorageClient, catalogUseCase *usecase.CatalogUseCase) *FileHandler {
	return &FileHandler{
		storageClient:  storageClient,
		catalogUseCase: catalogUseCase,
		maxFileSize:    5 * 1024 * 1024,
	}
}

var fileHandler *FileHandler

func SetupFileHandler(storageClient *storage.CloudStorageClient, catalogUseCase *usecase.CatalogUseCase) {
	fileHandler = NewFileHandler(storageClient, catalogUseCase)
}

func GetFileHandler() *FileHandler {
	return fileHandler
}

// UploadProductImage stores an image in the bucket and records its URL on the product.
func (h *FileHandler) UploadProductImage(c echo.Context) error {
	logger.Debug("Starting product image upload handler")

	file, err := c.FormFile("file")
	if err != nil {
		logger.Error("Error getting file from form: %v", err)
		return response.Error(c, errors.BadRequest("Missing or invalid file", err))
	}

	logger.Debug("Received file: %s, size: %d bytes, type: %s", file.Filename, file.Size, file.Header.Get("Content-Type"))

	if file.Size > h.maxFileSize {
		logger.Warn("File too large: %d bytes (max: %d)", file.Size, h.maxFileSize)
		return response.Error(c, errors.BadRequest(fmt.Sprintf("File size exceeds maximum allowed (%dMB)", h.maxFileSize/(1024*1024)), nil))
	}

	fileType := file.Header.Get("Content-Type")
	if !isAllowedImageType(fileType) {
		logger.Warn("Invalid file type: %s", fileType)
		return response.Error(c, errors.BadRequest("File type not supported", nil))
	}

	src, err := file.Open()
	if err != nil {
		logger.Error("Error opening uploaded file: %v", err)
		return response.Error(c, errors.Internal("Failed to read uploaded file", err))
	}
	defer src.Close()

	imageURL, err := h.storageClient.UploadImage(c.Request().Context(), src, fileType)
	if err != nil {
		logger.Error("Error uploading to storage: %v", err)
		return response.Error(c, errors.Internal("Failed to store image", err))
	}

	product, err := h.catalogUseCase.SetProductImage(c.Request().Context(), c.Param("id"), imageURL)
	if err != nil {
		// Orphaned object, the product was not found or not updated
		if delErr := h.storageClient.DeleteImage(c.Request().Context(), imageURL); delErr != nil {
			logger.Warn("Failed to clean up uploaded image %s: %v", imageURL, delErr)
		}
		return response.Error(c, err)
	}

	logger.Info("Product %s image updated: %s", product.ID, imageURL)

	return response.Success(c, product)
}

func isAllowedImageType(fileType string) bool {
	allowed := []string{"image/jpeg", "image/png", "image/gif", "image/webp"}
	for _, t := range allowed {
		if strings.EqualFold(fileType, t) {
			return true
		}
	}
	return false
}
