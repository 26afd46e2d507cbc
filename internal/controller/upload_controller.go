package controller

import (
	"fmt"
	"time"

	"courseforge_backend/internal/service"
	"courseforge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UploadController struct {
	StorageService *service.StorageService
}

func NewUploadController(storageService *service.StorageService) *UploadController {
	return &UploadController{StorageService: storageService}
}

// Upload godoc
// @Summary Upload a lecture file (PDF, Word or PowerPoint)
// @Description Stores the file under a timestamped, sanitized name and returns
// @Description the public URL plus the fileType to use when creating a section.
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "file to upload"
// @Success 201 {object} util.Response{data=object}
// @Failure 400 {object} util.Response "No file uploaded / file type not allowed"
// @Failure 500 {object} util.Response
// @Router /api/instructor/upload [post]
func (c *UploadController) Upload(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "No file uploaded")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !util.AllowedUploadType(contentType, fileHeader.Filename) {
		util.BadRequest(ctx, "Only PDF, Word and PowerPoint files are allowed")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	storedName := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), util.SanitizeFilename(fileHeader.Filename))

	url, err := c.StorageService.Upload(ctx.Request.Context(), storedName, file, fileHeader.Size, contentType)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{
		"fileUrl":  url,
		"fileName": fileHeader.Filename,
		"fileSize": fileHeader.Size,
		"fileType": util.FileTypeFromName(fileHeader.Filename),
	})
}
