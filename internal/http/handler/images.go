package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"nzwalks/internal/service"
)

// ImageUploadRequest holds the non-file form fields of an upload.
type ImageUploadRequest struct {
	FileName        string `form:"fileName" validate:"required,max=255"`
	FileDescription string `form:"fileDescription" validate:"max=1000"`
}

// UploadImage godoc
// @Summary Upload a walk image
// @Description Accepts .jpg, .jpeg or .png files up to the configured size limit.
// @Tags images
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Param fileName formData string true "Display name"
// @Param fileDescription formData string false "Description"
// @Success 201 {object} service.ImageResult
// @Failure 400 {object} errorPayload
// @Failure 413 {object} errorPayload
// @Router /api/images/upload [post]
func UploadImage(svc service.ImageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		req := ImageUploadRequest{FileName: c.FormValue("fileName"), FileDescription: c.FormValue("fileDescription")}
		if details := validateStruct(req); details != nil {
			return writeErrorDetails(c, fiber.StatusBadRequest, "VALIDATION_FAILED", "request validation failed", details)
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		in := service.UploadInput{
			File:             f,
			OriginalFilename: fh.Filename,
			FileName:         req.FileName,
			Size:             fh.Size,
		}
		if req.FileDescription != "" {
			in.FileDescription = &req.FileDescription
		}

		res, err := svc.Upload(c.UserContext(), in)
		switch {
		case err == nil:
			c.Location("/api/images/" + res.Image.ID.String())
			return c.Status(fiber.StatusCreated).JSON(res)
		case errors.Is(err, service.ErrFileTooLarge):
			return writeError(c, fiber.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", err.Error())
		case errors.Is(err, service.ErrUnsupportedExtension), errors.Is(err, service.ErrInvalidImage):
			return writeErrorDetails(c, fiber.StatusBadRequest, "VALIDATION_FAILED", "request validation failed",
				[]fieldError{{Field: "file", Message: err.Error()}})
		default:
			return writeInternal(c, err)
		}
	}
}

// GetImage godoc
// @Summary Get image metadata and download URLs
// @Tags images
// @Produce json
// @Param id path string true "Image ID"
// @Success 200 {object} service.ImageResult
// @Failure 404 {object} errorPayload
// @Router /api/images/{id} [get]
func GetImage(svc service.ImageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := parseID(c)
		if !ok {
			return err
		}
		res, err := svc.Get(c.UserContext(), id)
		if errors.Is(err, service.ErrNotFound) {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "image not found")
		}
		if err != nil {
			return writeInternal(c, err)
		}
		return c.JSON(res)
	}
}

// DownloadImage godoc
// @Summary Stream the original image
// @Tags images
// @Produce image/jpeg,image/png
// @Param id path string true "Image ID"
// @Success 200 {file} binary
// @Failure 404 {object} errorPayload
// @Router /api/images/{id}/content [get]
func DownloadImage(svc service.ImageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := parseID(c)
		if !ok {
			return err
		}
		rc, img, err := svc.Open(c.UserContext(), id)
		if errors.Is(err, service.ErrNotFound) {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "image not found")
		}
		if err != nil {
			return writeInternal(c, err)
		}
		c.Set(fiber.HeaderContentType, img.ContentType)
		c.Set(fiber.HeaderContentDisposition, `inline; filename="`+img.ID.String()+img.FileExtension+`"`)
		// fasthttp closes rc once the body has been written.
		return c.SendStream(rc, int(img.FileSizeInBytes))
	}
}

