package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"nzwalks/internal/repository"
)

// parseID reads the :id route parameter, writing a 400 when it is not a UUID.
func parseID(c *fiber.Ctx) (uuid.UUID, bool, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, false, writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
	}
	return id, true, nil
}

// ListRegions godoc
// @Summary List regions
// @Tags regions
// @Produce json
// @Success 200 {array} RegionDTO
// @Router /api/regions [get]
func ListRegions(repo repository.RegionRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		regions, err := repo.GetAll(c.UserContext())
		if err != nil {
			return writeInternal(c, err)
		}
		return c.JSON(toRegionDTOs(regions))
	}
}

// GetRegion godoc
// @Summary Get a region
// @Tags regions
// @Produce json
// @Param id path string true "Region ID"
// @Success 200 {object} RegionDTO
// @Failure 404 {object} errorPayload
// @Router /api/regions/{id} [get]
func GetRegion(repo repository.RegionRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := parseID(c)
		if !ok {
			return err
		}
		region, err := repo.GetByID(c.UserContext(), id)
		if err != nil {
			return writeInternal(c, err)
		}
		if region == nil {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "region not found")
		}
		return c.JSON(toRegionDTO(*region))
	}
}

// CreateRegion godoc
// @Summary Create a region
// @Tags regions
// @Accept json
// @Produce json
// @Param body body RegionRequest true "Region"
// @Success 201 {object} RegionDTO
// @Failure 400 {object} errorPayload
// @Router /api/regions [post]
func CreateRegion(repo repository.RegionRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req RegionRequest
		if ok, err := bindJSON(c, &req); !ok {
			return err
		}
		region, err := repo.Create(c.UserContext(), req.toModel())
		if err != nil {
			return writeStoreError(c, err)
		}
		c.Location("/api/regions/" + region.ID.String())
		return c.Status(fiber.StatusCreated).JSON(toRegionDTO(*region))
	}
}

// UpdateRegion godoc
// @Summary Update a region
// @Tags regions
// @Accept json
// @Produce json
// @Param id path string true "Region ID"
// @Param body body RegionRequest true "Region"
// @Success 200 {object} RegionDTO
// @Failure 404 {object} errorPayload
// @Router /api/regions/{id} [put]
func UpdateRegion(repo repository.RegionRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := parseID(c)
		if !ok {
			return err
		}
		var req RegionRequest
		if ok, err := bindJSON(c, &req); !ok {
			return err
		}
		region, err := repo.Update(c.UserContext(), id, req.toModel())
		if err != nil {
			return writeStoreError(c, err)
		}
		if region == nil {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "region not found")
		}
		return c.JSON(toRegionDTO(*region))
	}
}

// DeleteRegion godoc
// @Summary Delete a region
// @Description Returns the deleted region. Regions that still have walks cannot be deleted.
// @Tags regions
// @Produce json
// @Param id path string true "Region ID"
// @Success 200 {object} RegionDTO
// @Failure 404 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Router /api/regions/{id} [delete]
func DeleteRegion(repo repository.RegionRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := parseID(c)
		if !ok {
			return err
		}
		region, err := repo.Delete(c.UserContext(), id)
		if err != nil {
			return writeStoreError(c, err)
		}
		if region == nil {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "region not found")
		}
		return c.JSON(toRegionDTO(*region))
	}
}
