package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"nzwalks/internal/repository"
)

// parseTrailQuery reads the list parameters. Field names are passed through
// untouched; the repository ignores any it does not recognise.
func parseTrailQuery(c *fiber.Ctx) (repository.TrailQuery, string) {
	q := repository.DefaultTrailQuery()
	q.FilterOn = c.Query("filterOn")
	q.FilterQuery = c.Query("filterQuery")
	q.SortBy = c.Query("sortBy")

	if v := c.Query("isAscending"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return q, "isAscending must be a boolean"
		}
		q.IsAscending = b
	}
	if v := c.Query("pageNumber"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return q, "pageNumber must be an integer"
		}
		q.PageNumber = n
	}
	if v := c.Query("pageSize"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return q, "pageSize must be an integer"
		}
		q.PageSize = n
	}
	return q, ""
}

// ListWalks godoc
// @Summary List walks
// @Description Filter, sort and page walks. Unknown filterOn or sortBy values are ignored.
// @Tags walks
// @Produce json
// @Param filterOn query string false "Filter field (Name)"
// @Param filterQuery query string false "Case-insensitive substring"
// @Param sortBy query string false "Sort field (Name, Length)"
// @Param isAscending query bool false "Sort direction" default(true)
// @Param pageNumber query int false "1-based page" default(1)
// @Param pageSize query int false "Page size" default(1000)
// @Success 200 {array} WalkDTO
// @Failure 400 {object} errorPayload
// @Router /api/walks [get]
func ListWalks(repo repository.TrailRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q, problem := parseTrailQuery(c)
		if problem != "" {
			return writeError(c, fiber.StatusBadRequest, "INVALID_QUERY", problem)
		}
		walks, err := repo.GetAll(c.UserContext(), q)
		if err != nil {
			return writeInternal(c, err)
		}
		return c.JSON(toWalkDTOs(walks))
	}
}

// GetWalk godoc
// @Summary Get a walk
// @Tags walks
// @Produce json
// @Param id path string true "Walk ID"
// @Success 200 {object} WalkDTO
// @Failure 404 {object} errorPayload
// @Router /api/walks/{id} [get]
func GetWalk(repo repository.TrailRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := parseID(c)
		if !ok {
			return err
		}
		walk, err := repo.GetByID(c.UserContext(), id)
		if err != nil {
			return writeInternal(c, err)
		}
		if walk == nil {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "walk not found")
		}
		return c.JSON(toWalkDTO(*walk))
	}
}

// CreateWalk godoc
// @Summary Create a walk
// @Tags walks
// @Accept json
// @Produce json
// @Param body body WalkRequest true "Walk"
// @Success 200 {object} WalkDTO
// @Failure 400 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Router /api/walks [post]
func CreateWalk(repo repository.TrailRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req WalkRequest
		if ok, err := bindJSON(c, &req); !ok {
			return err
		}
		walk, err := repo.Create(c.UserContext(), req.toModel())
		if err != nil {
			return writeStoreError(c, err)
		}
		return c.JSON(toWalkDTO(*walk))
	}
}

// UpdateWalk godoc
// @Summary Replace a walk
// @Tags walks
// @Accept json
// @Produce json
// @Param id path string true "Walk ID"
// @Param body body WalkRequest true "Walk"
// @Success 200 {object} WalkDTO
// @Failure 404 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Router /api/walks/{id} [put]
func UpdateWalk(repo repository.TrailRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := parseID(c)
		if !ok {
			return err
		}
		var req WalkRequest
		if ok, err := bindJSON(c, &req); !ok {
			return err
		}
		walk, err := repo.Update(c.UserContext(), id, req.toModel())
		if err != nil {
			return writeStoreError(c, err)
		}
		if walk == nil {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "walk not found")
		}
		return c.JSON(toWalkDTO(*walk))
	}
}

// DeleteWalk godoc
// @Summary Delete a walk
// @Tags walks
// @Produce json
// @Param id path string true "Walk ID"
// @Success 200 {object} WalkDTO
// @Failure 404 {object} errorPayload
// @Router /api/walks/{id} [delete]
func DeleteWalk(repo repository.TrailRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := parseID(c)
		if !ok {
			return err
		}
		walk, err := repo.Delete(c.UserContext(), id)
		if err != nil {
			return writeStoreError(c, err)
		}
		if walk == nil {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "walk not found")
		}
		return c.JSON(toWalkDTO(*walk))
	}
}
