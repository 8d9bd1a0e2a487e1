package handlers

import (
	"fmt"

	"blogly/internal/metrics"
	"blogly/internal/services"

	"github.com/gofiber/fiber/v2"
)

// TagHandler handles HTTP requests for tags.
type TagHandler struct {
	service *services.TagService
	report  reporter
}

// NewTagHandler creates a new TagHandler. publisher and m may be nil.
func NewTagHandler(service *services.TagService, publisher EventPublisher, m *metrics.Metrics) *TagHandler {
	return &TagHandler{
		service: service,
		report:  reporter{entity: "tag", publisher: publisher, metrics: m},
	}
}

// RegisterRoutes registers the tag routes.
func (h *TagHandler) RegisterRoutes(router fiber.Router) {
	tagRoutes := router.Group("/tags")
	tagRoutes.Get("/", h.HandleListTags)
	tagRoutes.Post("/", h.HandleCreateTag)
	tagRoutes.Get("/:id", h.HandleGetTag)
	tagRoutes.Put("/:id", h.HandleUpdateTag)
	tagRoutes.Delete("/:id", h.HandleDeleteTag)
}

// HandleListTags lists tags by name.
func (h *TagHandler) HandleListTags(c *fiber.Ctx) error {
	tags, err := h.service.ListTags(c.UserContext())
	h.report.done("list", 0, err)
	if err != nil {
		return err
	}
	return c.JSON(tags)
}

// HandleGetTag returns one tag with its posts.
func (h *TagHandler) HandleGetTag(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	tag, err := h.service.GetTag(c.UserContext(), id)
	h.report.done("get", id, err)
	if err != nil {
		return err
	}
	return c.JSON(tag)
}

// HandleCreateTag creates a tag and links the posts named by title.
func (h *TagHandler) HandleCreateTag(c *fiber.Ctx) error {
	var req services.CreateTagRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	tag, result, err := h.service.CreateTag(c.UserContext(), req)
	if err != nil {
		h.report.done("create", 0, err)
		return err
	}
	h.report.done("create", tag.ID, nil)
	reportUnresolved(c, "tag", tag.ID, result.Unresolved)
	return c.Status(fiber.StatusCreated).JSON(tag)
}

// HandleUpdateTag renames a tag and replaces its post set.
func (h *TagHandler) HandleUpdateTag(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req services.UpdateTagRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	req.ID = id
	tag, result, err := h.service.UpdateTag(c.UserContext(), req)
	h.report.done("update", id, err)
	if err != nil {
		return err
	}
	reportUnresolved(c, "tag", id, result.Unresolved)
	return c.JSON(tag)
}

// HandleDeleteTag deletes a tag and its post links.
func (h *TagHandler) HandleDeleteTag(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	err = h.service.DeleteTag(c.UserContext(), id)
	h.report.done("delete", id, err)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Tag %d deleted successfully", id),
	})
}
