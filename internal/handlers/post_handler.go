package handlers

import (
	"fmt"

	"blogly/internal/metrics"
	"blogly/internal/services"

	"github.com/gofiber/fiber/v2"
)

// PostHandler handles HTTP requests for posts. Posts are created through
// UserHandler because every post needs an owner.
type PostHandler struct {
	service *services.PostService
	report  reporter
}

// NewPostHandler creates a new PostHandler. publisher and m may be nil.
func NewPostHandler(service *services.PostService, publisher EventPublisher, m *metrics.Metrics) *PostHandler {
	return &PostHandler{
		service: service,
		report:  reporter{entity: "post", publisher: publisher, metrics: m},
	}
}

// RegisterRoutes registers the post routes.
func (h *PostHandler) RegisterRoutes(router fiber.Router) {
	postRoutes := router.Group("/posts")
	postRoutes.Get("/", h.HandleListPosts)
	postRoutes.Get("/recent", h.HandleListRecentPosts)
	postRoutes.Get("/:id", h.HandleGetPost)
	postRoutes.Put("/:id", h.HandleUpdatePost)
	postRoutes.Delete("/:id", h.HandleDeletePost)
}

// HandleListPosts lists all posts, newest first.
func (h *PostHandler) HandleListPosts(c *fiber.Ctx) error {
	posts, err := h.service.ListPosts(c.UserContext())
	h.report.done("list", 0, err)
	if err != nil {
		return err
	}
	return c.JSON(posts)
}

// HandleListRecentPosts lists the newest ?limit=N posts.
func (h *PostHandler) HandleListRecentPosts(c *fiber.Ctx) error {
	posts, err := h.service.ListRecentPosts(c.UserContext(), c.QueryInt("limit", 0))
	h.report.done("list", 0, err)
	if err != nil {
		return err
	}
	return c.JSON(posts)
}

// HandleGetPost returns one post with owner and tags.
func (h *PostHandler) HandleGetPost(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	post, err := h.service.GetPost(c.UserContext(), id)
	h.report.done("get", id, err)
	if err != nil {
		return err
	}
	return c.JSON(post)
}

// HandleUpdatePost replaces title, content and tag set.
func (h *PostHandler) HandleUpdatePost(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req services.UpdatePostRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	req.ID = id
	post, result, err := h.service.UpdatePost(c.UserContext(), req)
	h.report.done("update", id, err)
	if err != nil {
		return err
	}
	reportUnresolved(c, "post", id, result.Unresolved)
	return c.JSON(post)
}

// HandleDeletePost deletes a post and its tag links.
func (h *PostHandler) HandleDeletePost(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	err = h.service.DeletePost(c.UserContext(), id)
	h.report.done("delete", id, err)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Post %d deleted successfully", id),
	})
}
