package handlers

import (
	"fmt"

	"blogly/internal/metrics"
	"blogly/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for users.
type UserHandler struct {
	users      *services.UserService
	posts      *services.PostService
	report     reporter
	postReport reporter
}

// NewUserHandler creates a new UserHandler. publisher and m may be nil.
func NewUserHandler(users *services.UserService, posts *services.PostService, publisher EventPublisher, m *metrics.Metrics) *UserHandler {
	return &UserHandler{
		users:      users,
		posts:      posts,
		report:     reporter{entity: "user", publisher: publisher, metrics: m},
		postReport: reporter{entity: "post", publisher: publisher, metrics: m},
	}
}

// RegisterRoutes registers the user routes.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/", h.HandleListUsers)
	userRoutes.Post("/", h.HandleCreateUser)
	userRoutes.Get("/:id", h.HandleGetUser)
	userRoutes.Put("/:id", h.HandleUpdateUser)
	userRoutes.Delete("/:id", h.HandleDeleteUser)
	userRoutes.Get("/:id/posts", h.HandleListUserPosts)
	userRoutes.Post("/:id/posts", h.HandleCreatePost)
}

// HandleListUsers lists users by last name, then first name.
func (h *UserHandler) HandleListUsers(c *fiber.Ctx) error {
	users, err := h.users.ListUsers(c.UserContext())
	h.report.done("list", 0, err)
	if err != nil {
		return err
	}
	return c.JSON(users)
}

// HandleGetUser returns one user with its posts.
func (h *UserHandler) HandleGetUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	user, err := h.users.GetUser(c.UserContext(), id)
	h.report.done("get", id, err)
	if err != nil {
		return err
	}
	return c.JSON(user)
}

// HandleCreateUser creates a user.
func (h *UserHandler) HandleCreateUser(c *fiber.Ctx) error {
	var req services.CreateUserRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	user, err := h.users.CreateUser(c.UserContext(), req)
	if err != nil {
		h.report.done("create", 0, err)
		return err
	}
	h.report.done("create", user.ID, nil)
	return c.Status(fiber.StatusCreated).JSON(user)
}

// HandleUpdateUser replaces a user's names and image.
func (h *UserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req services.UpdateUserRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	req.ID = id
	user, err := h.users.UpdateUser(c.UserContext(), req)
	h.report.done("update", id, err)
	if err != nil {
		return err
	}
	return c.JSON(user)
}

// HandleDeleteUser deletes a user with its posts.
func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	err = h.users.DeleteUser(c.UserContext(), id)
	h.report.done("delete", id, err)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("User %d deleted successfully", id),
	})
}

// HandleListUserPosts lists one user's posts.
func (h *UserHandler) HandleListUserPosts(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	posts, err := h.posts.ListUserPosts(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(posts)
}

// HandleCreatePost creates a post owned by the user in the path.
func (h *UserHandler) HandleCreatePost(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req services.CreatePostRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	req.UserID = id
	post, result, err := h.posts.CreatePost(c.UserContext(), req)
	if err != nil {
		h.postReport.done("create", 0, err)
		return err
	}
	h.postReport.done("create", post.ID, nil)
	reportUnresolved(c, "post", post.ID, result.Unresolved)
	return c.Status(fiber.StatusCreated).JSON(post)
}
