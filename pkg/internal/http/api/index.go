package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/inklet-app/inklet/pkg/internal/services"
)

// Gate is the API surface. Every dependency is injected at startup;
// handlers hold no process-wide state.
type Gate struct {
	auth     *services.Auth
	identity services.IdentityVerifier
	accounts *services.Accounts
	posts    *services.Posts
	comments *services.Comments
	likes    *services.Likes
}

func NewGate(
	auth *services.Auth,
	identity services.IdentityVerifier,
	accounts *services.Accounts,
	posts *services.Posts,
	comments *services.Comments,
	likes *services.Likes,
) *Gate {
	return &Gate{
		auth:     auth,
		identity: identity,
		accounts: accounts,
		posts:    posts,
		comments: comments,
		likes:    likes,
	}
}

func (v *Gate) MapAPIs(app *fiber.App) {
	auth := app.Group("/auth")
	{
		auth.Post("/google", v.loginWithGoogle)
	}

	posts := app.Group("/posts")
	{
		posts.Get("/", v.listPosts)
		posts.Post("/", v.ensureAuthenticated, v.createPost)
		posts.Get("/:postId", v.getPost)
		posts.Put("/:postId", v.ensureAuthenticated, v.editPost)
		posts.Delete("/:postId", v.ensureAuthenticated, v.deletePost)
	}

	comments := app.Group("/comments")
	{
		comments.Get("/:postId", v.listComments)
		comments.Post("/:postId", v.ensureAuthenticated, v.createComment)
		comments.Put("/:commentId", v.ensureAuthenticated, v.editComment)
		comments.Delete("/:commentId", v.ensureAuthenticated, v.deleteComment)
	}

	likes := app.Group("/likes")
	{
		likes.Post("/:postId", v.ensureAuthenticated, v.likePost)
		likes.Delete("/:postId", v.ensureAuthenticated, v.unlikePost)
		likes.Get("/:postId/status", v.ensureAuthenticated, v.getLikeStatus)
	}
}

// ensureAuthenticated resolves the bearer credential to an account and
// stashes it in the request locals for downstream handlers.
func (v *Gate) ensureAuthenticated(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if len(header) == 0 || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
		return fiber.NewError(fiber.StatusUnauthorized, "missing bearer credential")
	}

	user, err := v.auth.Authenticate(strings.TrimSpace(header[len("bearer "):]))
	if err != nil {
		return remapServiceError(err)
	}

	c.Locals("user", user)
	return c.Next()
}

// remapServiceError translates the service failure taxonomy to HTTP.
// Duplicate likes stay 400 to preserve the original wire contract.
func remapServiceError(err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrUnauthenticated):
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrNotAuthorized):
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrAlreadyExists):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}
