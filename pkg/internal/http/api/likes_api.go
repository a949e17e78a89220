package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inklet-app/inklet/pkg/internal/models"
)

func (v *Gate) likePost(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	postId, _ := c.ParamsInt("postId", 0)

	item, err := v.likes.LikePost(uint(postId), user)
	if err != nil {
		return remapServiceError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "post liked",
		"like":    item,
	})
}

func (v *Gate) unlikePost(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	postId, _ := c.ParamsInt("postId", 0)

	if err := v.likes.UnlikePost(uint(postId), user); err != nil {
		return remapServiceError(err)
	}

	return c.JSON(fiber.Map{
		"message": "post unliked",
	})
}

func (v *Gate) getLikeStatus(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	postId, _ := c.ParamsInt("postId", 0)

	liked, err := v.likes.IsLiked(uint(postId), user)
	if err != nil {
		return remapServiceError(err)
	}

	return c.JSON(fiber.Map{
		"is_liked": liked,
	})
}
