package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inklet-app/inklet/pkg/internal/http/exts"
	"github.com/inklet-app/inklet/pkg/internal/models"
)

func (v *Gate) listComments(c *fiber.Ctx) error {
	postId, _ := c.ParamsInt("postId", 0)

	items, err := v.comments.ListForPost(uint(postId))
	if err != nil {
		return remapServiceError(err)
	}
	return c.JSON(items)
}

func (v *Gate) createComment(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	postId, _ := c.ParamsInt("postId", 0)

	var data struct {
		Content string `json:"content" validate:"required,max=500"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := v.comments.Add(uint(postId), user, data.Content)
	if err != nil {
		return remapServiceError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

func (v *Gate) editComment(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("commentId", 0)

	var data struct {
		Content string `json:"content" validate:"required,max=500"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := v.comments.Edit(uint(id), user, data.Content)
	if err != nil {
		return remapServiceError(err)
	}

	return c.JSON(item)
}

func (v *Gate) deleteComment(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("commentId", 0)

	if err := v.comments.Delete(uint(id), user); err != nil {
		return remapServiceError(err)
	}

	return c.JSON(fiber.Map{
		"message": "comment deleted",
	})
}
