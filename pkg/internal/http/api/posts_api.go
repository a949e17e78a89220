package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inklet-app/inklet/pkg/internal/http/exts"
	"github.com/inklet-app/inklet/pkg/internal/models"
	"github.com/inklet-app/inklet/pkg/internal/services"
)

func (v *Gate) listPosts(c *fiber.Ctx) error {
	items, err := v.posts.List()
	if err != nil {
		return remapServiceError(err)
	}
	return c.JSON(items)
}

func (v *Gate) getPost(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("postId", 0)

	item, err := v.posts.Get(uint(id))
	if err != nil {
		return remapServiceError(err)
	}
	return c.JSON(item)
}

func (v *Gate) createPost(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	var data struct {
		Title   string `json:"title" validate:"required,max=1024"`
		Content string `json:"content" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := v.posts.New(user, data.Title, data.Content)
	if err != nil {
		return remapServiceError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

func (v *Gate) editPost(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("postId", 0)

	var data struct {
		Title   *string `json:"title" validate:"omitempty,max=1024"`
		Content *string `json:"content"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := v.posts.Edit(uint(id), user, services.PostPatch{
		Title:   data.Title,
		Content: data.Content,
	})
	if err != nil {
		return remapServiceError(err)
	}

	return c.JSON(item)
}

func (v *Gate) deletePost(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	id, _ := c.ParamsInt("postId", 0)

	if err := v.posts.Delete(uint(id), user); err != nil {
		return remapServiceError(err)
	}

	return c.JSON(fiber.Map{
		"message": "post deleted",
	})
}
