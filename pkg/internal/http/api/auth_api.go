package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inklet-app/inklet/pkg/internal/http/exts"
)

func (v *Gate) loginWithGoogle(c *fiber.Ctx) error {
	var data struct {
		Token string `json:"token" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if v.identity == nil {
		return fiber.NewError(fiber.StatusUnauthorized, "identity provider is unavailable")
	}

	payload, err := v.identity.VerifyIDToken(c.Context(), data.Token)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}

	user, err := v.accounts.ResolveOrCreate(payload)
	if err != nil {
		return remapServiceError(err)
	}

	token, err := v.auth.IssueToken(user)
	if err != nil {
		return remapServiceError(err)
	}

	return c.JSON(fiber.Map{
		"message": "login successful",
		"token":   token,
		"user":    user,
	})
}
