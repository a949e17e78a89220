package http

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/inklet-app/inklet/pkg/internal/http/api"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Server struct {
	app *fiber.App
}

func NewServer(gate *api.Gate) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		EnableIPValidation:    true,
		ServerHeader:          "Inklet",
		AppName:               "Inklet",
		JSONEncoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Marshal,
		JSONDecoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal,
		BodyLimit:             1 * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"message": err.Error(),
			})
		},
	})

	app.Use(func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Debug().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("took", time.Since(start)).
			Msg("Handled request.")
		return err
	})

	if origins := viper.GetStringSlice("security.cors_origins"); len(origins) > 0 {
		app.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Join(origins, ","),
			AllowCredentials: true,
		}))
	} else {
		app.Use(cors.New())
	}

	gate.MapAPIs(app)

	return &Server{app: app}
}

// App exposes the underlying fiber app, mainly for in-process tests.
func (v *Server) App() *fiber.App {
	return v.app
}

func (v *Server) Listen() {
	if err := v.app.Listen(viper.GetString("bind")); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when starting server...")
	}
}

func (v *Server) Shutdown() error {
	return v.app.Shutdown()
}
