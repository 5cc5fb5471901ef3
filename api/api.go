package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/obarcalifa/studentdash-api/utils/response"
)

type APIServer struct {
	app           *fiber.App
	listenAddress string
}

func NewAPIServer(listenAddress string) *APIServer {
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	return &APIServer{
		app:           app,
		listenAddress: listenAddress,
	}
}

func (s *APIServer) GetEngine() *fiber.App {
	return s.app
}

func (s *APIServer) Run() error {
	log.Println("Starting API Server")
	log.Printf("Listening on %s", s.listenAddress)

	return s.app.Listen(s.listenAddress)
}

// errorHandler converts fiber-level errors into the structured response
// envelope. Wrong-method requests on a known path get a 405 body instead of
// fiber's plain text default.
func errorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		switch fiberErr.Code {
		case fiber.StatusMethodNotAllowed:
			return response.MethodNotAllowed(c, "")
		case fiber.StatusNotFound:
			return response.NotFound(c, "")
		default:
			return response.Error(c, fiberErr.Code, fiberErr.Message, response.CodeBadRequest)
		}
	}

	return response.InternalServerError(c, "")
}
