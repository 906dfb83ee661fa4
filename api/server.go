package api

import (
	"io"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

const DefaultAddress = "localhost:8080"

// Server exposes move generation and position export over HTTP.
type Server struct {
	app  *fiber.App
	addr string
}

type serverConfig struct {
	addr         string
	allowOrigins string
	logOutput    io.Writer
}

type ServerOption func(*serverConfig)

func WithAddress(addr string) ServerOption {
	return func(cfg *serverConfig) {
		cfg.addr = addr
	}
}

// WithAllowOrigins sets the CORS origins, comma separated.
func WithAllowOrigins(origins string) ServerOption {
	return func(cfg *serverConfig) {
		cfg.allowOrigins = origins
	}
}

// WithLogOutput redirects the request log.
func WithLogOutput(w io.Writer) ServerOption {
	return func(cfg *serverConfig) {
		cfg.logOutput = w
	}
}

func NewServer(opts ...ServerOption) *Server {
	cfg := &serverConfig{
		addr:         DefaultAddress,
		allowOrigins: "*",
		logOutput:    os.Stdout,
	}
	for _, f := range opts {
		f(cfg)
	}

	app := fiber.New(fiber.Config{
		AppName:               "kestrel",
		DisableStartupMessage: true,
		ErrorHandler:          handleError,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} ${method} ${path}?${queryParams} ${latency}\n",
		Output: cfg.logOutput,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.allowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, OPTIONS",
	}))

	app.Get("/moves", handleMoves)
	app.Get("/position", handlePosition)
	app.Use("/ws", requireUpgrade)
	app.Get("/ws", websocket.New(handleStream))

	return &Server{app: app, addr: cfg.addr}
}

func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Addr() string {
	return s.addr
}

// Listen blocks until the server stops.
func (s *Server) Listen() error {
	return s.app.Listen(s.addr)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func requireUpgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	return c.Next()
}

func handleError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(errorResponse{Error: err.Error()})
}
