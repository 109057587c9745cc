package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"mental-health-support/config"
	"mental-health-support/internal/chat"
	"mental-health-support/internal/lexicon"
	"mental-health-support/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Engine
	lexicon *lexicon.Store

	// Optional generative reply path; nil means template-only composition.
	llm chat.ReplyGenerator

	// Transport protections
	rateLimit config.RateLimitConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	Lexicon   *lexicon.Store
	LLM       chat.ReplyGenerator
	RateLimit config.RateLimitConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		lexicon:     cfg.Lexicon,
		llm:         cfg.LLM,
		rateLimit:   cfg.RateLimit,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.lexicon == nil {
		return errors.New("lexicon store is required")
	}
	return nil
}
