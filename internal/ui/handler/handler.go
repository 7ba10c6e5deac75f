package handler

import (
	"log/slog"

	"coincompare/pkg/types/rates"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

var (
	ErrNilEngine = errors.New("engine is required")
	ErrNilRates  = errors.New("rate provider is required")
	ErrNilLogger = errors.New("logger is required")
)

type WebHandler struct {
	engine       *gin.Engine
	rates        rates.Provider
	logger       *slog.Logger
	renderer     *Renderer
	templatesDir string
}

type Option func(*WebHandler)

func WithEngine(engine *gin.Engine) Option {
	return func(h *WebHandler) {
		h.engine = engine
	}
}

func WithRates(p rates.Provider) Option {
	return func(h *WebHandler) {
		h.rates = p
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(h *WebHandler) {
		h.logger = l
	}
}

func WithTemplatesDir(dir string) Option {
	return func(h *WebHandler) {
		h.templatesDir = dir
	}
}

func New(opts ...Option) (*WebHandler, error) {
	h := &WebHandler{
		templatesDir: "./internal/ui/templates",
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.engine == nil {
		return nil, ErrNilEngine
	}
	if h.rates == nil {
		return nil, ErrNilRates
	}
	if h.logger == nil {
		return nil, ErrNilLogger
	}
	h.renderer = NewRenderer(h.templatesDir)
	return h, nil
}

func (h *WebHandler) Setup() error {
	compare := NewCompareHandler(h.renderer, h.rates, h.logger)

	h.engine.GET("/", compare.Index)
	h.engine.POST("/", compare.Submit)

	h.engine.GET("/healthz", Health)

	return nil
}
