package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	assessHTTP "mental-health-support/internal/assessment/delivery/http"
	assessUC "mental-health-support/internal/assessment/usecase"
	chatHTTP "mental-health-support/internal/chat/delivery/http"
	chatUC "mental-health-support/internal/chat/usecase"
	"mental-health-support/internal/middleware"
	"mental-health-support/internal/model"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.rateLimit)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestID())
	srv.gin.Use(mw.RateLimit())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Rate limiting enabled: %v", srv.rateLimit.Enabled)
	} else {
		srv.l.Infof(ctx, "Running in %s mode", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes wires the scoring engine domains under /api.
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()
	api := srv.gin.Group("/api")

	chatHandler := chatHTTP.New(srv.l, chatUC.New(srv.l, srv.lexicon, srv.llm))
	chatHTTP.RegisterRoutes(api, chatHandler)

	assessHandler := assessHTTP.New(srv.l, assessUC.New(srv.l, srv.lexicon))
	assessHTTP.RegisterRoutes(api, assessHandler)

	if srv.llm != nil {
		srv.l.Infof(ctx, "Chat domain registered with generative reply path")
	} else {
		srv.l.Infof(ctx, "Chat domain registered with template-only composition")
	}
	srv.l.Infof(ctx, "Assessment domain registered")
}
