package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	chatHTTP "personal-ai-partner/internal/chat/delivery/http"
	memoryHTTP "personal-ai-partner/internal/memory/delivery/http"
	"personal-ai-partner/internal/model"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.CORS())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	chatHandler := chatHTTP.New(srv.l, srv.chatUC)
	chatHTTP.RegisterRoutes(api, chatHandler, srv.mw)

	memoryHandler := memoryHTTP.New(srv.l, srv.memoryUC)
	memoryHTTP.RegisterRoutes(api, memoryHandler, srv.mw)

	srv.gin.GET("/ws", srv.wsHandler.Serve)

	if srv.lineHandler != nil {
		srv.gin.POST("/webhook/line", srv.lineHandler.HandleWebhook)
		srv.l.Infof(ctx, "LINE webhook route registered at POST /webhook/line")
	} else {
		srv.l.Infof(ctx, "LINE channel not configured, skipping webhook route")
	}
}
