package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "gemini-chatbot/internal/chat/delivery/http"
	settingHTTP "gemini-chatbot/internal/setting/delivery/http"
)

// setupSettingDomain registers /api/v1/models and /api/v1/config/validate.
func (srv HTTPServer) setupSettingDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := settingHTTP.New(srv.l, srv.settings)
	settingHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Setting domain registered")
	return nil
}

// setupChatDomain registers /api/v1/chat.
//
// Pattern to follow when adding a new domain:
//  1. Create UseCase (injected through Config)
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api.Group("/myresource"), h, srv.mw)
func (srv HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := chatHTTP.New(srv.l, srv.chatUC)
	chatHTTP.RegisterRoutes(api.Group("/chat"), h, srv.mw)

	srv.l.Infof(ctx, "Chat domain registered")
	return nil
}
