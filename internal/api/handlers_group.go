package api

import "github.com/joeljosepholawale/campustng/internal/api/handler"

// HandlersGroup bundles all initialized handler instances.
type HandlersGroup struct {
	AuthHandler         *handler.AuthHandler
	UserHandler         *handler.UserHandler
	ProductHandler      *handler.ProductHandler
	ListingHandler      *handler.ListingHandler
	ChatHandler         *handler.ChatHandler
	ReviewHandler       *handler.ReviewHandler
	CommunityHandler    *handler.CommunityHandler
	SchoolHandler       *handler.SchoolHandler
	BoostHandler        *handler.BoostHandler
	NotificationHandler *handler.NotificationHandler
	UploadHandler       *handler.UploadHandler
	AdminHandler        *handler.AdminHandler
	WsHandler           *handler.WsHandler
}
