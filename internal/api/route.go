package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joeljosepholawale/campustng/internal/api/middleware"
	"github.com/joeljosepholawale/campustng/internal/pkg/logger"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api/v1")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/register", group.AuthHandler.Register)
			authGroup.POST("/login", group.AuthHandler.Login)
			authGroup.POST("/verify-email", group.AuthHandler.VerifyEmail)
			authGroup.POST("/resend-verification", group.AuthHandler.ResendVerification)
			authGroup.POST("/forgot-password", group.AuthHandler.ForgotPassword)
			authGroup.POST("/reset-password", group.AuthHandler.ResetPassword)

			loggedGroup := authGroup.Group("")
			loggedGroup.Use(middleware.AuthMiddleware())
			{
				loggedGroup.POST("/logout", group.AuthHandler.Logout)
				loggedGroup.PUT("/password", group.AuthHandler.ChangePassword)
			}
		}

		userGroup := apiGroup.Group("/users")
		{
			authOptGroup := userGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("/:user_id", group.UserHandler.GetProfile)
				authOptGroup.GET("/:user_id/products", group.ProductHandler.ListByUser)
				authOptGroup.GET("/:user_id/reviews", group.ReviewHandler.ListForUser)
			}

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.GET("/me", group.UserHandler.GetMe)
				authGroup.PUT("/me", group.UserHandler.UpdateProfile)
				authGroup.PUT("/me/push-token", group.UserHandler.UpdatePushToken)
				authGroup.POST("/me/id-verification", group.UserHandler.SubmitIDVerification)
				authGroup.POST("/:user_id/follow", group.UserHandler.Follow)
				authGroup.DELETE("/:user_id/follow", group.UserHandler.Unfollow)
				authGroup.POST("/:user_id/reviews", group.ReviewHandler.Create)
				authGroup.POST("/:user_id/reports", group.UserHandler.CreateReport)
			}
		}

		productGroup := apiGroup.Group("/products")
		{
			authOptGroup := productGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("", group.ProductHandler.Browse)
				authOptGroup.GET("/:product_id", group.ProductHandler.Get)
			}

			productGroup.GET("/categories", group.ProductHandler.ListCategories)
			productGroup.POST("/:product_id/bookmark", group.ProductHandler.Bookmark)

			authGroup := productGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.ProductHandler.Create)
				authGroup.PUT("/:product_id", group.ProductHandler.Update)
				authGroup.DELETE("/:product_id", group.ProductHandler.Delete)
			}
		}

		serviceGroup := apiGroup.Group("/services")
		{
			serviceGroup.GET("", group.ListingHandler.ListServices)
			serviceGroup.GET("/:service_id", group.ListingHandler.GetService)

			authGroup := serviceGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.ListingHandler.CreateService)
				authGroup.PUT("/:service_id", group.ListingHandler.UpdateService)
				authGroup.DELETE("/:service_id", group.ListingHandler.DeleteService)
			}
		}

		requestGroup := apiGroup.Group("/requests")
		{
			requestGroup.GET("", group.ListingHandler.ListRequests)
			requestGroup.GET("/:request_id", group.ListingHandler.GetRequest)

			authGroup := requestGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.ListingHandler.CreateRequest)
				authGroup.PUT("/:request_id", group.ListingHandler.UpdateRequest)
				authGroup.DELETE("/:request_id", group.ListingHandler.DeleteRequest)
			}
		}

		messageGroup := apiGroup.Group("/messages")
		{
			messageGroup.GET("/ws", group.WsHandler.Connect)

			authGroup := messageGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.ChatHandler.StartConversation)
				authGroup.GET("", group.ChatHandler.ListConversations)
				authGroup.GET("/:conversation_id", group.ChatHandler.ListMessages)
				authGroup.POST("/:conversation_id", group.ChatHandler.SendMessage)
				authGroup.POST("/:conversation_id/read", group.ChatHandler.MarkRead)
			}
		}

		communityGroup := apiGroup.Group("/community")
		{
			authOptGroup := communityGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("/posts", group.CommunityHandler.ListPosts)
				authOptGroup.GET("/posts/:post_id", group.CommunityHandler.GetPost)
				authOptGroup.GET("/groups", group.CommunityHandler.ListGroups)
			}

			authGroup := communityGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/posts", group.CommunityHandler.CreatePost)
				authGroup.DELETE("/posts/:post_id", group.CommunityHandler.DeletePost)
				authGroup.POST("/posts/:post_id/comments", group.CommunityHandler.AddComment)
				authGroup.POST("/groups", group.CommunityHandler.CreateGroup)
				authGroup.POST("/groups/:group_id/join", group.CommunityHandler.JoinGroup)
				authGroup.POST("/groups/:group_id/leave", group.CommunityHandler.LeaveGroup)
				authGroup.GET("/groups/:group_id/messages", group.CommunityHandler.ListGroupMessages)
				authGroup.POST("/groups/:group_id/messages", group.CommunityHandler.SendGroupMessage)
			}
		}

		schoolGroup := apiGroup.Group("/schools")
		{
			schoolGroup.GET("", group.SchoolHandler.List)
			schoolGroup.POST("/suggest", group.SchoolHandler.Suggest)
		}

		paymentGroup := apiGroup.Group("/payments")
		{
			paymentGroup.GET("/plans", group.BoostHandler.ListPlans)

			authGroup := paymentGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/boost/initialize", group.BoostHandler.Initialize)
				authGroup.POST("/boost/verify", group.BoostHandler.Verify)
				authGroup.GET("/transactions", group.BoostHandler.ListTransactions)
			}
		}

		notificationGroup := apiGroup.Group("/notifications")
		notificationGroup.Use(middleware.AuthMiddleware())
		{
			notificationGroup.GET("", group.NotificationHandler.List)
			notificationGroup.GET("/unread", group.NotificationHandler.UnreadCounts)
			notificationGroup.POST("/:notification_id/read", group.NotificationHandler.MarkRead)
			notificationGroup.POST("/read-all", group.NotificationHandler.MarkAllRead)
			notificationGroup.DELETE("/:notification_id", group.NotificationHandler.Delete)
		}

		savedSearchGroup := apiGroup.Group("/saved-searches")
		savedSearchGroup.Use(middleware.AuthMiddleware())
		{
			savedSearchGroup.POST("", group.UserHandler.CreateSavedSearch)
			savedSearchGroup.GET("", group.UserHandler.ListSavedSearches)
			savedSearchGroup.DELETE("/:search_id", group.UserHandler.DeleteSavedSearch)
		}

		analyticsGroup := apiGroup.Group("/analytics")
		analyticsGroup.Use(middleware.AuthMiddleware())
		{
			analyticsGroup.GET("/seller", group.UserHandler.GetAnalytics)
		}

		uploadGroup := apiGroup.Group("/upload")
		uploadGroup.Use(middleware.AuthMiddleware())
		{
			uploadGroup.POST("/image", group.UploadHandler.Upload)
		}

		adminGroup := apiGroup.Group("/admin")
		adminGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles("ADMIN"))
		{
			adminGroup.GET("/stats", group.AdminHandler.Stats)
			adminGroup.GET("/users", group.AdminHandler.ListUsers)
			adminGroup.POST("/users/:user_id/ban", group.AdminHandler.BanUser)
			adminGroup.POST("/users/:user_id/unban", group.AdminHandler.UnbanUser)
			adminGroup.POST("/users/:user_id/approve-id", group.AdminHandler.ApproveIDVerification)
			adminGroup.POST("/users/:user_id/reject-id", group.AdminHandler.RejectIDVerification)
			adminGroup.GET("/id-verifications", group.AdminHandler.ListIDVerifications)
			adminGroup.GET("/reports", group.AdminHandler.ListReports)
			adminGroup.PUT("/reports/:report_id", group.AdminHandler.ResolveReport)
			adminGroup.DELETE("/products/:product_id", group.AdminHandler.RemoveProduct)
			adminGroup.DELETE("/services/:service_id", group.AdminHandler.RemoveService)
			adminGroup.DELETE("/requests/:request_id", group.AdminHandler.RemoveRequest)
			adminGroup.POST("/categories", group.AdminHandler.CreateCategory)
			adminGroup.PUT("/categories/:category_id", group.AdminHandler.UpdateCategory)
			adminGroup.DELETE("/categories/:category_id", group.AdminHandler.DeleteCategory)
			adminGroup.POST("/boost-plans", group.AdminHandler.CreateBoostPlan)
			adminGroup.PUT("/boost-plans/:plan_id", group.AdminHandler.UpdateBoostPlan)
			adminGroup.GET("/transactions", group.AdminHandler.ListTransactions)
			adminGroup.POST("/schools/:school_id/approve", group.AdminHandler.ApproveSchool)
			adminGroup.DELETE("/schools/:school_id", group.AdminHandler.RejectSchool)
			adminGroup.POST("/broadcast", group.AdminHandler.Broadcast)
		}
	}

	return r
}
