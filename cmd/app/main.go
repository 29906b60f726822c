package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"comicvault/cmd/fx/account_fx"
	"comicvault/cmd/fx/catalog_fx"
	"comicvault/cmd/fx/db_fx"
	"comicvault/cmd/fx/entitlement_fx"
	"comicvault/cmd/fx/grading_fx"
	"comicvault/cmd/fx/marketplace_fx"
	"comicvault/cmd/fx/messaging_fx"
	"comicvault/cmd/fx/notification_fx"
	"comicvault/cmd/fx/payment_fx"
	"comicvault/cmd/fx/trade_fx"
	"comicvault/internal/api/controllers"
	"comicvault/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		entitlement_fx.Module,
		catalog_fx.Module,
		marketplace_fx.Module,
		trade_fx.Module,
		grading_fx.Module,
		messaging_fx.Module,
		notification_fx.Module,
		payment_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	catalogController *controllers.CatalogController,
	marketplaceController *controllers.MarketplaceController,
	tradeController *controllers.TradeController,
	gradingController *controllers.GradingController,
	messagingController *controllers.MessagingController,
	notificationController *controllers.NotificationController,
	paymentController *controllers.PaymentController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		accountController,
		catalogController,
		marketplaceController,
		tradeController,
		gradingController,
		messagingController,
		notificationController,
		paymentController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	catalogController *controllers.CatalogController,
	marketplaceController *controllers.MarketplaceController,
	tradeController *controllers.TradeController,
	gradingController *controllers.GradingController,
	messagingController *controllers.MessagingController,
	notificationController *controllers.NotificationController,
	paymentController *controllers.PaymentController) {

	accountGroup := r.Group("/accounts")
	accountGroup.POST("/register", accountController.Register)
	accountGroup.POST("/login", accountController.Login)
	accountGroup.GET("/me/entitlements", middleware.JWTAuthMiddleware(), accountController.Entitlements)

	comicGroup := r.Group("/comics", middleware.JWTAuthMiddleware())
	comicGroup.POST("", catalogController.AddComic)
	comicGroup.GET("", catalogController.ListComics)
	comicGroup.GET("/:id", catalogController.GetComic)
	comicGroup.PUT("/:id", catalogController.UpdateComic)
	comicGroup.DELETE("/:id", catalogController.DeleteComic)
	comicGroup.POST("/similar", catalogController.FindSimilar)

	marketplaceGroup := r.Group("/marketplace", middleware.JWTAuthMiddleware())
	marketplaceGroup.POST("/listings", marketplaceController.CreateListing)
	marketplaceGroup.GET("/listings", marketplaceController.BrowseListings)
	marketplaceGroup.POST("/listings/:id/cancel", marketplaceController.CancelListing)
	marketplaceGroup.POST("/listings/:id/sold", marketplaceController.MarkSold)

	wishlistGroup := r.Group("/wishlist", middleware.JWTAuthMiddleware())
	wishlistGroup.POST("", marketplaceController.AddWishlistEntry)
	wishlistGroup.GET("", marketplaceController.ListWishlist)
	wishlistGroup.DELETE("/:id", marketplaceController.RemoveWishlistEntry)

	tradeGroup := r.Group("/trades", middleware.JWTAuthMiddleware())
	tradeGroup.POST("", tradeController.ProposeTrade)
	tradeGroup.GET("", tradeController.ListTrades)
	tradeGroup.GET("/:id", tradeController.GetTrade)
	tradeGroup.POST("/:id/respond", tradeController.RespondToTrade)
	tradeGroup.POST("/:id/complete", tradeController.CompleteTrade)

	gradingGroup := r.Group("/grading", middleware.JWTAuthMiddleware())
	gradingGroup.POST("", gradingController.SubmitRequest)
	gradingGroup.GET("", gradingController.ListRequests)
	gradingGroup.DELETE("/:id", gradingController.DeleteRequest)
	gradingGroup.POST("/identify", gradingController.IdentifyComic)

	messageGroup := r.Group("/messages", middleware.JWTAuthMiddleware())
	messageGroup.POST("", messagingController.SendMessage)
	messageGroup.GET("/conversations/:id", messagingController.GetConversation)
	messageGroup.GET("/unread", messagingController.UnreadCount)

	notificationGroup := r.Group("/notifications", middleware.JWTAuthMiddleware())
	notificationGroup.GET("", notificationController.ListNotifications)
	notificationGroup.POST("/:id/read", notificationController.MarkRead)

	paymentGroup := r.Group("/payments")
	paymentGroup.GET("/plans", middleware.JWTAuthMiddleware(), paymentController.ListPlans)
	paymentGroup.POST("/checkout", middleware.JWTAuthMiddleware(), paymentController.CreateCheckout)
	paymentGroup.POST("/webhook", paymentController.HandleWebhook)
}
