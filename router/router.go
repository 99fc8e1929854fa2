package router

import (
	"github.com/gin-gonic/gin"
	"github.com/newtreichville/restaurant-api/config"
	"github.com/newtreichville/restaurant-api/controllers"
	"github.com/newtreichville/restaurant-api/middlewares"
	"github.com/newtreichville/restaurant-api/models"
	"github.com/newtreichville/restaurant-api/services"
	"gorm.io/gorm"
)

// SetupRouter wires every route. The mailer is passed in so tests can
// substitute a fake and count delivery attempts.
func SetupRouter(db *gorm.DB, cfg *config.App, mailer services.Mailer) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	availability := services.NewAvailabilityService(db, cfg.ReservationDuration, cfg.Location)
	booking := services.NewBookingService(db, mailer, cfg.OperatorEmail)

	userCtrl := controllers.NewUserController(db)
	tableCtrl := controllers.NewTableController(db, availability)
	categoryCtrl := controllers.NewCategoryController(db)
	dishCtrl := controllers.NewDishController(db)
	eventCtrl := controllers.NewEventController(db)
	reservationCtrl := controllers.NewReservationController(db, booking)
	contactCtrl := controllers.NewContactController(db, booking)
	adminCtrl := controllers.NewAdminController(db)

	// Operator-side catalog editing goes through the generic resource
	// handler; the public read endpoints below keep their own filtering.
	categoryAdmin := controllers.NewResourceController[models.Category](db, "Category", "display_order, name")
	dishAdmin := controllers.NewResourceController[models.Dish](db, "Dish", "category_id, name")
	eventAdmin := controllers.NewResourceController[models.Event](db, "Event", "event_date DESC, event_time DESC")

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// Menu browsing
	r.GET("/categories", categoryCtrl.GetAllCategories)
	r.GET("/categories/:cat_id", categoryCtrl.GetCategoryByID)
	r.GET("/dishes", dishCtrl.GetAllDishes)
	r.GET("/dishes/featured", dishCtrl.GetFeaturedDishes)
	r.GET("/dishes/:dish_id", dishCtrl.GetDishByID)

	// Published events
	r.GET("/events", eventCtrl.GetAllEvents)
	r.GET("/events/:event_id", eventCtrl.GetEventByID)

	// Table availability and booking
	r.GET("/tables/availability", tableCtrl.GetAvailability)
	r.POST("/reservations", reservationCtrl.CreateReservation)

	// Contact form
	r.POST("/contact-messages", contactCtrl.CreateContactMessage)

	// ----------------------------------------------------------------
	//                      OPERATOR ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/admin")
	auth.Use(middlewares.AuthMiddleware())
	auth.Use(middlewares.RequireRole("staff"))

	auth.GET("/profile", userCtrl.GetProfile)

	// TABLES
	auth.GET("/tables", tableCtrl.GetAllTables)
	auth.POST("/tables", tableCtrl.CreateTable)
	auth.GET("/tables/:table_id", tableCtrl.GetTableByID)
	auth.PATCH("/tables/:table_id", tableCtrl.UpdateTable)
	auth.DELETE("/tables/:table_id", tableCtrl.DeleteTable)

	// RESERVATIONS
	auth.GET("/reservations", reservationCtrl.GetAllReservations)
	auth.GET("/reservations/:reservation_id", reservationCtrl.GetReservationByID)
	auth.PATCH("/reservations/:reservation_id", reservationCtrl.UpdateReservation)
	auth.DELETE("/reservations/:reservation_id", reservationCtrl.DeleteReservation)

	// CONTACT MESSAGES
	auth.GET("/contact-messages", contactCtrl.GetAllContactMessages)
	auth.GET("/contact-messages/:message_id", contactCtrl.GetContactMessageByID)
	auth.PATCH("/contact-messages/:message_id/read", contactCtrl.MarkContactMessageRead)

	// CATALOG (categories / dishes / events)
	auth.GET("/categories", categoryAdmin.List)
	auth.POST("/categories", categoryAdmin.Create)
	auth.GET("/categories/:id", categoryAdmin.Get)
	auth.PATCH("/categories/:id", categoryAdmin.Update)
	auth.DELETE("/categories/:id", categoryAdmin.Delete)

	auth.GET("/dishes", dishAdmin.List)
	auth.POST("/dishes", dishAdmin.Create)
	auth.GET("/dishes/:id", dishAdmin.Get)
	auth.PATCH("/dishes/:id", dishAdmin.Update)
	auth.DELETE("/dishes/:id", dishAdmin.Delete)

	auth.GET("/events", eventAdmin.List)
	auth.POST("/events", eventAdmin.Create)
	auth.GET("/events/:id", eventAdmin.Get)
	auth.PATCH("/events/:id", eventAdmin.Update)
	auth.DELETE("/events/:id", eventAdmin.Delete)

	// DASHBOARD
	auth.GET("/dashboard/stats", adminCtrl.GetDashboardStats)

	// WebSocket feed for dashboards
	wsGroup := r.Group("/ws")
	wsGroup.Use(middlewares.WebSocketAuthMiddleware())
	{
		wsGroup.GET("/:role", controllers.LiveHandler)
	}

	return r
}
