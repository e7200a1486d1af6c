package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/neggmmm/brandbite-sub000/controllers"
	"github.com/neggmmm/brandbite-sub000/events"
	"github.com/neggmmm/brandbite-sub000/middlewares"
	"github.com/neggmmm/brandbite-sub000/services"
)

func SetupRouter(db *gorm.DB, hub *events.Hub) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	bookingService := services.NewBookingService(db, hub)
	availability := bookingService.Availability
	planner := services.NewTablePlanner(availability)
	tableService := services.NewTableService(db, hub)

	userCtrl := controllers.NewUserController(db)
	restaurantCtrl := controllers.NewRestaurantController(db)
	bookingCtrl := controllers.NewBookingController(bookingService, availability, planner)
	tableCtrl := controllers.NewTableController(tableService)
	notificationCtrl := controllers.NewNotificationController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// Customers browse availability and book without an account.
	r.GET("/restaurants/:restaurant_id/availability", bookingCtrl.CheckAvailability)
	r.POST("/restaurants/:restaurant_id/bookings", bookingCtrl.CreateBooking)
	r.GET("/bookings/:booking_id", bookingCtrl.GetBooking)
	r.POST("/bookings/:booking_id/cancel", bookingCtrl.CancelBooking)

	// Real-time floor events for staff dashboards.
	r.GET("/ws/:role", controllers.FloorEventsHandler(hub))

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/admin")
	auth.Use(middlewares.AuthMiddleware())

	// RESTAURANTS
	auth.POST("/restaurants", restaurantCtrl.CreateRestaurant)
	auth.GET("/restaurants/:restaurant_id", restaurantCtrl.GetRestaurant)

	// BOOKINGS
	auth.GET("/restaurants/:restaurant_id/bookings", bookingCtrl.ListBookings)
	auth.POST("/restaurants/:restaurant_id/bookings", bookingCtrl.CreateBooking)
	auth.GET("/restaurants/:restaurant_id/suggest-tables", bookingCtrl.SuggestTables)
	auth.POST("/bookings/:booking_id/confirm", bookingCtrl.ConfirmBooking)
	auth.POST("/bookings/:booking_id/reject", bookingCtrl.RejectBooking)
	auth.POST("/bookings/:booking_id/seat", bookingCtrl.MarkSeated)
	auth.POST("/bookings/:booking_id/complete", bookingCtrl.CompleteBooking)
	auth.POST("/bookings/:booking_id/no-show", bookingCtrl.MarkNoShow)

	// TABLES
	auth.GET("/restaurants/:restaurant_id/tables", tableCtrl.GetAllTables)
	auth.POST("/restaurants/:restaurant_id/tables", tableCtrl.CreateTable)
	auth.GET("/tables/:table_id", tableCtrl.GetTableByID)
	auth.PATCH("/tables/:table_id", tableCtrl.UpdateTable)
	auth.PATCH("/tables/:table_id/status", tableCtrl.UpdateTableStatus)
	auth.DELETE("/tables/:table_id", tableCtrl.DeleteTable)
	auth.GET("/restaurants/:restaurant_id/floor-plan", tableCtrl.GetFloorPlan)
	auth.GET("/restaurants/:restaurant_id/table-stats", tableCtrl.GetTableStats)

	// NOTIFICATIONS
	auth.GET("/restaurants/:restaurant_id/notifications", notificationCtrl.GetAllNotifications)

	return r
}
