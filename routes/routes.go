package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"hotelops-backend/access"
	"hotelops-backend/controllers"
	"hotelops-backend/metrics"
	"hotelops-backend/middleware"
)

// Controllers groups the handlers mounted under /api.
type Controllers struct {
	Auth        *controllers.AuthController
	Access      *controllers.AccessController
	Dashboard   *controllers.DashboardController
	Hotels      *controllers.HotelController
	Rooms       *controllers.RoomController
	Staff       *controllers.StaffController
	Departments *controllers.DepartmentController
	Attendance  *controllers.AttendanceController
	Permissions *controllers.PermissionController
	Orders      *controllers.OrderController
	Users       *controllers.UserController
}

type Options struct {
	CORSOrigins []string
	UploadDir   string
	Gate        access.Gate
	Tokens      middleware.TokenValidator
	Metrics     *metrics.Metrics
	Logger      *zap.Logger
}

func parseCorsOrigins(raw []string) []string {
	origins := make([]string, 0, len(raw))
	for _, part := range raw {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(h Controllers, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID(opts.Logger))
	r.Use(middleware.Logger(opts.Logger))
	r.Use(middleware.Metrics(opts.Metrics))

	origins := parseCorsOrigins(opts.CORSOrigins)
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", middleware.HeaderRequestID},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", middleware.HeaderRequestID},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.Static("/uploads", opts.UploadDir)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	allow := func(roles []access.Role) gin.HandlerFunc {
		return middleware.RequireRoles(opts.Gate, roles)
	}

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/register", h.Auth.Register)
		}

		// everything below needs a bearer token
		secured := api.Group("", middleware.Authenticate(opts.Tokens))

		secured.GET("/auth/me", h.Auth.Me)
		secured.POST("/auth/logout", h.Auth.Logout)
		secured.GET("/access/check", h.Access.Check)
		secured.GET("/access/areas", h.Access.Areas)
		secured.GET("/dashboard/summary", allow(access.DashboardViewers), h.Dashboard.Summary)

		users := secured.Group("/users", allow(access.UserManagers))
		{
			users.GET("", h.Users.GetUsers)
			users.POST("", h.Users.CreateUser)
			users.GET("/:id", h.Users.GetUser)
			users.PUT("/:id", h.Users.UpdateUser)
			users.DELETE("/:id", h.Users.DeleteUser)
		}

		hotels := secured.Group("/hotels")
		{
			hotels.GET("", allow(access.HotelManagers), h.Hotels.GetHotels)
			hotels.POST("", allow(access.HotelManagers), h.Hotels.CreateHotel)
			hotels.GET("/:id", allow(access.HotelManagers), h.Hotels.GetHotel)
			hotels.PUT("/:id", allow(access.HotelManagers), h.Hotels.UpdateHotel)
			hotels.DELETE("/:id", allow(access.HotelManagers), h.Hotels.DeleteHotel)

			rooms := hotels.Group("/:id/rooms")
			{
				rooms.GET("", allow(access.RoomManagers), h.Rooms.GetRooms)
				rooms.POST("", allow(access.RoomManagers), h.Rooms.CreateRoom)
				rooms.GET("/:roomId", allow(access.RoomManagers), h.Rooms.GetRoom)
				rooms.PUT("/:roomId", allow(access.RoomManagers), h.Rooms.UpdateRoom)
				rooms.DELETE("/:roomId", allow(access.RoomManagers), h.Rooms.DeleteRoom)
				rooms.PATCH("/:roomId/status", allow(access.RoomStatusEditors), h.Rooms.UpdateRoomStatus)
			}
		}

		staff := secured.Group("/staff", allow(access.PeopleManagers))
		{
			staff.GET("", h.Staff.GetStaffList)
			staff.POST("", h.Staff.CreateStaff)
			// static segments before /:id
			staff.GET("/export", h.Staff.ExportStaff)
			staff.DELETE("/bulk", h.Staff.BulkDeleteStaff)
			staff.GET("/:id", h.Staff.GetStaff)
			staff.PUT("/:id", h.Staff.UpdateStaff)
			staff.DELETE("/:id", h.Staff.DeleteStaff)
		}

		departments := secured.Group("/departments", allow(access.PeopleManagers))
		{
			departments.GET("", h.Departments.GetDepartments)
			departments.POST("", h.Departments.CreateDepartment)
			departments.GET("/:id", h.Departments.GetDepartment)
			departments.PUT("/:id", h.Departments.UpdateDepartment)
			departments.DELETE("/:id", h.Departments.DeleteDepartment)
		}

		attendance := secured.Group("/attendance")
		{
			attendance.GET("", allow(access.AttendanceReaders), h.Attendance.GetAttendanceList)
			attendance.GET("/daily", allow(access.PeopleManagers), h.Attendance.GetDailyAttendance)
			attendance.POST("/bulk", allow(access.PeopleManagers), h.Attendance.BulkAttendance)
			attendance.POST("", allow(access.PeopleManagers), h.Attendance.CreateAttendance)
			attendance.GET("/:id", allow(access.AttendanceReaders), h.Attendance.GetAttendance)
			attendance.PUT("/:id", allow(access.PeopleManagers), h.Attendance.UpdateAttendance)
			attendance.DELETE("/:id", allow(access.PeopleManagers), h.Attendance.DeleteAttendance)
		}

		permissions := secured.Group("/permissions", allow(access.PermissionManagers))
		{
			permissions.GET("/catalog", h.Permissions.GetCatalog)
			permissions.GET("/defaults/:designation", h.Permissions.GetDefaults)
			permissions.POST("/copy", h.Permissions.CopyPermissions)
			permissions.GET("/:staffId", h.Permissions.GetPermissions)
			permissions.POST("/:staffId", h.Permissions.SetPermissions)
			permissions.DELETE("/:staffId", h.Permissions.DeletePermissions)
		}

		orders := secured.Group("/orders")
		{
			orders.GET("", allow(access.OrderManagers), h.Orders.GetOrders)
			orders.POST("", allow(access.OrderManagers), h.Orders.CreateOrder)
			orders.GET("/:id", allow(access.KitchenUsers), h.Orders.GetOrder)
			orders.PUT("/:id", allow(access.OrderManagers), h.Orders.UpdateOrder)
			orders.DELETE("/:id", allow(access.OrderManagers), h.Orders.DeleteOrder)
			orders.PATCH("/:id/status", allow(access.KitchenUsers), h.Orders.UpdateOrderStatus)
			orders.PATCH("/:id/items/:itemId/status", allow(access.KitchenUsers), h.Orders.UpdateItemStatus)
		}

		secured.GET("/kitchen/tickets", allow(access.KitchenUsers), h.Orders.GetKitchenTickets)
		secured.GET("/ws/kitchen", allow(access.KitchenUsers), h.Orders.KitchenSocket)
	}

	return r
}
