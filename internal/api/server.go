package api

import (
	"github.com/gin-gonic/gin"

	"github.com/khangtran94/parking-alpr-api/internal/middleware"
	"github.com/khangtran94/parking-alpr-api/internal/service"
	"github.com/khangtran94/parking-alpr-api/internal/service/pubsub"
	"github.com/khangtran94/parking-alpr-api/pkg/logger"
)

type Server struct {
	building   *BuildingHandler
	vehicle    *VehicleHandler
	verify     *VerifyHandler
	accessLog  *AccessLogHandler
	websocket  *WebSocketHandler
	auth       *middleware.AuthMiddleware
	rateLimit  *middleware.RateLimitMiddleware
	validation *middleware.ValidationMiddleware
	globalRate int
}

func NewServer(
	buildingService *service.BuildingService,
	vehicleService *service.VehicleService,
	verificationService *service.VerificationService,
	accessLogService *service.AccessLogService,
	auth *middleware.AuthMiddleware,
	rateLimit *middleware.RateLimitMiddleware,
	validation *middleware.ValidationMiddleware,
	logger *logger.Logger,
	pubsub *pubsub.RedisPubSub,
	globalRateLimit int,
) *Server {
	return &Server{
		building:   NewBuildingHandler(buildingService),
		vehicle:    NewVehicleHandler(vehicleService),
		verify:     NewVerifyHandler(verificationService),
		accessLog:  NewAccessLogHandler(accessLogService),
		websocket:  NewWebSocketHandler(logger, pubsub),
		auth:       auth,
		rateLimit:  rateLimit,
		validation: validation,
		globalRate: globalRateLimit,
	}
}

// SetupAdminRoutes mounts the operator-facing building management
// endpoints, guarded by the static admin token.
func (s *Server) SetupAdminRoutes(admin *gin.RouterGroup) {
	admin.Use(s.validation.ValidateRequestSize(1 * 1024 * 1024)) // 1MB max
	admin.Use(s.validation.ValidateContentType("application/json"))

	buildings := admin.Group("/buildings", s.auth.AdminAuth())
	{
		buildings.POST("", s.building.CreateBuilding)
		buildings.GET("", s.building.ListBuildings)
		buildings.POST("/:id/regenerate-token", s.building.RegenerateToken)
	}
}

// SetupRoutes mounts the building-scoped API, authenticated by API key.
func (s *Server) SetupRoutes(api *gin.RouterGroup) {
	// Camera frames arrive base64-encoded in JSON, so the cap is generous
	api.Use(s.validation.ValidateRequestSize(20 * 1024 * 1024)) // 20MB max
	api.Use(s.validation.ValidateContentType("application/json"))

	api.Use(s.rateLimit.GlobalRateLimit(s.globalRate))

	api.Use(s.auth.APIKeyAuth(), s.rateLimit.BuildingRateLimit())
	{
		api.POST("/verify", s.verify.VerifyPlate)

		vehicles := api.Group("/vehicles")
		{
			vehicles.POST("", s.vehicle.CreateVehicle)
			vehicles.GET("", s.vehicle.ListVehicles)
			vehicles.GET("/:plate", s.vehicle.GetVehicle)
			vehicles.PUT("/:plate", s.vehicle.UpdateVehicle)
			vehicles.DELETE("/:plate", s.vehicle.DeleteVehicle)
		}

		logs := api.Group("/logs")
		{
			logs.GET("", s.accessLog.ListLogs)
			logs.GET("/stream", s.websocket.HandleWebSocket)
			logs.GET("/:plate", s.accessLog.ListLogsByPlate)
		}
	}
}

// StartWebSocketHub starts the WebSocket hub for broadcasting attempts
func (s *Server) StartWebSocketHub() {
	go s.websocket.Start()
}

// GetWebSocketHandler returns the WebSocket handler for wiring up broadcasting
func (s *Server) GetWebSocketHandler() *WebSocketHandler {
	return s.websocket
}
