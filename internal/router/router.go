package router

import (
	"time"

	"github.com/Juannyboy/tablebay-stock-flow/internal/config"
	"github.com/Juannyboy/tablebay-stock-flow/internal/handler"
	"github.com/Juannyboy/tablebay-stock-flow/internal/infra"
	"github.com/Juannyboy/tablebay-stock-flow/internal/middleware"
	"github.com/Juannyboy/tablebay-stock-flow/internal/repository"
	"github.com/Juannyboy/tablebay-stock-flow/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, gatewayCB *infra.CircuitBreaker) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	chatClient := infra.NewChatClient(cfg.AIGatewayURL, cfg.AIGatewayKey, cfg.AIModel)
	mailer := infra.NewMailer(cfg)

	// ── Repositories ─────────────────────────────────────────────────────────
	floorRepo := repository.NewFloorRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	itemRepo := repository.NewItemRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	transferRepo := repository.NewTransferRepository(db)
	neededRepo := repository.NewNeededItemRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	floorSvc := service.NewFloorService(floorRepo)
	roomSvc := service.NewRoomService(roomRepo, floorRepo, assignmentRepo, neededRepo)
	itemSvc := service.NewItemService(itemRepo)
	assignmentSvc := service.NewAssignmentService(assignmentRepo, itemRepo, roomRepo, floorRepo, transferRepo)
	checklistSvc := service.NewChecklistService(neededRepo, itemRepo, assignmentRepo, roomRepo)
	reportSvc := service.NewReportService(roomRepo, floorRepo, itemRepo, assignmentRepo, neededRepo, rdb)
	assistantSvc := service.NewAssistantService(floorRepo, roomRepo, itemRepo, assignmentRepo, neededRepo, chatClient, gatewayCB, rdb)

	// ── Handlers ─────────────────────────────────────────────────────────────
	floorsH := handler.NewFloorsHandler(floorSvc)
	roomsH := handler.NewRoomsHandler(roomSvc, checklistSvc)
	itemsH := handler.NewItemsHandler(itemSvc)
	assignmentsH := handler.NewAssignmentsHandler(assignmentSvc)
	neededH := handler.NewNeededItemsHandler(checklistSvc)
	reportsH := handler.NewReportsHandler(reportSvc, mailer)
	assistantH := handler.NewAssistantHandler(assistantSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb, gatewayCB))

	v1 := r.Group("/v1")
	{
		floors := v1.Group("/floors")
		{
			floors.POST("", floorsH.Create)
			floors.GET("", floorsH.List)
			floors.PUT("/:id", floorsH.Update)
			floors.DELETE("/:id", floorsH.Delete)
			floors.POST("/:id/rooms", roomsH.CreateUnderFloor)
			floors.GET("/:id/rooms", roomsH.ListUnderFloor)
		}

		rooms := v1.Group("/rooms")
		{
			rooms.GET("/:id", roomsH.Detail)
			rooms.PUT("/:id", roomsH.Update)
			rooms.DELETE("/:id", roomsH.Delete)
			rooms.GET("/:id/needed-items", roomsH.ListNeededItems)
		}

		items := v1.Group("/items")
		{
			items.POST("", itemsH.Create)
			items.GET("", itemsH.List)
			items.PUT("/:id", itemsH.Update)
			items.DELETE("/:id", itemsH.Delete)
		}

		assignments := v1.Group("/assignments")
		{
			assignments.POST("", assignmentsH.Assign)
			assignments.PUT("/:id", assignmentsH.EditItem)
			assignments.DELETE("/:id", assignmentsH.Unassign)
			assignments.PATCH("/:id/status", assignmentsH.AdvanceStatus)
			assignments.POST("/:id/transfer", assignmentsH.Transfer)
			assignments.GET("/:id/transfers", assignmentsH.ListTransfers)
		}

		needed := v1.Group("/needed-items")
		{
			needed.POST("", neededH.Create)
			needed.DELETE("/:id", neededH.Delete)
			needed.PATCH("/:id/fulfilled", neededH.SetFulfilled)
		}

		reports := v1.Group("/reports")
		{
			reports.GET("/completion", reportsH.Completion)
			reports.GET("/shortages", reportsH.Shortages)
			reports.GET("/checklist", reportsH.ChecklistProgress)
			reports.GET("/completion/pdf", reportsH.CompletionPDF)
			reports.POST("/completion/email", reportsH.EmailCompletion)
		}

		v1.GET("/dashboard", reportsH.Dashboard)

		v1.POST("/assistant/ask", assistantH.Ask)
	}

	// Swagger UI, only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
