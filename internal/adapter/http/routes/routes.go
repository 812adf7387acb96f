package routes

import (
	"context"
	"fmt"
	_ "furniture_warehouse/docs"
	"furniture_warehouse/internal/adapter/http/handlers"
	"furniture_warehouse/internal/adapter/http/middleware"
	"furniture_warehouse/internal/adapter/persistence/repository"
	"furniture_warehouse/internal/infrastructure/config"
	"furniture_warehouse/internal/infrastructure/database"
	"furniture_warehouse/internal/infrastructure/security"
	"furniture_warehouse/internal/usecase"
	"furniture_warehouse/internal/usecase/interfaces"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

const PathAPI = "/api"

// Handlers is everything NewRouter mounts.
type Handlers struct {
	Supplier  *handlers.SupplierHandler
	Client    *handlers.ClientHandler
	Furniture *handlers.FurnitureHandler
	Order     *handlers.OrderHandler
	Auth      *handlers.AuthHandler
	Dashboard *handlers.DashboardHandler
	Audit     *handlers.AuditHandler
}

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to bootstrap the schema: %v", err)
	}

	h, verifier, err := Build(context.Background(), cfg, db)
	if err != nil {
		log.Fatalf("Failed to wire the application: %v", err)
	}

	router := NewRouter(cfg, h, verifier)
	log.Printf("[server] listening port=%s driver=%s audit=%s", cfg.Port, cfg.DBDriver, cfg.AuditBackend)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}

// Build wires repositories, use cases and handlers around one store handle.
func Build(ctx context.Context, cfg config.Config, db *gorm.DB) (Handlers, middleware.TokenVerifier, error) {
	auditRepo, err := newAuditRepository(ctx, cfg, db)
	if err != nil {
		return Handlers{}, nil, err
	}

	supplierRepo := repository.NewSupplierRepository(db)
	clientRepo := repository.NewClientRepository(db)
	furnitureRepo := repository.NewFurnitureRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	userRepo := repository.NewUserRepository(db)

	authUseCase := usecase.NewAuthUseCase(
		userRepo,
		security.NewBcryptHasher(security.DefaultBcryptCost),
		security.NewJWTIssuer(cfg.JWTSecret, cfg.JWTExpiresIn),
	)

	h := Handlers{
		Supplier:  handlers.NewSupplierHandler(usecase.NewSupplierUseCase(supplierRepo)),
		Client:    handlers.NewClientHandler(usecase.NewClientUseCase(clientRepo)),
		Furniture: handlers.NewFurnitureHandler(usecase.NewFurnitureUseCase(furnitureRepo, auditRepo)),
		Order:     handlers.NewOrderHandler(usecase.NewOrderUseCase(orderRepo, auditRepo)),
		Auth:      handlers.NewAuthHandler(authUseCase),
		Dashboard: handlers.NewDashboardHandler(usecase.NewDashboardUseCase(supplierRepo, clientRepo, furnitureRepo, orderRepo)),
		Audit:     handlers.NewAuditHandler(usecase.NewAuditUseCase(auditRepo)),
	}
	return h, authUseCase, nil
}

// newAuditRepository returns a nil interface, not a typed nil, when auditing
// is disabled.
func newAuditRepository(ctx context.Context, cfg config.Config, db *gorm.DB) (interfaces.IAuditLogRepository, error) {
	switch cfg.AuditBackend {
	case config.AuditBackendNone:
		return nil, nil
	case config.AuditBackendDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return nil, fmt.Errorf("connect dynamodb: %w", err)
		}
		repo := repository.NewAuditDynamoRepository(ddb, cfg.AuditTable)
		if err := repo.EnsureTable(ctx); err != nil {
			return nil, fmt.Errorf("ensure audit table: %w", err)
		}
		return repo, nil
	default:
		return repository.NewAuditLogRepository(db), nil
	}
}

// NewRouter mounts every route. Everything under /api except ping, register
// and login requires a bearer token.
func NewRouter(cfg config.Config, h Handlers, verifier middleware.TokenVerifier) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/", serviceBanner)

	api := router.Group(PathAPI)
	addPingRoutes(api)
	addAuthRoutes(api, h.Auth, verifier)

	private := api.Group("", middleware.RequireAuth(verifier))
	addWarehouseRoutes(private, h)
	addAuditRoutes(private, h.Audit)

	router.NoRoute(routeNotFound)
	router.NoMethod(routeNotFound)
	return router
}

func setMiddlewares(router *gin.Engine, cfg config.Config) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}))
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg.CORSAllowedOrigin))
}

func routeNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
}

func serviceBanner(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Furniture Warehouse API",
		"endpoints": gin.H{
			"auth":      PathAPI + PathAuth,
			"suppliers": PathAPI + PathSuppliers,
			"clients":   PathAPI + PathClients,
			"furniture": PathAPI + PathFurniture,
			"orders":    PathAPI + PathOrders,
			"dashboard": PathAPI + PathDashboard,
			"audit":     PathAPI + PathAudit,
			"docs":      "/swagger/index.html",
		},
	})
}
