package router

import (
	"time"

	"github.com/talhasonu918-ctrl/CRM-Superadmin-sub002/internal/catalog"
	"github.com/talhasonu918-ctrl/CRM-Superadmin-sub002/internal/config"
	"github.com/talhasonu918-ctrl/CRM-Superadmin-sub002/internal/handler"
	"github.com/talhasonu918-ctrl/CRM-Superadmin-sub002/internal/middleware"
	"github.com/talhasonu918-ctrl/CRM-Superadmin-sub002/internal/repository"
	"github.com/talhasonu918-ctrl/CRM-Superadmin-sub002/internal/service"
	"github.com/talhasonu918-ctrl/CRM-Superadmin-sub002/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
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

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	productSvc := service.NewProductService(productRepo)
	supplierSvc := service.NewSupplierService(supplierRepo)
	locationSvc := service.NewLocationService(locationRepo)
	categorySvc := service.NewCategoryService(categoryRepo)
	documentSvc := service.NewDocumentService(documentRepo)

	resolver := catalog.NewResolver(productRepo)
	editorSvc := service.NewEditorService(resolver, documentRepo, dispatcher)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(authSvc)
	productsH := handler.NewProductsHandler(productSvc)
	suppliersH := handler.NewSuppliersHandler(supplierSvc)
	locationsH := handler.NewLocationsHandler(locationSvc)
	categoriesH := handler.NewCategoriesHandler(categorySvc)
	documentsH := handler.NewDocumentsHandler(documentSvc)
	editorH := handler.NewEditorHandler(editorSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Roles: staff, manager, admin — declared per-endpoint

		// Document editor — any authenticated role can edit and save
		editor := v1.Group("/editor/sessions", middleware.RequireRole("staff", "manager", "admin"))
		{
			editor.POST("", editorH.Open)
			editor.GET("/:id", editorH.Get)
			editor.DELETE("/:id", editorH.Discard)
			editor.POST("/:id/lines", editorH.AddLine)
			editor.DELETE("/:id/lines/:lineId", editorH.RemoveLine)
			editor.PATCH("/:id/lines/:lineId", editorH.PatchLine)
			editor.PUT("/:id/lines/:lineId/product", editorH.SelectProduct)
			editor.PATCH("/:id/header", editorH.PatchHeader)
			editor.POST("/:id/save", editorH.Save)
		}

		// Saved documents — read-only archive
		v1.GET("/documents", middleware.RequireRole("staff", "manager", "admin"), documentsH.List)
		v1.GET("/documents/:id", middleware.RequireRole("staff", "manager", "admin"), documentsH.GetByID)
		v1.GET("/documents/:id/voucher", middleware.RequireRole("staff", "manager", "admin"), documentsH.Voucher)

		// Catalog — all roles can read, manager/admin can write
		v1.GET("/products", middleware.RequireRole("staff", "manager", "admin"), productsH.List)
		v1.GET("/products/:id", middleware.RequireRole("staff", "manager", "admin"), productsH.GetByID)
		prods := v1.Group("/products", middleware.RequireRole("manager", "admin"))
		{
			prods.POST("", productsH.Create)
			prods.PUT("/:id", productsH.Update)
			prods.DELETE("/:id", productsH.Deactivate)
		}

		// Suppliers
		v1.GET("/suppliers", middleware.RequireRole("staff", "manager", "admin"), suppliersH.List)
		v1.GET("/suppliers/:id", middleware.RequireRole("staff", "manager", "admin"), suppliersH.GetByID)
		sups := v1.Group("/suppliers", middleware.RequireRole("manager", "admin"))
		{
			sups.POST("", suppliersH.Create)
			sups.PUT("/:id", suppliersH.Update)
			sups.DELETE("/:id", suppliersH.Deactivate)
		}

		// Locations
		v1.GET("/locations", middleware.RequireRole("staff", "manager", "admin"), locationsH.List)
		locs := v1.Group("/locations", middleware.RequireRole("manager", "admin"))
		{
			locs.POST("", locationsH.Create)
			locs.DELETE("/:id", locationsH.Deactivate)
		}

		// Categories
		v1.GET("/categories", middleware.RequireRole("staff", "manager", "admin"), categoriesH.List)
		cats := v1.Group("/categories", middleware.RequireRole("manager", "admin"))
		{
			cats.POST("", categoriesH.Create)
			cats.DELETE("/:id", categoriesH.Deactivate)
		}

		// User management — admin only
		users := v1.Group("/users", middleware.RequireRole("admin"))
		{
			users.POST("", usersH.Create)
			users.GET("", usersH.List)
			users.PUT("/:id", usersH.Update)
			users.DELETE("/:id", usersH.Deactivate)
			users.PATCH("/:id/reactivate", usersH.Reactivate)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
