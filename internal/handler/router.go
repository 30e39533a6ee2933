package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"solar-dispatch/internal/domain/user"
	"solar-dispatch/internal/handler/api"
	"solar-dispatch/internal/handler/middleware"
	"solar-dispatch/internal/handler/validation"
	"solar-dispatch/internal/infra/metrics"
	"solar-dispatch/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine           *gin.Engine
	Config           config.Config
	Logger           *middleware.Logger
	Metrics          *metrics.PromMetrics
	AuthMiddleware   *middleware.AuthMiddleware
	AuthHandler      *api.AuthHandler
	DispatchHandler  *api.DispatchHandler
	WarehouseHandler *api.WarehouseHandler
}

func NewRouter(p RouterParams) error {
	if err := validation.Register(); err != nil {
		return err
	}
	setupMiddleware(p)
	setupRoutes(p)
	return nil
}

func setupMiddleware(p RouterParams) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	p.Engine.Use(middleware.CustomRecovery())
	p.Engine.Use(middleware.NewCORSMiddleware(p.Config.CORS))
	p.Engine.Use(p.Logger.LoggingMiddleware())
	if p.Config.Metrics.Enabled {
		p.Engine.Use(middleware.RequestMetrics(p.Metrics))
	}
	p.Engine.Use(middleware.NotificationRecorder())
	p.Engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	authMw := p.AuthMiddleware

	engine.GET("/health", healthCheck)

	if p.Config.Metrics.Enabled {
		engine.GET(p.Config.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	managers := authMw.RequireRoles(user.RoleDispatchManager)
	teams := authMw.RequireRoles(user.RoleConstructionTeam)
	managersOrTeams := authMw.RequireRoles(user.RoleDispatchManager, user.RoleConstructionTeam)
	warehouse := authMw.RequireRoles(user.RoleWarehouse)
	warehouseReaders := authMw.RequireRoles(user.RoleWarehouse, user.RoleDispatchManager)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: p.AuthHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMw.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: p.AuthHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: p.AuthHandler.Me},
			})
		}

		dispatch := apiGroup.Group("/dispatch")
		dispatch.Use(authMw.RequireAuth())
		{
			h := p.DispatchHandler
			addRoutes(dispatch, []route{
				{Method: http.MethodPost, Path: "/codes", Handler: h.GenerateCode, Mw: []gin.HandlerFunc{managers}},
				{Method: http.MethodGet, Path: "/codes", Handler: h.ListCodes, Mw: []gin.HandlerFunc{managers}},
				{Method: http.MethodPost, Path: "/codes/validate", Handler: h.ValidateCode, Mw: []gin.HandlerFunc{managersOrTeams}},
				{Method: http.MethodGet, Path: "/blocked-salesmen", Handler: h.GetBlockedSalesmen, Mw: []gin.HandlerFunc{managers}},
				{Method: http.MethodPut, Path: "/blocked-salesmen", Handler: h.ReplaceBlockedSalesmen, Mw: []gin.HandlerFunc{managers}},
				{Method: http.MethodGet, Path: "/pool", Handler: h.Pool, Mw: []gin.HandlerFunc{managersOrTeams}},
				{Method: http.MethodPost, Path: "/draws", Handler: h.Draw, Mw: []gin.HandlerFunc{teams}},
			})
		}

		warehouseGroup := apiGroup.Group("/warehouse")
		warehouseGroup.Use(authMw.RequireAuth())
		{
			h := p.WarehouseHandler
			addRoutes(warehouseGroup, []route{
				{Method: http.MethodGet, Path: "/customers", Handler: h.ListCustomers, Mw: []gin.HandlerFunc{warehouseReaders}},
				{Method: http.MethodGet, Path: "/customers/:id", Handler: h.GetCustomer, Mw: []gin.HandlerFunc{warehouseReaders}},
				{Method: http.MethodPost, Path: "/customers/:id/materials/:line", Handler: h.TransitionMaterial, Mw: []gin.HandlerFunc{warehouse}},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
