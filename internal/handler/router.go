package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"vas-broker/internal/domain/user"
	"vas-broker/internal/handler/api"
	"vas-broker/internal/handler/middleware"
	"vas-broker/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Requests *api.RequestHandler
	Agent    *api.AgentHandler
	Wallet   *api.WalletHandler
	Admin    *api.AdminHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.MetricsMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		customer := authMiddleware.RequireRole(user.RoleCustomer)
		anyRole := authMiddleware.RequireRole(user.RoleCustomer, user.RoleAgent, user.RoleAdmin)
		owner := authMiddleware.RequireRole(user.RoleCustomer, user.RoleAdmin)

		requests := apiGroup.Group("/requests")
		addRoutes(requests, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Requests.Submit, Mw: []gin.HandlerFunc{customer}},
			{Method: http.MethodGet, Path: "", Handler: h.Requests.ListMine, Mw: []gin.HandlerFunc{customer}},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Requests.Get, Mw: []gin.HandlerFunc{anyRole}},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Requests.Cancel, Mw: []gin.HandlerFunc{owner}},
		})

		wallet := apiGroup.Group("/wallet")
		wallet.Use(customer)
		addRoutes(wallet, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Wallet.Get},
			{Method: http.MethodGet, Path: "/entries", Handler: h.Wallet.Entries},
		})

		agent := apiGroup.Group("/agent")
		agent.Use(authMiddleware.RequireRole(user.RoleAgent))
		addRoutes(agent, []route{
			{Method: http.MethodPost, Path: "/requests/:id/start", Handler: h.Agent.Start},
			{Method: http.MethodPost, Path: "/requests/:id/complete", Handler: h.Agent.Complete},
			{Method: http.MethodPost, Path: "/requests/:id/fail", Handler: h.Agent.Fail},
			{Method: http.MethodGet, Path: "/stats", Handler: h.Agent.Stats},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireRole(user.RoleAdmin))
		addRoutes(admin, []route{
			{Method: http.MethodGet, Path: "/requests", Handler: h.Admin.ListRequests},
			{Method: http.MethodPost, Path: "/requests/:id/retry-refund", Handler: h.Admin.RetryRefund},
			{Method: http.MethodPost, Path: "/agents", Handler: h.Admin.RegisterAgent},
			{Method: http.MethodPatch, Path: "/agents/:id", Handler: h.Admin.UpdateAgent},
			{Method: http.MethodGet, Path: "/agents/:id/stats", Handler: h.Admin.AgentStats},
			{Method: http.MethodPost, Path: "/inventory/:pool/codes", Handler: h.Admin.ImportCodes},
			{Method: http.MethodGet, Path: "/inventory/:pool", Handler: h.Admin.Stock},
			{Method: http.MethodPut, Path: "/pricing", Handler: h.Admin.SetPricing},
			{Method: http.MethodGet, Path: "/pricing", Handler: h.Admin.ListPricing},
			{Method: http.MethodPost, Path: "/wallets/:userId/fund", Handler: h.Wallet.Fund},
			{Method: http.MethodPost, Path: "/dispatch/sweep", Handler: h.Admin.Sweep},
		})
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
