package routes

import (
	"net/http"

	_ "mecanica_gestao/docs"
	"mecanica_gestao/internal/adapter/http/handlers"
	"mecanica_gestao/internal/adapter/http/middleware"
	"mecanica_gestao/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

const (
	PathAuth          = "/auth"
	PathCustomers     = "/customers"
	PathBudgets       = "/budgets"
	PathServiceOrders = "/service-orders"
	PathReceivables   = "/receivables"
	PathPayables      = "/payables"
	PathCommissions   = "/commissions"
	PathDashboard     = "/dashboard"
	PathUsers         = "/users"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Auth          *handlers.AuthHandler
	Customers     *handlers.CustomerHandler
	Budgets       *handlers.BudgetHandler
	ServiceOrders *handlers.ServiceOrderHandler
	Receivables   *handlers.ReceivableHandler
	Payables      *handlers.PayableHandler
	Dashboard     *handlers.DashboardHandler
	Users         *handlers.UserHandler
}

type Options struct {
	Sessions    middleware.SessionResolver
	Metrics     *metrics.Metrics
	CORSOrigins []string
	// AuthLimiter throttles the public auth endpoints. Nil disables it.
	AuthLimiter *limiter.Limiter
}

// NewRouter builds the engine: global middleware, docs, metrics and the /v1 API.
func NewRouter(h Handlers, opts Options) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogger(opts.Metrics))
	router.Use(middleware.CORS(opts.CORSOrigins))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	public := v1.Group(PathAuth)
	if opts.AuthLimiter != nil {
		public.Use(middleware.RateLimit(opts.AuthLimiter))
	}
	addPublicAuthRoutes(public, h.Auth)

	private := v1.Group("")
	private.Use(middleware.Authenticate(opts.Sessions))
	addSessionRoutes(private.Group(PathAuth), h.Auth)
	addCustomerRoutes(private.Group(PathCustomers), h.Customers)
	addBudgetRoutes(private.Group(PathBudgets), h.Budgets)
	addServiceOrderRoutes(private.Group(PathServiceOrders), h.ServiceOrders)
	addFinanceRoutes(private, h.Receivables, h.Payables)
	addDashboardRoutes(private.Group(PathDashboard), h.Dashboard)
	addUserRoutes(private.Group(PathUsers), h.Users)

	return router
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
