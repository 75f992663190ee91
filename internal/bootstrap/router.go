package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/itsshubhpandey/LaunchPad/internal/api/http"
	launchpadhttp "github.com/itsshubhpandey/LaunchPad/internal/launchpad/http"
	"github.com/itsshubhpandey/LaunchPad/internal/launchpad/service"
	"github.com/itsshubhpandey/LaunchPad/internal/middleware"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	DB          *pgxpool.Pool
	Redis       *redis.Client
	Launchpad   *service.LaunchpadService
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB, dep.Redis)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")
	api.Use(middleware.RequestID())
	api.Use(middleware.CallerIdentity())

	launchpadHandler := launchpadhttp.NewHandler(dep.Launchpad)
	launchpadHandler.Register(api)

	return r
}
