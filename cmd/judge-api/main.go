package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"dicegame/cmd/judge-api/apihandlers"
	"dicegame/pkg/config"
	"dicegame/pkg/utils"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (falls back to $DICEGAME_CONFIG)")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Error loading config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	utils.InitLogger(conf.Logging, os.Stdout)

	if err := run(conf); err != nil {
		slog.Error("Exited judge API", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// run serves the API until the listener fails.
func run(conf *config.Config) error {
	router, err := newRouter(conf)
	if err != nil {
		return err
	}

	slog.Info("Starting judge API on port " + conf.Server.Port)
	return router.Run(":" + conf.Server.Port)
}

func newRouter(conf *config.Config) (*gin.Engine, error) {
	if !conf.Server.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	dealer, err := conf.Game.NewDealer()
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if len(conf.Server.AllowOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:  conf.Server.AllowOrigins,
			AllowMethods:  []string{"POST", "GET"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Content-Length"},
			ExposeHeaders: []string{"Content-Type", "Content-Length"},
			MaxAge:        12 * time.Hour,
		}))
	}

	router.GET("/", apihandlers.HealthCheckHandle)
	apiModule := apihandlers.NewHTTPHandler(
		dealer,
		conf.Game.Target,
		conf.Server.MaxExpressionLength,
	)
	apiModule.AddRoutes(router.Group("/"))

	return router, nil
}
