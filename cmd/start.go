package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"collector-stats/core/archive"
	"collector-stats/core/cache"
	"collector-stats/core/config"
	"collector-stats/core/database"
	"collector-stats/core/loader"
	"collector-stats/core/logger"
	"collector-stats/core/middleware/auth"
	"collector-stats/core/middleware/rayid"
	"collector-stats/core/rowstore"

	"collector-stats/feature/leaderboard"
	"collector-stats/feature/roster"
	"collector-stats/feature/tasks"
	"collector-stats/feature/worklog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "collector-stats/docs/swagger"
)

// @title Collector Stats API
// @version 1.0
// @description API for reconciled per-collector work analytics.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the collector stats server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect the cache database and build the durable tier
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect cache database", zap.Error(err))
		}
		durable, err := cache.NewDurableTier(db, logg)
		if err != nil {
			logg.Fatal("Failed to initialize durable cache tier", zap.Error(err))
		}
		cacheSvc := cache.NewService(durable, cache.DefaultPolicy(), logg)

		// 4. Row-store client
		source, err := rowstore.NewClient(cfg.Source, logg)
		if err != nil {
			logg.Fatal("Failed to create row store client", zap.Error(err))
		}

		// 5. Snapshot archiver (optional)
		var archiver *archive.Archiver
		if cfg.Archive.Enabled {
			store, err := archive.NewClient(cfg.Archive)
			if err != nil {
				logg.Fatal("Failed to create archive client", zap.Error(err))
			}
			archiver = archive.NewArchiver(store, cfg.Archive.Bucket, logg)
			logg.Info("Snapshot archiving enabled", zap.String("bucket", cfg.Archive.Bucket))
		}

		// 6. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 7. Initialize Feature Loader
		mgr := loader.NewManager()

		// Register Features
		lb := leaderboard.NewFeature(source, cacheSvc, archiver, logg)
		mgr.Register(lb)
		mgr.Register(roster.NewFeature(source, cacheSvc, lb.Service(), logg))
		mgr.Register(tasks.NewFeature(source, cacheSvc, logg))
		mgr.Register(worklog.NewFeature(source, logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 2.5 Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 4. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 5. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 6. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
		// Let in-flight background refreshes settle before exit so the durable
		// tier is as warm as possible for the next boot.
		cacheSvc.WaitForRefresh()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
