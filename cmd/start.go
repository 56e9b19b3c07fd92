package cmd

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"msforge/core/config"
	"msforge/core/database"
	"msforge/core/loader"
	"msforge/core/logger"
	"msforge/core/metrics"
	"msforge/core/middleware/auth"
	"msforge/core/middleware/rayid"
	"msforge/core/snapshot"
	"msforge/core/storage"
	"msforge/feature/compare"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the msforge server",
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

		// 3. Connect to Database (Optional, reports are not stored without it)
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			if errors.Is(err, database.ErrDisabled) {
				logg.Info("Report database disabled")
			} else {
				logg.Warn("Optional database connection failed", zap.Error(err))
			}
		} else {
			db = conn
			logg.Info("Connected to report database", zap.String("driver", cfg.Database.Driver))
		}

		// 4. Initialize Storage
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}
		if err := storage.EnsureBucket(context.Background(), client, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
			logg.Warn("Snapshot bucket unavailable", zap.String("bucket", cfg.Storage.Bucket), zap.Error(err))
		}
		store := snapshot.NewStore(client, cfg.Storage.Bucket,
			snapshot.WithCacheTTL(cfg.Storage.CacheTTL()),
			snapshot.WithLogger(logg),
		)

		m := metrics.New()

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             cfg.Server.BodyLimit(),
		})

		// 5. Initialize Feature Loader
		mgr := loader.NewManager(logg)
		mgr.Register(compare.NewFeature(store, db, cfg.Diff, m, logg))

		// RayID must be first to trace everything
		app.Use(rayid.New())

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

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey, Skip: []string{"/metrics"}}))
		app.Get("/metrics", m.Handler())

		// 6. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 7. Start Server
		go func() {
			logg.Info("Starting server", zap.String("address", cfg.Server.Address()))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
