package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"guide-sync/core/loader"
	"guide-sync/core/logger"
	"guide-sync/core/middleware/auth"
	"guide-sync/core/middleware/rayid"
	"guide-sync/feature/catalog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "guide-sync/docs/swagger"
)

// @title Guide Sync API
// @version 1.0
// @description Dry-run reconciliation reports between the guide and the codex.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// reportTTL is how long a report is reused before it is rebuilt.
const reportTTL = time.Minute

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the report API server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logg, err := setup()
		if err != nil {
			log.Fatal(err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		if err := cfg.Server.Validate(); err != nil {
			logg.Fatal("Invalid server configuration", zap.Error(err))
		}

		// The API still serves swagger without the guide database.
		var svc *catalog.Service
		if guide, err := openGuide(cfg); err != nil {
			logg.Warn("Guide database unavailable, reports disabled", zap.Error(err))
		} else {
			snaps, _, err := openSnapshots(cfg)
			if err != nil {
				logg.Fatal("Failed to create storage client", zap.Error(err))
			}
			svc = catalog.NewService(snaps, cfg.Reconcile.SnapshotPrefixes(), guide, logg, reportTTL)
			logg.Info("Connected to guide database", zap.String("driver", cfg.Database.Driver))
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager()
		mgr.Register(catalog.NewFeature(svc, logg, cfg.Server.ReportTimeout()))

		// RayID must be first to trace everything.
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

		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		loaded, err := mgr.LoadAll(app)
		if err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}
		logg.Info("Features loaded", zap.Strings("features", loaded))

		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

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
