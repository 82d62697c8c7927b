package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"xwing-inventory/core/database"
	"xwing-inventory/core/loader"
	"xwing-inventory/core/logger"
	"xwing-inventory/core/middleware/auth"
	"xwing-inventory/core/middleware/rayid"
	"xwing-inventory/feature/integrity"
	"xwing-inventory/feature/report"
	"xwing-inventory/feature/snapshot"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "xwing-inventory/docs/swagger"
)

// @title X-Wing Inventory API
// @version 1.0
// @description Reconciles an X-Wing miniatures collection into an owned inventory.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the inventory server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		rt, err := bootstrap(false)
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		logg := rt.log
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		opts, err := rt.options()
		if err != nil {
			logg.Fatal("Invalid reconcile options", zap.Error(err))
		}

		// The database is optional; without it snapshots are disabled.
		var db *gorm.DB
		if conn, err := database.Connect(rt.cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to database", zap.String("driver", rt.cfg.Database.Driver))
		}

		reports := report.NewService(rt.inputs(), opts, rt.cfg.Reconcile.CacheTTL(), logg)

		var snapshots *snapshot.Service
		if db != nil {
			store := snapshot.NewStore(db, logg)
			if err := store.Migrate(cmd.Context()); err != nil {
				logg.Fatal("Failed to migrate snapshot tables", zap.Error(err))
			}
			snapshots = snapshot.NewService(store, reports, logg)
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager(logg)
		mgr.Register(report.NewFeature(reports))
		mgr.Register(snapshot.NewFeature(snapshots))
		mgr.Register(integrity.NewFeature(integrity.NewService(rt.src, rt.cfg.Sources, db, logg)))

		// RayID goes first so every later log line carries it.
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

		// Swagger stays public.
		app.Get("/swagger/*", swagger.HandlerDefault)

		if !rt.cfg.Server.IsProtected() {
			logg.Warn("No API key configured, the API is open")
		}
		app.Use(auth.New(auth.Config{ApiKey: rt.cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server", zap.String("port", rt.cfg.Server.Port), zap.Strings("features", mgr.Enabled()))
			if err := app.Listen(rt.cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		if err := app.ShutdownWithTimeout(rt.cfg.Server.ShutdownTimeout()); err != nil {
			logg.Warn("Shutdown did not complete", zap.Error(err))
		}
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
