package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"ghost-storage-gcs/core/adapter"
	"ghost-storage-gcs/core/config"
	"ghost-storage-gcs/core/loader"
	"ghost-storage-gcs/core/logger"
	"ghost-storage-gcs/core/middleware/auth"
	"ghost-storage-gcs/core/middleware/rayid"
	"ghost-storage-gcs/feature/assets"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "ghost-storage-gcs/docs/swagger"
)

// @title Ghost GCS Storage API
// @version 1.0
// @description Asset storage host backed by Google Cloud Storage.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the asset host",
	Long:  `Starts the HTTP server exposing the storage adapter and the public images route.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, store, err := setup(cmd.Context())
		if err != nil {
			return err
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		logg.Info("Storage adapter ready",
			zap.String("bucket", store.Config().Bucket),
			zap.String("base_url", store.BaseURL()),
			zap.Bool("uniform_bucket_level_access", store.Config().UniformBucketLevelAccess))

		app, err := newApp(cfg, logg, store)
		if err != nil {
			return err
		}

		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

// newApp builds the Fiber app: ray id, request logging, swagger, the optional API key
// guard on the management routes and the registered features.
func newApp(cfg *config.Config, logg *zap.Logger, store *adapter.StorageAdapter) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             cfg.Server.BodyLimit(),
	})

	mgr := loader.NewManager()
	mgr.Register(assets.NewFeature(store, logg, cfg.Server.ImagesPath))

	// RayID first so every log line below carries it
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

	// Images stay public; only the management API needs the key
	if cfg.Server.AuthEnabled() {
		app.Use("/assets", auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))
	} else {
		logg.Warn("server.api_key is empty, asset management routes are unauthenticated")
	}

	if err := mgr.LoadAll(app); err != nil {
		return nil, err
	}
	return app, nil
}

func init() {
	RootCmd.AddCommand(startCmd)
}
