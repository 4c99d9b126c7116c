package cmd

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"htmx-greeter/core/assets"
	"htmx-greeter/core/config"
	"htmx-greeter/core/loader"
	"htmx-greeter/core/logger"
	"htmx-greeter/core/middleware/rayid"
	"htmx-greeter/core/middleware/trace"
	"htmx-greeter/core/router"
	"htmx-greeter/core/server"
	"htmx-greeter/feature/greeting"
	"htmx-greeter/feature/webassets"
	"htmx-greeter/web"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Loads the embedded assets and templates, binds 0.0.0.0 on the configured port and serves until interrupted.`,
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	RootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Initialize Logger
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	// 3. Validate the port before anything is bound
	addr, err := cfg.Server.ListenAddr()
	if err != nil {
		return err
	}

	// 4. Build the app
	app, err := buildApp(logg)
	if err != nil {
		return err
	}

	// 5. Bind
	ln, err := net.Listen(fiber.NetworkTCP4, addr)
	if err != nil {
		return fmt.Errorf("failed to bind %s: %w", addr, err)
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return serve(ctx, app, ln, logg)
}

// buildApp wires middleware, features and the route table onto a new app.
func buildApp(logg *zap.Logger) (*fiber.App, error) {
	root, err := assets.New(web.Root)
	if err != nil {
		return nil, err
	}
	static, err := assets.New(web.Static())
	if err != nil {
		return nil, err
	}

	greetingFeature, err := greeting.NewFeature(web.Templates, logg)
	if err != nil {
		return nil, err
	}
	assetsFeature, err := webassets.NewFeature(root, static)
	if err != nil {
		return nil, err
	}

	app := server.NewApp(logg)

	// Middleware Registration
	// 1. RayID (Must be first so the span carries it)
	app.Use(rayid.New())
	// 2. Request span
	app.Use(trace.New(trace.Config{Logger: logg}))
	// 3. Panics become 500s inside the span
	app.Use(recover.New())

	mgr := loader.NewManager(logg)
	mgr.Register(greetingFeature)
	mgr.Register(assetsFeature)

	routes := router.NewTable()
	if err := mgr.LoadAll(routes); err != nil {
		return nil, err
	}
	routes.Mount(app)

	logg.Debug("Routes mounted",
		zap.Int("routes", len(routes.Routes())),
		zap.Int("static_assets", static.Len()),
	)
	return app, nil
}

// commandContext returns the command's context, which is nil when RunE is
// invoked directly.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// serve runs app on ln until ctx is cancelled or the server fails.
func serve(ctx context.Context, app *fiber.App, ln net.Listener, logg *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logg.Info("listening", zap.String("addr", ln.Addr().String()))
		errCh <- app.Listener(ln)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		logg.Info("Shutting down server...")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			return fmt.Errorf("failed to shut down: %w", err)
		}
		return nil
	}
}
