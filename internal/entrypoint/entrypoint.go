package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/id01t/bookforge/internal/config"
	"github.com/id01t/bookforge/internal/exporters"
	"github.com/id01t/bookforge/internal/history"
	http_controllers "github.com/id01t/bookforge/internal/http"
	"github.com/id01t/bookforge/internal/scheduler"
	"github.com/id01t/bookforge/internal/services"
	"github.com/id01t/bookforge/internal/tasks"
	"github.com/id01t/bookforge/internal/templates"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Call shutdown callback first (e.g., to stop task queue)
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting BookForge v%s", version)

	// Initialize history store
	store, err := history.NewStore(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize history store: %v", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("Error closing history store: %v", err)
		}
	}()

	generator := services.NewGenerator(cfg, store)
	exporter := exporters.NewManuscriptExporter(cfg.Export.Dir)

	// Initialize task queue if enabled
	var taskClient *tasks.Client
	var taskCtxCancel context.CancelFunc
	if cfg.Tasks.Enabled {
		taskCfg := tasks.Config{
			Workers:         cfg.Tasks.Workers,
			ReleaseAfter:    cfg.Tasks.ReleaseAfter,
			CleanupInterval: cfg.Tasks.CleanupInterval,
		}

		taskClient, err = tasks.NewClient(cfg.Database.Path, taskCfg)
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Printf("Error closing task client: %v", err)
			}
		}()

		taskClient.Register(
			tasks.NewGenerateBookQueue(generator, exporter),
		)

		// Start task workers in background
		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)
	}

	// Start the WAL checkpoint scheduler if enabled
	var checkpoint *scheduler.CheckpointScheduler
	if cfg.Checkpoint.Enabled {
		checkpoint = scheduler.NewCheckpointScheduler(store, cfg.Checkpoint.Schedule)
		if err := checkpoint.Start(context.Background()); err != nil {
			log.Printf("WARNING: Failed to start checkpoint scheduler: %v", err)
			checkpoint = nil
		}
	}

	routerCfg := http_controllers.RouterConfig{
		Generator:  generator,
		History:    store,
		Templates:  templates.NewCatalog(),
		Store:      store,
		TaskClient: taskClient,
		Version:    version,
	}

	router := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		if checkpoint != nil {
			checkpoint.Stop()
		}
		if taskClient != nil && taskCtxCancel != nil {
			taskClient.Stop(ctx)
			taskCtxCancel()
		}
	}

	Serve(router, cfg, onShutdown)
}
