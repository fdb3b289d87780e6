package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"ayushyaa-be/internal/admin"
	"ayushyaa-be/internal/api"
	"ayushyaa-be/internal/blob"
	"ayushyaa-be/internal/catalog"
	"ayushyaa-be/internal/category"
	"ayushyaa-be/internal/config"
	"ayushyaa-be/internal/db"
	"ayushyaa-be/internal/kvstore"
	"ayushyaa-be/internal/logger"
	"ayushyaa-be/internal/middleware"
	"ayushyaa-be/internal/order"
	"ayushyaa-be/internal/product"
	"ayushyaa-be/internal/user"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

var (
	initDBFunc    = db.InitDB
	openStoreFunc = func(path string) (kvstore.Store, func() error, error) {
		s, err := kvstore.Open(path)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	}
	startServerFunc = func(srv *http.Server) error {
		return srv.ListenAndServe()
	}
)

func main() {
	if err := run(); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}

func run() error {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv, cfg.LogLevel)
	defer logger.Sync()

	database := initDBFunc(cfg)
	defer database.Close()

	store, closeStore, err := openStoreFunc(cfg.LocalStorePath)
	if err != nil {
		return err
	}
	defer closeStore()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	handler, err := newServer(ctx, cfg, database, store)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g := new(errgroup.Group)
	g.Go(func() error {
		defer stop()
		logger.L().Info("server running", zap.String("addr", "http://localhost:"+cfg.AppPort))
		if err := startServerFunc(srv); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// newServer wires repositories, services and the HTTP surface. The returned
// handler is fully wrapped in the request middleware chain.
func newServer(ctx context.Context, cfg *config.Config, database *sql.DB, store kvstore.Store) (http.Handler, error) {
	categoryRepo := category.NewRepository(database)
	productRepo := product.NewRepository(database)
	blobs := blob.NewFileStore(cfg.BlobDir, cfg.BlobBaseURL)

	adminCred, err := user.NewAdminCredential(cfg.AdminUsername, cfg.AdminPassword)
	if err != nil {
		return nil, fmt.Errorf("admin credential: %w", err)
	}

	h := api.NewHandler(api.Deps{
		Catalog:   catalog.NewService(categoryRepo, productRepo),
		Products:  productRepo,
		Admin:     admin.NewService(productRepo, categoryRepo, blobs),
		Orders:    order.NewService(),
		Store:     store,
		Registry:  user.NewRegistry(store),
		AdminCred: adminCred,
	})

	limiter := middleware.NewLimiter()
	go limiter.Run(ctx)

	router := setupRouter(h.Routes(), cfg.BlobDir, cfg.BlobBaseURL)

	var chain http.Handler = router
	chain = limiter.Middleware(chain)
	chain = middleware.AuthMiddleware(chain)
	chain = logger.LoggingMiddleware(chain)
	chain = middleware.ClientScope(chain)
	chain = middleware.CORS(chain)
	chain = logger.RequestIDMiddleware(chain)
	return chain, nil
}

// setupRouter mounts the API next to the health probe and, when images are
// served locally, the upload directory.
func setupRouter(apiRoutes http.Handler, blobDir, blobBaseURL string) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	if prefix := strings.TrimRight(blobBaseURL, "/"); strings.HasPrefix(prefix, "/") {
		mux.Handle("GET "+prefix+"/", http.StripPrefix(prefix+"/", http.FileServer(http.Dir(blobDir))))
	}

	mux.Handle("/", apiRoutes)
	return mux
}
