package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"github.com/nomadlog/travel-journal/internal/handlers"
	"github.com/nomadlog/travel-journal/internal/jwt"
	"github.com/nomadlog/travel-journal/internal/logger"
	"github.com/nomadlog/travel-journal/internal/middlewares"
	"github.com/nomadlog/travel-journal/internal/migrations"
	"github.com/nomadlog/travel-journal/internal/repositories"
	"github.com/nomadlog/travel-journal/internal/services"
	"github.com/nomadlog/travel-journal/internal/storage"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/nomadlog/travel-journal/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title travel-journal API
// @version 1.0.0
// @description REST API for authoring, browsing, filtering and favoriting travel stories
// @host localhost:8000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, baseURL, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		uploadDir, assetsDir,
		jwtSecret, jwtExpHours,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, baseURL, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		uploadDir, assetsDir,
		jwtSecret, jwtExpHours,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, storage, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, baseURL, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	uploadDir, assetsDir string,
	jwtSecretKey string, jwtExpHours int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8000")
	baseURL = getEnv("APP_BASE_URL", fmt.Sprintf("http://%s:%s", appHost, appPort))
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "travel_journal")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Storage config
	uploadDir = getEnv("UPLOAD_DIR", "./uploads")
	assetsDir = getEnv("ASSETS_DIR", "./assets")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpHours, err = strconv.Atoi(getEnv("JWT_EXP_HOURS", "72")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, file store, and HTTP server.
// It applies migrations, sets up routes and middleware, and handles
// graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, baseURL, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	uploadDir, assetsDir string,
	jwtSecretKey string, jwtExpHours int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Errorw("PostgreSQL ping failed", "error", err)
		return err
	}

	// Apply migrations
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db.DB, "."); err != nil {
		logger.Log.Errorw("migrations failed", "error", err)
		return err
	}

	// Initialize file stores
	uploads, err := storage.NewFileStore(uploadDir, baseURL)
	if err != nil {
		logger.Log.Errorw("failed to initialize upload store", "error", err)
		return err
	}
	assets, err := storage.NewFileStore(assetsDir, baseURL)
	if err != nil {
		logger.Log.Errorw("failed to initialize assets store", "error", err)
		return err
	}

	// Initialize JWT service
	tokens := jwt.New(jwtSecretKey, time.Duration(jwtExpHours)*time.Hour)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	postReadRepo := repositories.NewPostReadRepository(db)
	postWriteRepo := repositories.NewPostWriteRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens)
	placeholderURL := baseURL + "/assets/mountains-bg.jpg"
	postService := services.NewPostService(postReadRepo, postWriteRepo, uploads, placeholderURL)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	getUserHandler := handlers.NewGetUserHandler(authService, tokens)
	uploadImageHandler := handlers.NewUploadImageHandler(uploads)
	deleteImageHandler := handlers.NewDeleteImageHandler(uploads)
	addPostHandler := handlers.NewAddPostHandler(postService, tokens)
	getPostsHandler := handlers.NewGetPostsHandler(postService, tokens)
	editPostHandler := handlers.NewEditPostHandler(postService, tokens)
	deletePostHandler := handlers.NewDeletePostHandler(postService, tokens)
	favouriteHandler := handlers.NewFavouriteHandler(postService, tokens)
	searchHandler := handlers.NewSearchHandler(postService, tokens)
	filterHandler := handlers.NewFilterHandler(postService, tokens)
	serveUploadsHandler := handlers.NewServeFileHandler(uploads)
	serveAssetsHandler := handlers.NewServeFileHandler(assets)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	// Public routes
	r.Post("/create-user", registerHandler)
	r.Post("/login-user", loginHandler)
	r.Get("/uploads/{filename}", serveUploadsHandler)
	r.Get("/assets/{filename}", serveAssetsHandler)

	// Protected routes with JWT middleware
	authMiddleware := middlewares.AuthMiddleware(tokens)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/get-user", getUserHandler)
		r.Post("/image-upload", uploadImageHandler)
		r.Delete("/delete-image", deleteImageHandler)
		r.Post("/add-travel-post", addPostHandler)
		r.Get("/get-all-posts", getPostsHandler)
		r.Put("/edit-travel-post/{id}", editPostHandler)
		r.Delete("/delete-travel-post/{id}", deletePostHandler)
		r.Put("/update-is-favourite/{id}", favouriteHandler)
		r.Get("/search", searchHandler)
		r.Get("/travel-posts/filter", filterHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
