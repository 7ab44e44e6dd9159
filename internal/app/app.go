package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	blogHTTP "blogicum/internal/controller/http"
	"blogicum/internal/model"
	"blogicum/internal/repo/persistent"
	"blogicum/internal/usecase"
	"blogicum/pkg/cache"
	"blogicum/pkg/config"
	"blogicum/pkg/database"
	"blogicum/pkg/jwt"
	"blogicum/pkg/logger"
	"blogicum/pkg/middleware"
	"blogicum/pkg/queue"
	"blogicum/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "blogicum/docs" // Swagger docs
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	s3Client    *s3.Client
	jwtService  *jwt.Service
	queueClient *queue.Client
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.CategoryModel{},
		&model.LocationModel{},
		&model.PostModel{},
		&model.CommentModel{},
	); err != nil {
		log.Error("Failed to run migrations: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v (continuing without rate limiting)", err)
		redisClient = nil
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		return nil, err
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v (continuing without queue)", err)
		queueClient = nil
	}

	jwtService := jwt.NewService(cfg.JWTSecret)

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		s3Client:    s3Client,
		jwtService:  jwtService,
		queueClient: queueClient,
	}, nil
}

func (a *App) Run() error {
	// Initialize repositories
	userRepo := persistent.NewUserRepository(a.db)
	categoryRepo := persistent.NewCategoryRepository(a.db)
	locationRepo := persistent.NewLocationRepository(a.db)
	postRepo := persistent.NewPostRepository(a.db)
	commentRepo := persistent.NewCommentRepository(a.db)

	// Initialize use cases
	userUseCase := usecase.NewUserUseCase(userRepo, a.jwtService, a.log)
	postUseCase := usecase.NewPostUseCase(postRepo, userRepo, categoryRepo, locationRepo, a.s3Client, a.log)
	commentUseCase := usecase.NewCommentUseCase(commentRepo, postRepo, userRepo, a.queueClient, a.log)
	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo, locationRepo, userRepo, a.log)

	// Initialize HTTP handlers
	authHandler := blogHTTP.NewAuthHandler(userUseCase)
	postHandler := blogHTTP.NewPostHandler(postUseCase, a.log)
	commentHandler := blogHTTP.NewCommentHandler(commentUseCase, a.log)
	profileHandler := blogHTTP.NewProfileHandler(userUseCase, postUseCase, a.log)
	categoryHandler := blogHTTP.NewCategoryHandler(categoryUseCase, a.log)
	pagesHandler := blogHTTP.NewPagesHandler()

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	{
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		api.GET("/pages/about", pagesHandler.About)
		api.GET("/pages/rules", pagesHandler.Rules)

		// Read routes pick up the caller's identity when a token is
		// present so authors can see their own hidden posts.
		reads := api.Group("")
		reads.Use(middleware.OptionalAuthMiddleware(a.jwtService))
		{
			reads.GET("/posts", postHandler.ListPosts)
			reads.GET("/posts/:id", postHandler.GetPost)
			reads.GET("/categories", categoryHandler.ListCategories)
			reads.GET("/categories/:slug/posts", postHandler.ListCategoryPosts)
			reads.GET("/profiles/:username", profileHandler.GetProfile)
		}

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(a.jwtService))
		protected.Use(middleware.RateLimitMiddleware(a.redisClient, 100, time.Minute))
		{
			protected.POST("/posts", postHandler.CreatePost)
			protected.PUT("/posts/:id", postHandler.UpdatePost)
			protected.DELETE("/posts/:id", postHandler.DeletePost)
			protected.POST("/posts/:id/image", postHandler.UploadImage)

			protected.POST("/posts/:id/comments", commentHandler.AddComment)
			protected.PUT("/posts/:id/comments/:comment_id", commentHandler.UpdateComment)
			protected.DELETE("/posts/:id/comments/:comment_id", commentHandler.DeleteComment)

			protected.PUT("/profiles/:username", profileHandler.UpdateProfile)

			protected.POST("/categories", categoryHandler.CreateCategory)
			protected.POST("/locations", categoryHandler.CreateLocation)
		}
	}

	// Create HTTP server
	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		a.log.Info("Blogicum starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down blogicum...")
}

func (a *App) Shutdown() error {
	// The context is used to inform the server it has 5 seconds to finish
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	// Close RabbitMQ connection
	if a.queueClient != nil {
		a.queueClient.Close()
	}

	// Shutdown server
	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	a.log.Info("Blogicum exited")
	return nil
}
