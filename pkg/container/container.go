package container

import (
	"context"
	"fmt"
	"time"

	"journal-backend/internal/config"
	infraArchive "journal-backend/internal/infrastructure/archive"
	infraCache "journal-backend/internal/infrastructure/cache"
	"journal-backend/internal/infrastructure/database"
	"journal-backend/internal/infrastructure/email"
	"journal-backend/internal/infrastructure/queue"
	"journal-backend/pkg/cache"
	"journal-backend/pkg/jwt"
	"journal-backend/pkg/logger"

	"journal-backend/internal/domains/archive"
	archiveHandler "journal-backend/internal/domains/archive/handler"
	archiveService "journal-backend/internal/domains/archive/service"
	"journal-backend/internal/domains/article"
	articleHandler "journal-backend/internal/domains/article/handler"
	articleRepo "journal-backend/internal/domains/article/repository"
	articleService "journal-backend/internal/domains/article/service"
	"journal-backend/internal/domains/auth"
	authHandler "journal-backend/internal/domains/auth/handler"
	authRepo "journal-backend/internal/domains/auth/repository"
	authService "journal-backend/internal/domains/auth/service"
	"journal-backend/internal/domains/journal"
	journalHandler "journal-backend/internal/domains/journal/handler"
	journalRepo "journal-backend/internal/domains/journal/repository"
	journalService "journal-backend/internal/domains/journal/service"
	"journal-backend/internal/domains/notification"
	notificationHandler "journal-backend/internal/domains/notification/handler"
	notificationService "journal-backend/internal/domains/notification/service"
	"journal-backend/internal/domains/reviewer"
	reviewerHandler "journal-backend/internal/domains/reviewer/handler"
	reviewerRepo "journal-backend/internal/domains/reviewer/repository"
	reviewerService "journal-backend/internal/domains/reviewer/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container is the root of the dependency graph. Everything in it is
// a singleton built once at startup.
type Container struct {
	// Infrastructure
	Config      *config.Config
	DB          *database.MongoDB
	Cache       cache.Cache
	JWTManager  *jwt.Manager
	QueueClient *queue.Client
	Mailer      email.Mailer
	Builder     *infraArchive.Builder

	// Repositories
	AuthRepo     auth.Repository
	JournalRepo  journal.Repository
	ReviewerRepo reviewer.Repository
	ArticleRepo  article.Repository

	// Services
	AuthService         auth.Service
	JournalService      journal.Service
	ReviewerService     reviewer.Service
	ArticleService      article.Service
	NotificationService notification.Service
	ArchiveService      archive.Service

	// Handlers
	AuthHandler         *authHandler.AuthHandler
	JournalHandler      *journalHandler.JournalHandler
	ReviewerHandler     *reviewerHandler.ReviewerHandler
	ArticleHandler      *articleHandler.ArticleHandler
	NotificationHandler *notificationHandler.NotificationHandler
	ArchiveHandler      *archiveHandler.ArchiveHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer builds the full dependency graph in order: config,
// infrastructure, repositories, services, handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	logger.Info("Config loaded", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	db := database.NewMongoDB(&cfg.Mongo)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := db.EnsureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure indexes: %w", err)
	}
	c.DB = db
	logger.Info("MongoDB connected", map[string]interface{}{
		"database": cfg.Mongo.Database,
	})

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			// Cache misses fall through to mongo; keep booting.
			logger.Warn("Redis connection failed (non-critical)", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
	c.Cache = redisCache

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	c.QueueClient = queue.NewClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	c.Mailer = email.NewSMTPMailer(&cfg.SMTP)
	c.Builder = infraArchive.NewBuilder(&cfg.Storage, c.QueueClient)

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	logger.Info("DI container initialized", nil)
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initRepositories() {
	c.AuthRepo = authRepo.NewMongoRepository(c.DB)
	c.JournalRepo = journalRepo.NewMongoRepository(c.DB, c.Cache)
	c.ReviewerRepo = reviewerRepo.NewMongoRepository(c.DB)
	c.ArticleRepo = articleRepo.NewMongoRepository(c.DB)
}

func (c *Container) initServices() {
	c.AuthService = authService.NewAuthService(c.AuthRepo, c.JWTManager)
	c.JournalService = journalService.NewJournalService(c.JournalRepo, c.AuthRepo)
	c.ReviewerService = reviewerService.NewReviewerService(c.ReviewerRepo, c.AuthRepo)
	c.ArticleService = articleService.NewArticleService(c.ArticleRepo, c.ReviewerRepo, c.QueueClient)
	c.NotificationService = notificationService.NewNotificationService(c.Mailer)
	c.ArchiveService = archiveService.NewArchiveService(c.Builder)
}

func (c *Container) initHandlers() {
	c.AuthHandler = authHandler.NewAuthHandler(c.AuthService)
	c.JournalHandler = journalHandler.NewJournalHandler(c.JournalService)
	c.ReviewerHandler = reviewerHandler.NewReviewerHandler(c.ReviewerService)
	c.ArticleHandler = articleHandler.NewArticleHandler(c.ArticleService, c.Config.Storage.UploadDir)
	c.NotificationHandler = notificationHandler.NewNotificationHandler(c.NotificationService)
	c.ArchiveHandler = archiveHandler.NewArchiveHandler(c.ArchiveService)
}

// Cleanup releases external connections. Call on shutdown.
func (c *Container) Cleanup(ctx context.Context) error {
	var firstErr error

	if c.QueueClient != nil {
		if err := c.QueueClient.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok && rc != nil {
		if err := rc.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if c.DB != nil {
		if err := c.DB.Close(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
