package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	mysqlRepo "github.com/vishnukothappllii/Blogging-Platform/internal/repository/mysql"
	redisCache "github.com/vishnukothappllii/Blogging-Platform/internal/repository/redis"
	"github.com/vishnukothappllii/Blogging-Platform/internal/workers"

	"github.com/vishnukothappllii/Blogging-Platform/internal/gateway"
	"github.com/vishnukothappllii/Blogging-Platform/internal/rest"
	"github.com/vishnukothappllii/Blogging-Platform/internal/rest/middleware"
	"github.com/vishnukothappllii/Blogging-Platform/internal/usecase/article"
	"github.com/vishnukothappllii/Blogging-Platform/internal/usecase/comment"
	"github.com/vishnukothappllii/Blogging-Platform/internal/usecase/engagement"
	"github.com/vishnukothappllii/Blogging-Platform/internal/usecase/feed"
	"github.com/vishnukothappllii/Blogging-Platform/internal/usecase/playlist"
	"github.com/vishnukothappllii/Blogging-Platform/internal/usecase/user"
)

const (
	defaultTimeout       = 30
	defaultAddress       = ":9090"
	defaultCacheDB       = 0
	defaultBloomBitSize  = 10000000
	defaultRatePerMinute = 120
	defaultReconcileMins = 30
	dbMaxRetry           = 10
	dbRetryIntervalSec   = 2
)

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
}

func main() {
	//prepare database
	dbHost := os.Getenv("DATABASE_HOST")
	dbPort := os.Getenv("DATABASE_PORT")
	dbUser := os.Getenv("DATABASE_USER")
	dbPass := os.Getenv("DATABASE_PASS")
	dbName := os.Getenv("DATABASE_NAME")
	connection := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbUser, dbPass, dbHost, dbPort, dbName)
	val := url.Values{}
	val.Add("parseTime", "1")
	dsn := fmt.Sprintf("%s?%s", connection, val.Encode())

	var (
		db  *gorm.DB
		err error
	)

	for i := range dbMaxRetry {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Printf("failed to open connection to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		} else {
			var sqlDB *sql.DB
			sqlDB, err = db.DB()
			if err != nil {
				log.Printf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, dbMaxRetry, err)
				continue
			}
			err = sqlDB.Ping()
			if err == nil {
				break
			}
			log.Printf("failed to ping database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
			_ = sqlDB.Close()
		}

		time.Sleep(dbRetryIntervalSec * time.Second)
	}

	if err != nil {
		log.Fatal("could not connect to database after retries:", err)
	}

	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal("got error when getting sql.DB from gorm.DB", err)
		}
		if err := sqlDB.Close(); err != nil {
			log.Fatal("got error when closing the DB connection", err)
		}
	}()

	// prepare cache
	cacheHost := os.Getenv("CACHE_HOST")
	cachePort := os.Getenv("CACHE_PORT")
	cachePass := os.Getenv("CACHE_PASS")
	cacheDB, err := strconv.Atoi(os.Getenv("CACHE_DB"))
	if err != nil {
		log.Println("failed to parse cacheDB, using default cacheDB")
		cacheDB = defaultCacheDB
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cacheHost + ":" + cachePort,
		Password: cachePass,
		DB:       cacheDB,
	})
	defer func() {
		if err := client.Close(); err != nil {
			log.Fatal("got error when closing the cache connection", err)
		}
	}()

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		log.Fatal("failed to open connection to cache", err)
		return
	}

	// prepare gin
	route := gin.Default()
	route.Use(middleware.CORS())
	timeout, err := strconv.Atoi(os.Getenv("CONTEXT_TIMEOUT"))
	if err != nil {
		log.Println("failed to parse timeout, using default timeout")
		timeout = defaultTimeout
	}
	route.Use(middleware.SetRequestContextWithTimeout(time.Duration(timeout) * time.Second))

	ratePerMinute, err := strconv.Atoi(os.Getenv("RATE_LIMIT_PER_MINUTE"))
	if err != nil {
		log.Println("failed to parse rate limit, using default")
		ratePerMinute = defaultRatePerMinute
	}
	route.Use(middleware.RateLimit(ratePerMinute))

	// Prepare Repository
	userRepo := mysqlRepo.NewUserRepository(db)
	articleRepo := mysqlRepo.NewArticleRepository(db)
	commentRepo := mysqlRepo.NewCommentRepository(db)
	followRepo := mysqlRepo.NewFollowRepository(db)
	likeRepo := mysqlRepo.NewLikeRepository(db)
	counterRepo := mysqlRepo.NewCounterRepository(db)
	postRepo := mysqlRepo.NewPostRepository(db)
	playlistRepo := mysqlRepo.NewPlaylistRepository(db)

	engagementCache := redisCache.NewEngagementCache(client)
	bloomBitSize, err := strconv.ParseUint(os.Getenv("BLOOM_FILTER_SIZE"), 10, 64)
	if err != nil {
		log.Printf("failed to parse bloom bit size, using default size")
		bloomBitSize = defaultBloomBitSize
	}
	bloomRepo := redisCache.NewArticleBloomRepo(client, bloomBitSize)

	assetReleaser := gateway.NewAssetReleaser()
	mailer := gateway.NewMailer(os.Getenv("MAIL_FROM"))

	// Start worker
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reconcileMins, err := strconv.Atoi(os.Getenv("RECONCILE_INTERVAL_MINUTES"))
	if err != nil {
		log.Println("failed to parse reconcile interval, using default")
		reconcileMins = defaultReconcileMins
	}
	reconciler := workers.NewCounterReconciler(counterRepo, userRepo, articleRepo, commentRepo, time.Duration(reconcileMins)*time.Minute)
	go reconciler.Start(ctx)

	// Build service Layer
	jwtSecret := os.Getenv("JWT_SECRET")

	engagementSvc := engagement.NewService(followRepo, likeRepo, counterRepo, userRepo, articleRepo, commentRepo, engagementCache, reconciler)
	articleSvc := article.NewService(articleRepo, userRepo, commentRepo, likeRepo, playlistRepo, bloomRepo, assetReleaser)
	commentSvc := comment.NewService(commentRepo, articleRepo, userRepo, counterRepo, bloomRepo, reconciler)
	feedSvc := feed.NewService(postRepo, followRepo, userRepo)
	playlistSvc := playlist.NewService(playlistRepo, articleRepo, bloomRepo)
	userSvc := user.NewService(userRepo, followRepo, likeRepo, commentRepo, articleRepo, postRepo, playlistRepo, counterRepo, engagementCache, assetReleaser, mailer, reconciler, jwtSecret)

	engagementHandler := rest.NewEngagementHandler(engagementSvc)
	articleHandler := rest.NewArticleHandler(articleSvc)
	commentHandler := rest.NewCommentHandler(commentSvc)
	feedHandler := rest.NewFeedHandler(feedSvc)
	playlistHandler := rest.NewPlaylistHandler(playlistSvc)
	userHandler := rest.NewUserHandler(userSvc)

	authMiddleware := middleware.Auth(jwtSecret)

	// Prepare bloom filter
	if err := articleSvc.InitBloomFilter(ctx); err != nil {
		log.Printf("failed to init bloom filter: %v\n", err)
		return
	}

	// Register routes
	route.POST("/register", userHandler.Register)
	route.POST("/login", userHandler.Login)

	route.GET("/users/:id", userHandler.GetProfile)
	route.GET("/users/:id/followers", engagementHandler.Followers)
	route.GET("/users/:id/following", engagementHandler.Following)
	route.GET("/users/:id/articles", articleHandler.FetchByAuthor)
	route.GET("/users/:id/posts", feedHandler.UserPosts)
	route.GET("/users/:id/playlists", playlistHandler.FetchByOwner)

	route.GET("/articles", articleHandler.Fetch)
	route.GET("/articles/:id", articleHandler.GetByID)
	route.GET("/articles/:id/comments", commentHandler.FetchTopLevel)
	route.GET("/comments/:id/replies", commentHandler.FetchReplies)

	route.GET("/posts/hashtag/:tag", feedHandler.HashtagPosts)
	route.GET("/playlists/:id", playlistHandler.Get)

	authorized := route.Group("/")
	authorized.Use(authMiddleware)
	{
		authorized.PUT("/users/me", userHandler.UpdateProfile)
		authorized.PUT("/users/me/password", userHandler.EditPassword)
		authorized.DELETE("/users/me", userHandler.Delete)

		authorized.POST("/users/:id/follow", engagementHandler.ToggleFollow)
		authorized.GET("/users/:id/follow", engagementHandler.FollowStatus)

		authorized.POST("/articles", articleHandler.Store)
		authorized.PUT("/articles/:id", articleHandler.Update)
		authorized.DELETE("/articles/:id", articleHandler.Delete)
		authorized.POST("/articles/:id/like", engagementHandler.ToggleArticleLike)
		authorized.GET("/articles/:id/like", engagementHandler.ArticleLikeStatus)

		authorized.POST("/articles/:id/comments", commentHandler.CreateComment)
		authorized.POST("/comments/:id/replies", commentHandler.ReplyComment)
		authorized.PUT("/comments/:id", commentHandler.EditComment)
		authorized.DELETE("/comments/:id", commentHandler.DeleteComment)
		authorized.POST("/comments/:id/like", engagementHandler.ToggleCommentLike)
		authorized.GET("/comments/:id/like", engagementHandler.CommentLikeStatus)

		authorized.GET("/me/likes/articles", engagementHandler.LikedArticles)
		authorized.GET("/me/likes/comments", engagementHandler.LikedComments)

		authorized.GET("/feed", feedHandler.GetFeed)
		authorized.POST("/posts", feedHandler.CreatePost)
		authorized.PUT("/posts/:id", feedHandler.UpdatePost)
		authorized.DELETE("/posts/:id", feedHandler.DeletePost)

		authorized.POST("/playlists", playlistHandler.Create)
		authorized.DELETE("/playlists/:id", playlistHandler.Delete)
		authorized.POST("/playlists/:id/articles/:articleID", playlistHandler.AddArticle)
		authorized.DELETE("/playlists/:id/articles/:articleID", playlistHandler.RemoveArticle)
	}

	// Start Server
	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = defaultAddress
	}
	srv := &http.Server{
		Addr:    address,
		Handler: route,
	}
	go func() {
		log.Printf("Server is running on %s\n", address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err) // nolint
		}
	}()

	// shutdown
	<-ctx.Done()
	log.Println("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Waiting for worker to cleanup...")
	time.Sleep(2 * time.Second)

	log.Println("Server exiting")
}
