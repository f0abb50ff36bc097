// @title           Catalog Admin API
// @version         1.0
// @description     Password-gated editor API for the product and labor catalog plus quote exports.

// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @schemes http https
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync/atomic"
	"syscall"
	"time"

	_ "backend/docs"
	"backend/handlers"
	"backend/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// pruneRunning guards against overlapping backup prune runs.
var pruneRunning int32

// backupRetention is how long replaced document versions are kept.
const backupRetention = 90 * 24 * time.Hour

func CORSConfig() cors.Config {
	corsConfig := cors.DefaultConfig()
	origins := os.Getenv("ALLOWED_ORIGINS")
	if origins != "" {
		corsConfig.AllowOrigins = []string{origins}
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:5173",
			"http://localhost:5174",
			"http://localhost:3000",
		}
	}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{
		"Content-Type", "Content-Length", "Accept-Encoding",
		"Accept", "Origin", "X-Requested-With", "Authorization",
		"Cache-Control", "Accept-Language",
	}
	corsConfig.AllowMethods = []string{
		"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD",
	}
	corsConfig.ExposeHeaders = []string{
		"Content-Length", "Content-Type", "Content-Disposition",
	}
	return corsConfig
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "public/data"
	}
	backupDir := os.Getenv("BACKUP_DIR")
	if backupDir == "" {
		backupDir = dataDir + "/backup"
	}
	store := storage.NewStore(dataDir, backupDir)

	authCfg := handlers.AuthConfig{
		Password:     os.Getenv("ADMIN_PASSWORD"),
		PasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
	}
	if authCfg.Password == "" && authCfg.PasswordHash == "" {
		authCfg.Password = "admin"
		log.Println("[admin] WARNING: ADMIN_PASSWORD not set, using default password \"admin\"")
	}

	// Nightly prune of old document backups at 03:15
	c := cron.New(
		cron.WithLogger(cron.VerbosePrintfLogger(log.New(os.Stdout, "cron: ", log.LstdFlags))),
	)
	_, err := c.AddFunc("15 3 * * *", func() {
		if !atomic.CompareAndSwapInt32(&pruneRunning, 0, 1) {
			log.Println("[cron] previous prune still running, skipping this run")
			return
		}
		defer atomic.StoreInt32(&pruneRunning, 0)

		removed, err := store.PruneBackups(backupRetention)
		if err != nil {
			log.Printf("[cron] backup prune failed: %v", err)
			return
		}
		log.Printf("[cron] backup prune done, removed %d file(s)", removed)
	})
	if err != nil {
		log.Fatalf("Failed to schedule backup prune cron job: %v", err)
	}
	c.Start()

	r := gin.Default()
	r.Use(cors.New(CORSConfig()))

	r.POST("/api/login", handlers.Login(authCfg))

	r.POST("/api/quote/pdf", handlers.ExportQuotePDF)
	r.POST("/api/quote/xlsx", handlers.ExportQuoteXLSX)

	auth := r.Group("/api", handlers.AuthMiddleware(authCfg))
	auth.GET("/health", handlers.Health)
	auth.GET("/file/:name", handlers.GetFile(store))
	auth.PUT("/file/:name", handlers.PutFile(store))

	// catalog documents are public read-only for the browsing UI
	r.Static("/data", dataDir)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	port := os.Getenv("PORT")
	if port == "" {
		port = "5174"
	}
	portInt, err := strconv.Atoi(port)
	if err != nil {
		log.Fatalf("Invalid PORT environment variable: %s. Must be a number.", port)
	}
	if portInt < 0 || portInt > 65535 {
		log.Fatalf("Invalid PORT: %d. Must be between 0 and 65535.", portInt)
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("[admin] listening on :%s (data dir %s)", port, dataDir)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c.Stop()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exiting")
}
