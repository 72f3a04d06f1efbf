package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ashutoshmishr0/Blogify-backend/config"
	"github.com/ashutoshmishr0/Blogify-backend/database"
	"github.com/ashutoshmishr0/Blogify-backend/handlers"
	"github.com/ashutoshmishr0/Blogify-backend/repository"
	"github.com/ashutoshmishr0/Blogify-backend/routes"
	"github.com/ashutoshmishr0/Blogify-backend/service"
	"github.com/ashutoshmishr0/Blogify-backend/storage"
)

func main() {
	log.Println("Starting Blogify backend...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Configuration error: ", err)
	}

	client, err := connectWithRetry(cfg.MongoURI)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB: ", err)
	}
	defer database.Disconnect(client)

	colls := database.NewCollections(client, cfg.MongoDatabase)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	if err := database.EnsureIndexes(ctx, colls); err != nil {
		cancel()
		log.Fatal("Failed to create indexes: ", err)
	}
	cancel()

	store, err := storage.NewCloudinaryStore(cfg.CloudinaryURL)
	if err != nil {
		log.Fatal("Cloudinary error: ", err)
	}

	userRepo := repository.NewMongoUserRepository(colls.Users)
	postRepo := repository.NewMongoPostRepository(colls.Posts)
	categoryRepo := repository.NewMongoCategoryRepository(colls.Categories)

	guard := service.OwnershipGuard{}
	userService := service.NewUserService(userRepo, postRepo, store, guard)
	postService := service.NewPostService(postRepo, store, guard)

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := routes.SetupRouter(cfg, routes.Handlers{
		Auth:       handlers.NewAuthHandler(userService, cfg.JWTSecret),
		Users:      handlers.NewUserHandler(userService),
		Posts:      handlers.NewPostHandler(postService),
		Categories: handlers.NewCategoryHandler(categoryRepo),
		Upload:     handlers.NewUploadHandler(store),
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Backend is running on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Println("Forced shutdown: ", err)
	}

	log.Println("Server stopped gracefully")
}

func connectWithRetry(uri string) (*mongo.Client, error) {
	var client *mongo.Client
	var err error
	for i := 1; i <= 3; i++ {
		client, err = database.Connect(uri)
		if err == nil {
			return client, nil
		}
		log.Printf("MongoDB connection attempt %d failed: %v", i, err)
		time.Sleep(2 * time.Second)
	}
	return nil, err
}
