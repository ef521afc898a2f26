package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"trueestate/internal/adapter/api"
	"trueestate/internal/adapter/api/handler"
	apimiddleware "trueestate/internal/adapter/api/middleware"
	"trueestate/internal/adapter/api/router"
	"trueestate/internal/adapter/repository"
	"trueestate/internal/domain/service"
	"trueestate/internal/infrastructure/ratelimit"
	"trueestate/internal/infrastructure/storage"
	"trueestate/internal/infrastructure/token"
	"trueestate/internal/infrastructure/websocket"
	"trueestate/internal/usecase"
	"trueestate/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption
	credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirestoreProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, credentialsPath)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	propertyRepo := repository.NewFirestorePropertyRepository(firestoreClient)
	ownerRepo := repository.NewFirestoreOwnerRepository(firestoreClient)
	reviewRepo := repository.NewFirestoreReviewRepository(firestoreClient)
	commentRepo := repository.NewFirestoreCommentRepository(firestoreClient)
	bookmarkRepo := repository.NewFirestoreBookmarkRepository(firestoreClient)
	notificationRepo := repository.NewMemoryNotificationRepository()
	alertRepo := repository.NewMemoryAlertRepository()
	savedViewRepo := repository.NewMemorySavedViewRepository()

	tokens := token.NewManager(cfg.JWTSecret, cfg.JWTExpiry)

	hub := websocket.NewHub()
	hub.Start(ctx)

	transparencyPolicy := service.NewTransparencyPolicy()
	identityPolicy := service.NewIdentityPolicy()
	identityVerifier := service.NewHTTPIdentityVerifier(
		cfg.IdentityAPIURL,
		cfg.IdentityAPIKey,
		cfg.CompanyAPIURL,
		cfg.CompanyAPIKey,
	)

	authUseCase := usecase.NewAuthUseCase(userRepo, tokens)
	userUseCase := usecase.NewUserUseCase(userRepo)
	propertyUseCase := usecase.NewPropertyUseCase(propertyRepo, ownerRepo, transparencyPolicy, storageClient)
	ownerUseCase := usecase.NewOwnerUseCase(ownerRepo, identityVerifier, identityPolicy)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo, alertRepo, savedViewRepo, hub)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, commentRepo, propertyRepo, ownerRepo, notificationUseCase, transparencyPolicy)
	bookmarkUseCase := usecase.NewBookmarkUseCase(bookmarkRepo, propertyRepo)
	exportUseCase := usecase.NewExportUseCase(propertyRepo, storageClient)

	handler.Setup(
		authUseCase,
		userUseCase,
		propertyUseCase,
		ownerUseCase,
		reviewUseCase,
		bookmarkUseCase,
		notificationUseCase,
		exportUseCase,
	)
	handler.SetupInfoHandler(cfg.MapboxToken)

	e := echo.New()

	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	e.Validator = api.NewValidator()

	limiter := ratelimit.NewRateLimiter()
	limiter.StartCleanupRoutine()

	authMiddleware := apimiddleware.NewAuthMiddleware(tokens)
	capMiddleware := apimiddleware.NewCapabilityMiddleware()
	rateLimitMiddleware := apimiddleware.NewRateLimitMiddleware(limiter)

	wsHandler := handler.NewWebSocketHandler(hub)

	router.Setup(e, authMiddleware, capMiddleware, rateLimitMiddleware, tokens)
	router.SetupWebSocketRouter(e, wsHandler, authMiddleware, rateLimitMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
