package handler

import (
	"trueestate/internal/usecase"
)

var (
	authHandler         *AuthHandler
	userHandler         *UserHandler
	propertyHandler     *PropertyHandler
	ownerHandler        *OwnerHandler
	reviewHandler       *ReviewHandler
	bookmarkHandler     *BookmarkHandler
	notificationHandler *NotificationHandler
	exportHandler       *ExportHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	propertyUseCase *usecase.PropertyUseCase,
	ownerUseCase *usecase.OwnerUseCase,
	reviewUseCase *usecase.ReviewUseCase,
	bookmarkUseCase *usecase.BookmarkUseCase,
	notificationUseCase *usecase.NotificationUseCase,
	exportUseCase *usecase.ExportUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(userUseCase)
	propertyHandler = NewPropertyHandler(propertyUseCase, userUseCase)
	ownerHandler = NewOwnerHandler(ownerUseCase)
	reviewHandler = NewReviewHandler(reviewUseCase)
	bookmarkHandler = NewBookmarkHandler(bookmarkUseCase)
	notificationHandler = NewNotificationHandler(notificationUseCase)
	exportHandler = NewExportHandler(exportUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetPropertyHandler() *PropertyHandler {
	return propertyHandler
}

func GetOwnerHandler() *OwnerHandler {
	return ownerHandler
}

func GetReviewHandler() *ReviewHandler {
	return reviewHandler
}

func GetBookmarkHandler() *BookmarkHandler {
	return bookmarkHandler
}

func GetNotificationHandler() *NotificationHandler {
	return notificationHandler
}

func GetExportHandler() *ExportHandler {
	return exportHandler
}
