package handler

import (
	"strconv"

	"trueestate/internal/domain/entity"
	"trueestate/internal/domain/repository"
	"trueestate/internal/usecase"
	"trueestate/pkg/errors"
	"trueestate/pkg/logger"
	"trueestate/pkg/response"
	"trueestate/pkg/utils"

	"github.com/labstack/echo/v4"
)

type PropertyHandler struct {
	propertyUseCase *usecase.PropertyUseCase
	userUseCase     *usecase.UserUseCase
}

func NewPropertyHandler(propertyUseCase *usecase.PropertyUseCase, userUseCase *usecase.UserUseCase) *PropertyHandler {
	return &PropertyHandler{
		propertyUseCase: propertyUseCase,
		userUseCase:     userUseCase,
	}
}

type propertyImageRequest struct {
	URL          string `json:"url" validate:"required,url"`
	DisplayOrder int    `json:"display_order"`
}

type verificationRequest struct {
	OwnerVerified     bool `json:"owner_verified"`
	DocumentsVerified bool `json:"documents_verified"`
	AddressVerified   bool `json:"address_verified"`
	PriceVerified     bool `json:"price_verified"`
}

type createPropertyRequest struct {
	Title        string                 `json:"title" validate:"required"`
	Address      string                 `json:"address" validate:"required"`
	City         string                 `json:"city" validate:"required"`
	State        string                 `json:"state" validate:"required"`
	ZipCode      string                 `json:"zip_code"`
	Lat          float64                `json:"lat" validate:"latitude"`
	Lng          float64                `json:"lng" validate:"longitude"`
	PropertyType string                 `json:"property_type" validate:"required,oneof=apartment house condo townhouse commercial land"`
	Price        float64                `json:"price" validate:"required,gt=0"`
	Bedrooms     int                    `json:"bedrooms" validate:"gte=0"`
	Bathrooms    int                    `json:"bathrooms" validate:"gte=0"`
	SquareFt     int                    `json:"square_ft" validate:"gte=0"`
	YearBuilt    int                    `json:"year_built"`
	Images       []propertyImageRequest `json:"images"`
	Verification verificationRequest    `json:"verification"`
}

type updatePropertyRequest struct {
	Title        *string                `json:"title"`
	Price        *float64               `json:"price" validate:"omitempty,gt=0"`
	Bedrooms     *int                   `json:"bedrooms" validate:"omitempty,gte=0"`
	Bathrooms    *int                   `json:"bathrooms" validate:"omitempty,gte=0"`
	Images       []propertyImageRequest `json:"images"`
	Verification *verificationRequest   `json:"verification"`
}

func (h *PropertyHandler) CreateProperty(c echo.Context) error {
	var req createPropertyRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	property, err := h.propertyUseCase.CreateProperty(
		c.Request().Context(),
		userID,
		usecase.CreatePropertyInput{
			Title:        req.Title,
			Address:      req.Address,
			City:         req.City,
			State:        req.State,
			ZipCode:      req.ZipCode,
			Lat:          req.Lat,
			Lng:          req.Lng,
			PropertyType: req.PropertyType,
			Price:        req.Price,
			Bedrooms:     req.Bedrooms,
			Bathrooms:    req.Bathrooms,
			SquareFt:     req.SquareFt,
			YearBuilt:    req.YearBuilt,
			Images:       convertImages(req.Images),
			Verification: entity.VerificationData{
				OwnerVerified:     req.Verification.OwnerVerified,
				DocumentsVerified: req.Verification.DocumentsVerified,
				AddressVerified:   req.Verification.AddressVerified,
				PriceVerified:     req.Verification.PriceVerified,
			},
		},
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, property)
}

func (h *PropertyHandler) GetProperty(c echo.Context) error {
	id := c.Param("id")

	property, err := h.propertyUseCase.GetProperty(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, property)
}

func (h *PropertyHandler) ListProperties(c echo.Context) error {
	filter := repository.PropertyFilter{
		Query:        c.QueryParam("q"),
		City:         c.QueryParam("city"),
		State:        c.QueryParam("state"),
		PropertyType: c.QueryParam("property_type"),
		OwnerID:      c.QueryParam("owner_id"),
		Sort:         c.QueryParam("sort"),
	}

	var err error
	if filter.MinPrice, err = parseFloatParam(c, "min_price"); err != nil {
		return response.Error(c, err)
	}
	if filter.MaxPrice, err = parseFloatParam(c, "max_price"); err != nil {
		return response.Error(c, err)
	}
	if filter.MinBedrooms, err = parseIntParam(c, "min_bedrooms"); err != nil {
		return response.Error(c, err)
	}
	if filter.MaxBedrooms, err = parseIntParam(c, "max_bedrooms"); err != nil {
		return response.Error(c, err)
	}
	if filter.MinBathrooms, err = parseIntParam(c, "min_bathrooms"); err != nil {
		return response.Error(c, err)
	}
	if filter.MaxBathrooms, err = parseIntParam(c, "max_bathrooms"); err != nil {
		return response.Error(c, err)
	}

	pagination := utils.GetPaginationParams(c)

	properties, total, fallback, err := h.propertyUseCase.ListProperties(
		c.Request().Context(),
		filter,
		pagination.Page,
		pagination.PageSize,
	)
	if err != nil {
		return response.Error(c, err)
	}

	// Search history is tracked per authenticated user, best effort.
	if uid, ok := c.Get("uid").(string); ok && uid != "" && filter.Query != "" {
		if err := h.userUseCase.RecordSearch(c.Request().Context(), uid, filter.Query); err != nil {
			logger.Debug("Search history append failed for %s: %v", uid, err)
		}
	}

	if fallback {
		totalPages := int(total) / pagination.PageSize
		if int(total)%pagination.PageSize > 0 {
			totalPages++
		}
		return response.Fallback(c, response.PaginatedResponse{
			Items:      properties,
			Total:      total,
			Page:       pagination.Page,
			PageSize:   pagination.PageSize,
			TotalPages: totalPages,
		})
	}

	return response.Paginated(c, properties, total, pagination.Page, pagination.PageSize)
}

func (h *PropertyHandler) UpdateProperty(c echo.Context) error {
	id := c.Param("id")

	var req updatePropertyRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)
	role, _ := c.Get("role").(string)

	input := usecase.UpdatePropertyInput{
		Title:     req.Title,
		Price:     req.Price,
		Bedrooms:  req.Bedrooms,
		Bathrooms: req.Bathrooms,
		Images:    convertImages(req.Images),
	}
	if req.Verification != nil {
		input.Verification = &entity.VerificationData{
			OwnerVerified:     req.Verification.OwnerVerified,
			DocumentsVerified: req.Verification.DocumentsVerified,
			AddressVerified:   req.Verification.AddressVerified,
			PriceVerified:     req.Verification.PriceVerified,
		}
	}

	property, err := h.propertyUseCase.UpdateProperty(c.Request().Context(), id, userID, role, input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, property)
}

func convertImages(images []propertyImageRequest) []entity.PropertyImage {
	if len(images) == 0 {
		return nil
	}
	out := make([]entity.PropertyImage, len(images))
	for i, img := range images {
		out[i] = entity.PropertyImage{
			URL:          img.URL,
			DisplayOrder: img.DisplayOrder,
		}
	}
	return out
}

func (h *PropertyHandler) UploadImage(c echo.Context) error {
	id := c.Param("id")
	userID := c.Get("uid").(string)
	role, _ := c.Get("role").(string)

	file, err := c.FormFile("image")
	if err != nil {
		return response.Error(c, errors.BadRequest("An image file is required", err))
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.BadRequest("The uploaded file could not be read", err))
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	property, err := h.propertyUseCase.AddImage(c.Request().Context(), id, userID, role, src, contentType)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, property)
}

func parseFloatParam(c echo.Context, name string) (float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.BadRequest(name+" must be a number", err)
	}
	return value, nil
}

func parseIntParam(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.BadRequest(name+" must be an integer", err)
	}
	return value, nil
}
