package handler

import (
	"trueestate/internal/domain/repository"
	"trueestate/internal/usecase"
	"trueestate/pkg/response"

	"github.com/labstack/echo/v4"
)

type ExportHandler struct {
	exportUseCase *usecase.ExportUseCase
}

func NewExportHandler(exportUseCase *usecase.ExportUseCase) *ExportHandler {
	return &ExportHandler{
		exportUseCase: exportUseCase,
	}
}

type exportRequest struct {
	Format       string  `json:"format" validate:"required,oneof=csv json"`
	Query        string  `json:"q"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	PropertyType string  `json:"property_type"`
	OwnerID      string  `json:"owner_id"`
	MinPrice     float64 `json:"min_price" validate:"omitempty,gte=0"`
	MaxPrice     float64 `json:"max_price" validate:"omitempty,gte=0"`
}

func (h *ExportHandler) Export(c echo.Context) error {
	var req exportRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.exportUseCase.Export(c.Request().Context(), repository.PropertyFilter{
		Query:        req.Query,
		City:         req.City,
		State:        req.State,
		PropertyType: req.PropertyType,
		OwnerID:      req.OwnerID,
		MinPrice:     req.MinPrice,
		MaxPrice:     req.MaxPrice,
	}, req.Format)
	if err != nil {
		return response.Error(c, err)
	}

	if result.Format == usecase.ExportFormatCSV {
		return response.Attachment(c, "text/csv", result.Filename, result.CSV)
	}

	return response.Success(c, map[string]interface{}{
		"filename":   result.Filename,
		"properties": result.Properties,
	})
}
