package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"trueestate/internal/domain/entity"
	"trueestate/internal/domain/repository"
	"trueestate/pkg/errors"
	"trueestate/pkg/logger"
)

const (
	ExportFormatCSV  = "csv"
	ExportFormatJSON = "json"
)

var exportHeader = []string{
	"id", "title", "address", "city", "state", "property_type",
	"price", "bedrooms", "bathrooms", "transparency_score",
	"average_rating", "total_reviews", "views", "bookmarks",
}

type ExportUseCase struct {
	propertyRepo repository.PropertyRepository
	archiver     ReportArchiver
}

func NewExportUseCase(propertyRepo repository.PropertyRepository, archiver ReportArchiver) *ExportUseCase {
	return &ExportUseCase{
		propertyRepo: propertyRepo,
		archiver:     archiver,
	}
}

type ExportResult struct {
	Format     string
	Filename   string
	CSV        []byte
	Properties []*entity.Property
}

func (uc *ExportUseCase) Export(ctx context.Context, filter repository.PropertyFilter, format string) (*ExportResult, error) {
	if format != ExportFormatCSV && format != ExportFormatJSON {
		return nil, errors.BadRequest("Format must be csv or json", nil)
	}

	properties, _, err := uc.propertyRepo.List(ctx, filter, 0, 0)
	if err != nil {
		return nil, err
	}

	result := &ExportResult{
		Format:     format,
		Filename:   fmt.Sprintf("properties-%s.%s", time.Now().UTC().Format("20060102-150405"), format),
		Properties: properties,
	}

	var archive []byte
	if format == ExportFormatCSV {
		result.CSV, err = renderCSV(properties)
		if err != nil {
			return nil, errors.Internal("Failed to render CSV export", err)
		}
		archive = result.CSV
	} else {
		archive, err = json.Marshal(properties)
		if err != nil {
			return nil, errors.Internal("Failed to render JSON export", err)
		}
	}

	uc.archive(ctx, archive, format)

	return result, nil
}

func (uc *ExportUseCase) archive(ctx context.Context, body []byte, format string) {
	if uc.archiver == nil {
		return
	}
	path, err := uc.archiver.UploadReport(ctx, bytes.NewReader(body), format)
	if err != nil {
		logger.Warn("Export archive upload failed: %v", err)
		return
	}
	logger.Info("Export archived to %s", path)
}

func renderCSV(properties []*entity.Property) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}

	for _, p := range properties {
		record := []string{
			p.ID,
			p.Title,
			p.Address,
			p.City,
			p.State,
			p.PropertyType,
			strconv.FormatFloat(p.Price, 'f', 2, 64),
			strconv.Itoa(p.Bedrooms),
			strconv.Itoa(p.Bathrooms),
			strconv.Itoa(p.TransparencyScore),
			strconv.FormatFloat(p.Ratings.AverageRating, 'f', 2, 64),
			strconv.Itoa(p.Ratings.TotalReviews),
			strconv.Itoa(p.Views),
			strconv.Itoa(p.Bookmarks),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
