package usecase

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trueestate/internal/domain/entity"
	"trueestate/internal/domain/repository"
	"trueestate/pkg/errors"
)

func newExportUseCaseForTest(t *testing.T) *ExportUseCase {
	t.Helper()
	propertyRepo := newFakePropertyRepository()
	require.NoError(t, propertyRepo.Create(context.Background(), &entity.Property{
		ID:           "prop-1",
		OwnerID:      "owner-1",
		Title:        "Downtown Loft",
		Address:      "1 Main St",
		City:         "San Francisco",
		State:        "CA",
		PropertyType: "apartment",
		Price:        2500,
		Bedrooms:     2,
		Bathrooms:    1,
	}))
	return NewExportUseCase(propertyRepo, nil)
}

func TestExportCSVHeaderAndRows(t *testing.T) {
	uc := newExportUseCaseForTest(t)

	result, err := uc.Export(context.Background(), repository.PropertyFilter{}, ExportFormatCSV)
	require.NoError(t, err)
	assert.Equal(t, ExportFormatCSV, result.Format)
	assert.True(t, strings.HasSuffix(result.Filename, ".csv"))

	records, err := csv.NewReader(strings.NewReader(string(result.CSV))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, exportHeader, records[0])
	assert.Equal(t, "prop-1", records[1][0])
	assert.Equal(t, "Downtown Loft", records[1][1])
	assert.Equal(t, "2500.00", records[1][6])
}

func TestExportJSONReturnsProperties(t *testing.T) {
	uc := newExportUseCaseForTest(t)

	result, err := uc.Export(context.Background(), repository.PropertyFilter{}, ExportFormatJSON)
	require.NoError(t, err)
	assert.Nil(t, result.CSV)
	require.Len(t, result.Properties, 1)
	assert.Equal(t, "prop-1", result.Properties[0].ID)
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	uc := newExportUseCaseForTest(t)

	_, err := uc.Export(context.Background(), repository.PropertyFilter{}, "xml")

	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestExportAppliesFilter(t *testing.T) {
	uc := newExportUseCaseForTest(t)

	result, err := uc.Export(context.Background(), repository.PropertyFilter{OwnerID: "someone-else"}, ExportFormatJSON)
	require.NoError(t, err)
	assert.Empty(t, result.Properties)
}
