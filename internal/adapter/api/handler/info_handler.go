package handler

import (
	"net/http"
	"strconv"
	"time"

	"trueestate/pkg/errors"
	"trueestate/pkg/response"

	"github.com/labstack/echo/v4"
)

// InfoHandler serves the small informational endpoints: the map provider
// token, neighborhood insight payloads and the static marketing pages.
type InfoHandler struct {
	mapToken string
}

var infoHandler *InfoHandler

func SetupInfoHandler(mapToken string) {
	infoHandler = &InfoHandler{
		mapToken: mapToken,
	}
}

func GetInfoHandler() *InfoHandler {
	return infoHandler
}

func (h *InfoHandler) GetMapToken(c echo.Context) error {
	if h.mapToken == "" {
		return response.Error(c, errors.Internal("Map token is not configured", nil))
	}

	return response.Success(c, map[string]string{
		"token":    h.mapToken,
		"provider": "mapbox",
	})
}

func (h *InfoHandler) GetNeighborhoodInsights(c echo.Context) error {
	latStr := c.QueryParam("lat")
	lngStr := c.QueryParam("lng")

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return response.Error(c, errors.BadRequest("lat must be a valid coordinate", err))
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return response.Error(c, errors.BadRequest("lng must be a valid coordinate", err))
	}

	return response.Success(c, map[string]interface{}{
		"coordinates": map[string]float64{"lat": lat, "lng": lng},
		"walk_score":  72,
		"transit":     "good",
		"schools": []map[string]interface{}{
			{"name": "Lincoln Elementary", "rating": 8},
			{"name": "Washington High", "rating": 7},
		},
		"safety_grade": "B+",
		"updated_at":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *InfoHandler) GetDemoInfo(c echo.Context) error {
	return response.Success(c, map[string]interface{}{
		"title":       "TrueEstate Demo",
		"description": "Explore verified listings, owner trust scores and transparency ratings with the bundled demo accounts.",
		"accounts": []map[string]string{
			{"email": "admin@trueestate.com", "role": "admin"},
			{"email": "owner@trueestate.com", "role": "owner"},
			{"email": "agent@trueestate.com", "role": "agent"},
			{"email": "renter@trueestate.com", "role": "renter"},
		},
	})
}

func (h *InfoHandler) GetEnterpriseInfo(c echo.Context) error {
	return response.Success(c, map[string]interface{}{
		"title": "TrueEstate Enterprise",
		"features": []string{
			"Bulk property verification",
			"Portfolio analytics",
			"CSV and JSON data export",
			"Priority identity verification",
		},
		"contact": "sales@trueestate.com",
	})
}

func (h *InfoHandler) CheckHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "Server is running",
		"time":   time.Now().Format(time.RFC3339),
	})
}
