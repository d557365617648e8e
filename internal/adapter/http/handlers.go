package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/aerowx/carbice-advisory/internal/domain"
)

// classifyRequest is the POST /v1/classify body. Readings are pointers so the
// validator can distinguish an absent reading from zero degrees.
type classifyRequest struct {
	Temperature *float64 `json:"temperature" validate:"required"`
	DewPoint    *float64 `json:"dew_point" validate:"required"`
	Unit        string   `json:"unit" validate:"omitempty,oneof=C F"`
}

// classificationResponse echoes the canonical Celsius readings along with the
// derived values and the risk mapping the UI renders.
type classificationResponse struct {
	TemperatureC        float64             `json:"temperature_c"`
	DewPointC           float64             `json:"dew_point_c"`
	DepressionC         float64             `json:"dew_point_depression_c"`
	RelativeHumidityPct float64             `json:"relative_humidity_pct"`
	Risk                domain.RiskCategory `json:"risk"`
	RiskLabel           string              `json:"risk_label"`
	RiskColor           string              `json:"risk_color"`
}

type conversionResponse struct {
	Celsius    float64 `json:"celsius"`
	Fahrenheit float64 `json:"fahrenheit"`
}

// chartRegionResponse decorates a chart region with its display mapping.
type chartRegionResponse struct {
	Category domain.RiskCategory `json:"category"`
	Label    string              `json:"label"`
	Color    string              `json:"color"`
	Points   []domain.Point      `json:"points"`
}

type chartResponse struct {
	Chart   domain.Chart          `json:"chart"`
	XAxis   string                `json:"x_axis"`
	YAxis   string                `json:"y_axis"`
	Regions []chartRegionResponse `json:"regions"`
}

// handleClassifyQuery serves the interactive calculator: readings arrive as
// query parameters in the display unit and are normalized to Celsius before
// classification.
func (s *Server) handleClassifyQuery(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	unit, err := parseUnit(q.Get("unit"))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequest, err.Error(), nil)
		return
	}

	temp, err := parseReading(q.Get("temperature"), "temperature")
	if err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequest, err.Error(), nil)
		return
	}

	dewPoint, err := parseReading(q.Get("dew_point"), "dew_point")
	if err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequest, err.Error(), nil)
		return
	}

	s.classifyAndRespond(w, temp, dewPoint, unit)
}

// handleClassifyBody serves programmatic clients posting JSON.
func (s *Server) handleClassifyBody(w http.ResponseWriter, r *http.Request) {
	var req classifyRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequest, "malformed JSON body", nil)
		return
	}

	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequest, "invalid request body", validationDetails(err))
		return
	}

	unit := domain.Unit(req.Unit)
	if req.Unit == "" {
		unit = domain.UnitCelsius
	}

	s.classifyAndRespond(w, *req.Temperature, *req.DewPoint, unit)
}

func (s *Server) classifyAndRespond(w http.ResponseWriter, temp, dewPoint float64, unit domain.Unit) {
	tempC := domain.ToCelsius(temp, unit)
	dewPointC := domain.ToCelsius(dewPoint, unit)

	risk := domain.Classify(&tempC, &dewPointC)
	if risk == nil {
		// Non-finite readings survive strconv/json parsing only as
		// explicit "NaN"/"Inf" strings; reject them like any other
		// unusable input.
		writeError(w, http.StatusBadRequest, codeInvalidRequest, "readings must be finite numbers", nil)
		return
	}

	s.metrics.Classifications.WithLabelValues(string(*risk), "api").Inc()

	writeData(w, http.StatusOK, classificationResponse{
		TemperatureC:        tempC,
		DewPointC:           dewPointC,
		DepressionC:         domain.DewPointDepression(tempC, dewPointC),
		RelativeHumidityPct: domain.RelativeHumidity(tempC, dewPointC),
		Risk:                *risk,
		RiskLabel:           risk.Label(),
		RiskColor:           risk.Color(),
	})
}

// handleConvert converts a single reading between Celsius and Fahrenheit.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	from, err := parseUnit(q.Get("from"))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequest, err.Error(), nil)
		return
	}

	value, err := parseReading(q.Get("value"), "value")
	if err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequest, err.Error(), nil)
		return
	}
	// ParseFloat accepts "NaN" and "Inf", which json.Marshal cannot encode.
	if math.IsNaN(value) || math.IsInf(value, 0) {
		writeError(w, http.StatusBadRequest, codeInvalidRequest, "readings must be finite numbers", nil)
		return
	}

	celsius := domain.ToCelsius(value, from)
	writeData(w, http.StatusOK, conversionResponse{
		Celsius:    celsius,
		Fahrenheit: domain.CelsiusToFahrenheit(celsius),
	})
}

// handleChart serves the static region geometry for one reference chart.
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	chart := domain.Chart(chi.URLParam(r, "chart"))
	if !chart.Valid() {
		writeError(w, http.StatusNotFound, codeNotFound,
			fmt.Sprintf("unknown chart %q", chart), nil)
		return
	}

	regions := domain.ChartRegions(chart)
	resp := chartResponse{
		Chart:   chart,
		XAxis:   "temperature_c",
		YAxis:   "dew_point_depression_c",
		Regions: make([]chartRegionResponse, 0, len(regions)),
	}
	if chart == domain.RelativeHumidityChart {
		resp.YAxis = "relative_humidity_pct"
	}

	for _, region := range regions {
		resp.Regions = append(resp.Regions, chartRegionResponse{
			Category: region.Category,
			Label:    region.Category.Label(),
			Color:    region.Category.Color(),
			Points:   region.Points,
		})
	}

	writeData(w, http.StatusOK, resp)
}

// parseReading parses a required numeric query parameter. Absent or
// unparseable values are "insufficient data" and reported as a 400 rather
// than classified.
func parseReading(raw, name string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("missing required parameter %q", name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parameter %q is not a number", name)
	}
	return v, nil
}

// parseUnit parses an optional unit parameter, defaulting to Celsius.
func parseUnit(raw string) (domain.Unit, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return domain.UnitCelsius, nil
	}
	unit := domain.Unit(strings.ToUpper(raw))
	if !unit.Valid() {
		return "", fmt.Errorf("unit must be C or F, got %q", raw)
	}
	return unit, nil
}

// validationDetails flattens validator errors into a field→reason map.
func validationDetails(err error) map[string]any {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	details := make(map[string]any, len(verrs))
	for _, fe := range verrs {
		details[strings.ToLower(fe.Field())] = fe.Tag()
	}
	return details
}
