package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type classificationBody struct {
	TemperatureC        float64 `json:"temperature_c"`
	DewPointC           float64 `json:"dew_point_c"`
	DepressionC         float64 `json:"dew_point_depression_c"`
	RelativeHumidityPct float64 `json:"relative_humidity_pct"`
	Risk                string  `json:"risk"`
	RiskLabel           string  `json:"risk_label"`
	RiskColor           string  `json:"risk_color"`
}

func doJSON(t *testing.T, method, target, body string) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()
	srv := newTestServer(nil)
	rec := httptest.NewRecorder()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	srv.ServeHTTP(rec, req)

	var parsed map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &parsed), "body: %s", rec.Body.String())
	return rec, parsed
}

func decodeClassification(t *testing.T, raw json.RawMessage) classificationBody {
	t.Helper()
	var c classificationBody
	require.NoError(t, json.Unmarshal(raw, &c))
	return c
}

func TestClassifyQuery_SeriousIcing(t *testing.T) {
	rec, parsed := doJSON(t, http.MethodGet, "/v1/classify?temperature=10&dew_point=5", "")

	require.Equal(t, http.StatusOK, rec.Code)
	c := decodeClassification(t, parsed["data"])

	assert.Equal(t, "serious_any_power", c.Risk)
	assert.Equal(t, "Serious icing – any power", c.RiskLabel)
	assert.InDelta(t, 5.0, c.DepressionC, 1e-9)
	assert.NotEmpty(t, c.RiskColor)
}

func TestClassifyQuery_FahrenheitInput(t *testing.T) {
	// 50°F = 10°C, 41°F = 5°C: same serious-icing scenario in display units.
	rec, parsed := doJSON(t, http.MethodGet, "/v1/classify?temperature=50&dew_point=41&unit=F", "")

	require.Equal(t, http.StatusOK, rec.Code)
	c := decodeClassification(t, parsed["data"])

	assert.Equal(t, "serious_any_power", c.Risk)
	assert.InDelta(t, 10.0, c.TemperatureC, 1e-9)
	assert.InDelta(t, 5.0, c.DewPointC, 1e-9)
}

func TestClassifyQuery_DewPointAboveTemperature(t *testing.T) {
	rec, parsed := doJSON(t, http.MethodGet, "/v1/classify?temperature=20&dew_point=25", "")

	require.Equal(t, http.StatusOK, rec.Code)
	c := decodeClassification(t, parsed["data"])

	assert.Equal(t, "no_icing", c.Risk)
	assert.InDelta(t, -5.0, c.DepressionC, 1e-9)
}

func TestClassifyQuery_MissingParameter(t *testing.T) {
	rec, parsed := doJSON(t, http.MethodGet, "/v1/classify?temperature=10", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, string(parsed["error"]), "dew_point")
}

func TestClassifyQuery_NonNumericParameter(t *testing.T) {
	rec, _ := doJSON(t, http.MethodGet, "/v1/classify?temperature=ten&dew_point=5", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestClassifyQuery_NonFiniteReading(t *testing.T) {
	rec, _ := doJSON(t, http.MethodGet, "/v1/classify?temperature=NaN&dew_point=5", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestClassifyQuery_InvalidUnit(t *testing.T) {
	rec, _ := doJSON(t, http.MethodGet, "/v1/classify?temperature=10&dew_point=5&unit=K", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestClassifyBody_ModerateIcing(t *testing.T) {
	rec, parsed := doJSON(t, http.MethodPost, "/v1/classify",
		`{"temperature": 25, "dew_point": 12, "unit": "C"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	c := decodeClassification(t, parsed["data"])
	assert.Equal(t, "moderate_cruise_serious_descent", c.Risk)
}

func TestClassifyBody_ZeroReadingsAreValid(t *testing.T) {
	// Zero degrees is a real reading; required-pointer validation must not
	// confuse it with an absent field.
	rec, parsed := doJSON(t, http.MethodPost, "/v1/classify",
		`{"temperature": 0, "dew_point": 0}`)

	require.Equal(t, http.StatusOK, rec.Code)
	c := decodeClassification(t, parsed["data"])
	assert.Equal(t, "serious_any_power", c.Risk)
}

func TestClassifyBody_MissingField(t *testing.T) {
	rec, parsed := doJSON(t, http.MethodPost, "/v1/classify", `{"temperature": 10}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, string(parsed["error"]), "dewpoint")
}

func TestClassifyBody_MalformedJSON(t *testing.T) {
	rec, _ := doJSON(t, http.MethodPost, "/v1/classify", `{"temperature": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestClassifyBody_InvalidUnit(t *testing.T) {
	rec, _ := doJSON(t, http.MethodPost, "/v1/classify",
		`{"temperature": 10, "dew_point": 5, "unit": "K"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConvert(t *testing.T) {
	rec, parsed := doJSON(t, http.MethodGet, "/v1/convert?value=15&from=C", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var conv struct {
		Celsius    float64 `json:"celsius"`
		Fahrenheit float64 `json:"fahrenheit"`
	}
	require.NoError(t, json.Unmarshal(parsed["data"], &conv))
	assert.InDelta(t, 15.0, conv.Celsius, 1e-9)
	assert.InDelta(t, 59.0, conv.Fahrenheit, 1e-9)
}

func TestConvert_FromFahrenheit(t *testing.T) {
	rec, parsed := doJSON(t, http.MethodGet, "/v1/convert?value=59&from=F", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var conv struct {
		Celsius    float64 `json:"celsius"`
		Fahrenheit float64 `json:"fahrenheit"`
	}
	require.NoError(t, json.Unmarshal(parsed["data"], &conv))
	assert.InDelta(t, 15.0, conv.Celsius, 1e-9)
	assert.InDelta(t, 59.0, conv.Fahrenheit, 1e-9)
}

func TestConvert_MissingValue(t *testing.T) {
	rec, _ := doJSON(t, http.MethodGet, "/v1/convert?from=C", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConvert_NonFiniteValue(t *testing.T) {
	// ParseFloat accepts these, but they have no JSON encoding; accepting one
	// would send a 200 header and then fail mid-encode with an empty body.
	for _, value := range []string{"NaN", "Inf", "-Inf"} {
		t.Run(value, func(t *testing.T) {
			rec, parsed := doJSON(t, http.MethodGet, "/v1/convert?value="+value+"&from=C", "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, string(parsed["error"]), "invalid_request")
		})
	}
}

func TestChart_Depression(t *testing.T) {
	rec, parsed := doJSON(t, http.MethodGet, "/v1/charts/depression", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var chart struct {
		Chart   string `json:"chart"`
		XAxis   string `json:"x_axis"`
		YAxis   string `json:"y_axis"`
		Regions []struct {
			Category string `json:"category"`
			Label    string `json:"label"`
			Color    string `json:"color"`
			Points   []struct {
				X float64 `json:"x"`
				Y float64 `json:"y"`
			} `json:"points"`
		} `json:"regions"`
	}
	require.NoError(t, json.Unmarshal(parsed["data"], &chart))

	assert.Equal(t, "depression", chart.Chart)
	assert.Equal(t, "temperature_c", chart.XAxis)
	assert.Equal(t, "dew_point_depression_c", chart.YAxis)
	require.Len(t, chart.Regions, 4)
	assert.Equal(t, "serious_any_power", chart.Regions[0].Category)
	assert.NotEmpty(t, chart.Regions[0].Label)
	assert.NotEmpty(t, chart.Regions[0].Color)
	assert.NotEmpty(t, chart.Regions[0].Points)
}

func TestChart_RelativeHumidity(t *testing.T) {
	rec, parsed := doJSON(t, http.MethodGet, "/v1/charts/relative-humidity", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(parsed["data"]), "relative_humidity_pct")
}

func TestChart_Unknown(t *testing.T) {
	rec, parsed := doJSON(t, http.MethodGet, "/v1/charts/skew-t", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, string(parsed["error"]), "not_found")
}
