package domain

import (
	"context"
	"time"
)

// RawMETARRecord represents the flat JSON structure produced by the collector,
// matching the aviationweather.gov METAR data API response shape. Temp and
// Dewp are pointers because stations with an unserviceable sensor omit them.
type RawMETARRecord struct {
	ICAOID     string   `json:"icaoId"`
	ReportTime string   `json:"reportTime"` // "2026-04-26T15:10:00.000Z"
	Temp       *float64 `json:"temp"`       // °C
	Dewp       *float64 `json:"dewp"`       // °C
	Lat        float64  `json:"lat"`
	Lon        float64  `json:"lon"`
	Name       string   `json:"name"`
	RawOb      string   `json:"rawOb"` // raw METAR string
}

// RawEvent represents an unprocessed message from the source topic.
type RawEvent struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// Geo represents a WGS-84 latitude/longitude coordinate pair.
type Geo struct {
	Lat float64 `json:"lat,omitempty"`
	Lon float64 `json:"lon,omitempty"`
}

// Observation is the domain-rich representation of a station report after
// parsing. Temperature and DewPoint stay pointers until classification so
// that an absent reading is distinguishable from zero degrees.
type Observation struct {
	ID          string    `json:"id"`
	Station     string    `json:"station"`
	StationName string    `json:"station_name,omitempty"`
	Geo         Geo       `json:"geo,omitempty"`
	Temperature *float64  `json:"temperature_c"`
	DewPoint    *float64  `json:"dew_point_c"`
	ReportTime  time.Time `json:"report_time"`
	RawMETAR    string    `json:"raw_metar,omitempty"`

	RawPayload []byte `json:"-"`
}

// IcingAdvisory is the classified output destined for the sink topic.
type IcingAdvisory struct {
	ID          string `json:"id"`
	Station     string `json:"station"`
	StationName string `json:"station_name,omitempty"`
	Geo         Geo    `json:"geo,omitempty"`

	TemperatureC     float64 `json:"temperature_c"`
	DewPointC        float64 `json:"dew_point_c"`
	DepressionC      float64 `json:"dew_point_depression_c"`
	RelativeHumidity float64 `json:"relative_humidity_pct"`

	Risk      RiskCategory `json:"risk"`
	RiskLabel string       `json:"risk_label"`
	RiskColor string       `json:"risk_color,omitempty"`

	ReportTime  time.Time `json:"report_time"`
	TimeBucket  time.Time `json:"time_bucket,omitempty"`
	RawMETAR    string    `json:"raw_metar,omitempty"`
	ProcessedAt time.Time `json:"processed_at"`

	RawPayload []byte `json:"-"`
}
