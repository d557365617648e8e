package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrIncompleteReading marks an observation whose temperature or dew point is
// missing. There is nothing to classify, so the pipeline skips the message.
var ErrIncompleteReading = errors.New("observation missing temperature or dew point")

// reportTimeLayouts lists the timestamp formats seen in aviationweather.gov
// payloads, most specific first.
var reportTimeLayouts = []string{
	"2006-01-02T15:04:05.000Z",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// ParseRawObservation deserializes a RawEvent's value into an Observation.
// It expects the flat METAR-style JSON produced by the collector service.
func ParseRawObservation(raw RawEvent) (Observation, error) {
	var rec RawMETARRecord
	if err := json.Unmarshal(raw.Value, &rec); err != nil {
		return Observation{}, fmt.Errorf("parse raw observation: %w", err)
	}

	station := strings.ToUpper(strings.TrimSpace(rec.ICAOID))
	reportTime := parseReportTime(raw.Timestamp, rec.ReportTime)

	return Observation{
		ID:          generateID(station, rec.Temp, rec.Dewp, rec.ReportTime),
		Station:     station,
		StationName: strings.TrimSpace(rec.Name),
		Geo:         Geo{Lat: rec.Lat, Lon: rec.Lon},
		Temperature: rec.Temp,
		DewPoint:    rec.Dewp,
		ReportTime:  reportTime,
		RawMETAR:    rec.RawOb,

		RawPayload: raw.Value,
	}, nil
}

// BuildAdvisory classifies an observation and assembles the advisory destined
// for the sink topic. Observations missing either reading return
// ErrIncompleteReading; everything else classifies, including physically
// impossible readings (dew point above temperature), which the rule table
// maps to no icing.
func BuildAdvisory(obs Observation) (IcingAdvisory, error) {
	risk := Classify(obs.Temperature, obs.DewPoint)
	if risk == nil {
		return IcingAdvisory{}, fmt.Errorf("station %s: %w", obs.Station, ErrIncompleteReading)
	}

	temp := *obs.Temperature
	dewPoint := *obs.DewPoint

	return IcingAdvisory{
		ID:          obs.ID,
		Station:     obs.Station,
		StationName: obs.StationName,
		Geo:         obs.Geo,

		TemperatureC:     temp,
		DewPointC:        dewPoint,
		DepressionC:      DewPointDepression(temp, dewPoint),
		RelativeHumidity: RelativeHumidity(temp, dewPoint),

		Risk:      *risk,
		RiskLabel: risk.Label(),
		RiskColor: risk.Color(),

		ReportTime:  obs.ReportTime,
		TimeBucket:  deriveTimeBucket(obs.ReportTime),
		RawMETAR:    obs.RawMETAR,
		ProcessedAt: clock.Now(),

		RawPayload: obs.RawPayload,
	}, nil
}

// parseReportTime parses the collector's report timestamp, falling back to
// the Kafka message timestamp when the field is absent or unparseable.
func parseReportTime(fallback time.Time, value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	for _, layout := range reportTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC()
		}
	}
	return fallback
}

// generateID produces a deterministic ID from the observation's key fields.
// Reprocessing the same raw report produces the same ID, so downstream
// consumers can upsert advisories idempotently.
func generateID(station string, temp, dewp *float64, reportTime string) string {
	input := fmt.Sprintf("%s|%s|%s|%s", station, formatReading(temp), formatReading(dewp), reportTime)
	hash := sha256.Sum256([]byte(input))
	short := hex.EncodeToString(hash[:8])
	if station == "" {
		return short
	}
	return strings.ToLower(station) + "-" + short
}

func formatReading(v *float64) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%g", *v)
}

// deriveTimeBucket truncates the report time to the hour in UTC.
// Returns zero time if the input is zero.
func deriveTimeBucket(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}

	return t.UTC().Truncate(time.Hour)
}
