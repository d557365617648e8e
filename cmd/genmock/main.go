// Command genmock generates mock data fixtures for the advisory test suites:
// a grid of METAR-style observations spanning the reference chart space and
// the matching expected advisories. It uses the actual domain package so the
// expected output tracks real pipeline behavior.
//
// Usage:
//
//	go run ./cmd/genmock \
//	  -obs-out data/mock/metar_observations.json \
//	  -advisory-out data/mock/icing_advisories.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/aerowx/carbice-advisory/internal/domain"
	"github.com/jonboulle/clockwork"
)

// reportTime is fixed so generated IDs and ProcessedAt stamps are reproducible.
var reportTime = time.Date(2026, time.April, 26, 15, 10, 0, 0, time.UTC)

// gridStations cycle through the generated grid so fixtures carry realistic
// station codes rather than synthetic placeholders.
var gridStations = []string{"KJFK", "KDEN", "KSEA", "KMIA", "EGLL", "YSSY", "CYYZ", "EDDF"}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	obsOut := flag.String("obs-out", "", "output path for the raw observation fixture")
	advisoryOut := flag.String("advisory-out", "", "output path for the expected advisory fixture")
	flag.Parse()

	if *obsOut == "" || *advisoryOut == "" {
		flag.Usage()
		return fmt.Errorf("missing required flags: -obs-out, -advisory-out")
	}

	// Fix the clock for reproducible ProcessedAt timestamps.
	domain.SetClock(clockwork.NewFakeClockAt(
		time.Date(2026, time.April, 26, 16, 0, 0, 0, time.UTC),
	))
	defer domain.SetClock(nil)

	records, advisories, err := generateGrid()
	if err != nil {
		return err
	}

	if err := writeJSON(*obsOut, records); err != nil {
		return err
	}
	if err := writeJSON(*advisoryOut, advisories); err != nil {
		return err
	}

	log.Printf("observations: %d, advisories: %d", len(records), len(advisories))
	return nil
}

// generateGrid sweeps temperature -5..45°C and depression -5..30°C in 5°C
// steps, covering every rule envelope, both chart edges, and the
// physically-impossible negative-depression corner.
func generateGrid() ([]domain.RawMETARRecord, []domain.IcingAdvisory, error) {
	var records []domain.RawMETARRecord
	var advisories []domain.IcingAdvisory

	i := 0
	for temp := -5.0; temp <= 45; temp += 5 {
		for depression := -5.0; depression <= 30; depression += 5 {
			t := temp
			dewp := temp - depression
			rec := domain.RawMETARRecord{
				ICAOID:     gridStations[i%len(gridStations)],
				ReportTime: reportTime.Format("2006-01-02T15:04:05.000Z"),
				Temp:       &t,
				Dewp:       &dewp,
				RawOb:      fmt.Sprintf("%s 261510Z %02.0f/%02.0f", gridStations[i%len(gridStations)], t, dewp),
			}
			i++
			records = append(records, rec)

			payload, err := json.Marshal(rec)
			if err != nil {
				return nil, nil, fmt.Errorf("encode observation: %w", err)
			}

			obs, err := domain.ParseRawObservation(domain.RawEvent{Value: payload, Timestamp: reportTime})
			if err != nil {
				return nil, nil, fmt.Errorf("parse observation: %w", err)
			}

			advisory, err := domain.BuildAdvisory(obs)
			if err != nil {
				return nil, nil, fmt.Errorf("build advisory: %w", err)
			}
			advisories = append(advisories, advisory)
		}
	}

	return records, advisories, nil
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
