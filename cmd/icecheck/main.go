// Command icecheck is an operator tool that classifies carburetor icing risk
// from the command line, either for a single temperature/dew point pair or
// for a file of METAR-style observation JSON.
//
// Usage:
//
//	go run ./cmd/icecheck -temperature 10 -dew-point 5
//	go run ./cmd/icecheck -temperature 50 -dew-point 41 -unit F
//	go run ./cmd/icecheck -obs-file data/mock/metar_observations.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aerowx/carbice-advisory/internal/domain"
)

func main() {
	temperature := flag.Float64("temperature", 0, "ambient temperature in the chosen unit")
	dewPoint := flag.Float64("dew-point", 0, "dew point in the chosen unit")
	unit := flag.String("unit", "C", "input unit: C or F")
	obsFile := flag.String("obs-file", "", "path to a JSON array of METAR observations")
	flag.Parse()

	if *obsFile != "" {
		if code := runFile(*obsFile); code != 0 {
			os.Exit(code)
		}
		return
	}

	if !flagWasSet("temperature") || !flagWasSet("dew-point") {
		flag.Usage()
		os.Exit(2)
	}

	u, err := parseUnitArg(*unit)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	tempC := domain.ToCelsius(*temperature, u)
	dewPointC := domain.ToCelsius(*dewPoint, u)

	risk := domain.Classify(&tempC, &dewPointC)
	if risk == nil {
		fmt.Fprintln(os.Stderr, "readings must be finite numbers")
		os.Exit(2)
	}

	printReading(tempC, dewPointC, *risk)
}

func runFile(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read observations: %v\n", err)
		return 1
	}

	var records []domain.RawMETARRecord
	if err := json.Unmarshal(data, &records); err != nil {
		fmt.Fprintf(os.Stderr, "parse observations: %v\n", err)
		return 1
	}

	now := time.Now().UTC()
	skipped := 0
	for _, rec := range records {
		payload, err := json.Marshal(rec)
		if err != nil {
			fmt.Fprintf(os.Stderr, "re-encode observation: %v\n", err)
			return 1
		}

		obs, err := domain.ParseRawObservation(domain.RawEvent{Value: payload, Timestamp: now})
		if err != nil {
			fmt.Fprintf(os.Stderr, "skip %s: %v\n", rec.ICAOID, err)
			skipped++
			continue
		}

		advisory, err := domain.BuildAdvisory(obs)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skip %s: %v\n", rec.ICAOID, err)
			skipped++
			continue
		}

		fmt.Printf("%-6s %6.1f°C / %6.1f°C  depression %5.1f°C  RH %5.1f%%  %s\n",
			advisory.Station,
			advisory.TemperatureC,
			advisory.DewPointC,
			advisory.DepressionC,
			advisory.RelativeHumidity,
			advisory.RiskLabel,
		)
	}

	fmt.Printf("\n%d observations, %d skipped\n", len(records), skipped)
	if skipped == len(records) && len(records) > 0 {
		return 1
	}
	return 0
}

func printReading(tempC, dewPointC float64, risk domain.RiskCategory) {
	fmt.Printf("temperature:    %.1f°C (%.1f°F)\n", tempC, domain.CelsiusToFahrenheit(tempC))
	fmt.Printf("dew point:      %.1f°C (%.1f°F)\n", dewPointC, domain.CelsiusToFahrenheit(dewPointC))
	fmt.Printf("depression:     %.1f°C\n", domain.DewPointDepression(tempC, dewPointC))
	fmt.Printf("rel. humidity:  %.1f%%\n", domain.RelativeHumidity(tempC, dewPointC))
	fmt.Printf("risk:           %s\n", risk.Label())
}

// parseUnitArg normalizes the -unit flag; lowercase input is accepted the
// same way the HTTP API accepts it.
func parseUnitArg(raw string) (domain.Unit, error) {
	u := domain.Unit(strings.ToUpper(strings.TrimSpace(raw)))
	if !u.Valid() {
		return "", fmt.Errorf("invalid unit %q: must be C or F", raw)
	}
	return u, nil
}

func flagWasSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
