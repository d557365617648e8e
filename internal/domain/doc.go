// Package domain models carburetor icing risk for piston aircraft.
//
// # Data Source
//
// Observations originate from the aviationweather.gov METAR data API
// (https://aviationweather.gov/api/data/metar?format=json). The upstream
// collector fetches station reports on a cron schedule and publishes each
// report as flat JSON to the Kafka source topic. Temperature and dew point
// arrive in degrees Celsius; both may be absent when a station sensor is
// unserviceable.
//
// # Icing Risk Conventions
//
// Units:
//
//	All risk computation is performed in Celsius. Fahrenheit appears only at
//	input/display boundaries and is converted with the exact identities
//	F = C*9/5 + 32 and C = (F-32)*5/9, which round-trip within floating-point
//	rounding.
//
// Dew-point depression:
//
//	D = temperature − dew point. Smaller depression means higher relative
//	humidity and more water available to freeze in the venturi. A negative
//	depression (dew point above ambient temperature) is physically impossible
//	at equilibrium; the rule table admits no negative depression, so such a
//	reading classifies as no icing. Callers that prefer clamping must clamp
//	the dew point before classification.
//
// Risk classification:
//
//	Derived from the carburetor icing probability chart published in
//	transport-authority guidance (TP 10737E and equivalents). The five-tier
//	scale is an ordered table of overlapping temperature/depression envelopes
//	evaluated top to bottom, first match wins:
//
//	  0≤T≤20, 0≤D≤8   serious icing – any power
//	  0≤T≤20, 0≤D≤12  serious icing – descent power
//	  0≤T≤30, 0≤D≤15  moderate icing – cruise power, serious icing – descent power
//	  0≤T≤40, 0≤D≤25  light icing – cruise or descent power
//	  otherwise       no icing
//
//	The envelopes overlap deliberately: later rows are wider supersets of
//	earlier rows, so evaluation order is part of the contract.
//
// Relative humidity:
//
//	Estimated from temperature and dew point with the Magnus approximation
//	(a = 17.625, b = 243.04 °C). Used to place readings on the
//	relative-humidity reference chart and included in advisories.
//
// # ID Generation
//
// Advisory IDs are deterministic SHA-256 hashes of station|temp|dewp|time.
// This enables idempotent upserts downstream (ON CONFLICT DO NOTHING) and
// replay safety without distributed coordination. See [generateID].
package domain
