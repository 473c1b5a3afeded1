package iata

import "sort"

// Metro-area codes aggregate a city's airports and are preferred for searches:
// a LON query covers LHR/LGW/STN/LCY/LTN at the GDS.
var metroAreaCodes = map[string]string{
	"london":        "LON",
	"new york":      "NYC",
	"paris":         "PAR",
	"tokyo":         "TYO",
	"moscow":        "MOW",
	"milan":         "MIL",
	"rome":          "ROM",
	"stockholm":     "STO",
	"berlin":        "BER",
	"chicago":       "CHI",
	"washington":    "WAS",
	"los angeles":   "LAX",
	"san francisco": "SFO",
	"dubai":         "DXB",
	"istanbul":      "IST",
	"cairo":         "CAI",
	"mumbai":        "BOM",
	"delhi":         "DEL",
	"bangkok":       "BKK",
	"singapore":     "SIN",
	"sydney":        "SYD",
	"melbourne":     "MEL",
	"toronto":       "YYZ",
	"montreal":      "YUL",
	"vancouver":     "YVR",
}

// Specific airports, for users who name the airport rather than the city.
var airportCodes = map[string]string{
	"heathrow":         "LHR",
	"gatwick":          "LGW",
	"stansted":         "STN",
	"luton":            "LTN",
	"jfk":              "JFK",
	"laguardia":        "LGA",
	"lga":              "LGA",
	"newark":           "EWR",
	"ewr":              "EWR",
	"charles de gaulle": "CDG",
	"cdg":              "CDG",
	"orly":             "ORY",
	"schiphol":         "AMS",
	"ams":              "AMS",
	"frankfurt":        "FRA",
	"fra":              "FRA",
	"munich":           "MUC",
	"muc":              "MUC",
	"zurich":           "ZUR",
	"zur":              "ZUR",
	"madrid":           "MAD",
	"mad":              "MAD",
	"barcelona":        "BCN",
	"bcn":              "BCN",
	"arlanda":          "ARN",
	"arn":              "ARN",
	"karachi":          "KHI",
	"khi":              "KHI",
	"lahore":           "LHE",
	"lhe":              "LHE",
	"islamabad":        "ISB",
	"isb":              "ISB",
	"peshawar":         "PEW",
	"pew":              "PEW",
	"quetta":           "UET",
	"uet":              "UET",
	"multan":           "MUX",
	"mux":              "MUX",
	"athens":           "ATH",
	"ath":              "ATH",
}

// Sorted key lists keep the substring pass deterministic; map iteration order
// would make "first match" depend on the run.
var (
	metroNames   []string
	airportNames []string
)

func init() {
	for name := range metroAreaCodes {
		metroNames = append(metroNames, name)
	}
	sort.Strings(metroNames)
	for name := range airportCodes {
		airportNames = append(airportNames, name)
	}
	sort.Strings(airportNames)
}

// KnownPlaceNames returns every resolvable name, metro cities first. Used by the
// keyword-fallback extractor to scan utterances for place mentions.
func KnownPlaceNames() []string {
	out := make([]string, 0, len(metroNames)+len(airportNames))
	out = append(out, metroNames...)
	out = append(out, airportNames...)
	return out
}
