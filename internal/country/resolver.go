// Package country resolves free-text country and territory names to
// ISO 3166-1 alpha-2 codes using a fixed lookup chain: exact match,
// alias table, then unambiguous substring match.
package country

import "strings"

// canonicalNames maps lower-cased canonical country/territory names to
// their alpha-2 code. The table is frozen at init and only ever read,
// which keeps resolution deterministic across runs.
var canonicalNames = map[string]string{
	"afghanistan":                      "AF",
	"albania":                          "AL",
	"algeria":                          "DZ",
	"argentina":                        "AR",
	"ascension island":                 "AC",
	"australia":                        "AU",
	"austria":                          "AT",
	"bahrain":                          "BH",
	"bangladesh":                       "BD",
	"belgium":                          "BE",
	"belize":                           "BZ",
	"bosnia and herzegovina":           "BA",
	"brazil":                           "BR",
	"british indian ocean territory":   "IO",
	"brunei":                           "BN",
	"bulgaria":                         "BG",
	"canada":                           "CA",
	"chile":                            "CL",
	"china":                            "CN",
	"colombia":                         "CO",
	"croatia":                          "HR",
	"cyprus":                           "CY",
	"czech republic":                   "CZ",
	"denmark":                          "DK",
	"egypt":                            "EG",
	"estonia":                          "EE",
	"ethiopia":                         "ET",
	"falkland islands":                 "FK",
	"finland":                          "FI",
	"france":                           "FR",
	"germany":                          "DE",
	"ghana":                            "GH",
	"gibraltar":                        "GI",
	"greece":                           "GR",
	"hungary":                          "HU",
	"iceland":                          "IS",
	"india":                            "IN",
	"indonesia":                        "ID",
	"iran":                             "IR",
	"iraq":                             "IQ",
	"ireland":                          "IE",
	"israel":                           "IL",
	"italy":                            "IT",
	"japan":                            "JP",
	"jordan":                           "JO",
	"kenya":                            "KE",
	"kosovo":                           "XK",
	"kuwait":                           "KW",
	"latvia":                           "LV",
	"lebanon":                          "LB",
	"lithuania":                        "LT",
	"luxembourg":                       "LU",
	"malaysia":                         "MY",
	"mali":                             "ML",
	"malta":                            "MT",
	"mexico":                           "MX",
	"montenegro":                       "ME",
	"morocco":                          "MA",
	"nepal":                            "NP",
	"netherlands":                      "NL",
	"new zealand":                      "NZ",
	"nigeria":                          "NG",
	"north macedonia":                  "MK",
	"norway":                           "NO",
	"oman":                             "OM",
	"pakistan":                         "PK",
	"peru":                             "PE",
	"philippines":                      "PH",
	"poland":                           "PL",
	"portugal":                         "PT",
	"qatar":                            "QA",
	"romania":                          "RO",
	"russia":                           "RU",
	"saudi arabia":                     "SA",
	"senegal":                          "SN",
	"serbia":                           "RS",
	"sierra leone":                     "SL",
	"singapore":                        "SG",
	"slovakia":                         "SK",
	"slovenia":                         "SI",
	"somalia":                          "SO",
	"south africa":                     "ZA",
	"south korea":                      "KR",
	"south sudan":                      "SS",
	"spain":                            "ES",
	"sri lanka":                        "LK",
	"sudan":                            "SD",
	"saint helena":                     "SH",
	"sweden":                           "SE",
	"switzerland":                      "CH",
	"tanzania":                         "TZ",
	"thailand":                         "TH",
	"tunisia":                          "TN",
	"türkiye":                          "TR",
	"uganda":                           "UG",
	"ukraine":                          "UA",
	"united arab emirates":             "AE",
	"united kingdom":                   "GB",
	"united states":                    "US",
	"vietnam":                          "VN",
	"yemen":                            "YE",
}

// aliases covers historical, colloquial and alternate spellings the
// canonical table misses. Checked after the exact lookup fails.
var aliases = map[string]string{
	"holland":                           "NL",
	"usa":                               "US",
	"united states of america":          "US",
	"turkey":                            "TR", // official name changed to Türkiye in 2022
	"falklands":                         "FK",
	"falkland islands (islas malvinas)": "FK",
	"ascension":                         "AC",
	"st helena":                         "SH",
	"uk":                                "GB",
	"great britain":                     "GB",
	"uae":                               "AE",
	"republic of ireland":               "IE",
	"korea":                             "KR",
	"macedonia":                         "MK",
	"bosnia":                            "BA",
	"africa":                            "AF", // generic Africa used for some operations
}

// Resolve maps a free-text country or territory name to its alpha-2 code.
// Returns ("", false) when the name cannot be resolved; absence is a valid
// terminal state, never an error.
func Resolve(name string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return "", false
	}

	if code, ok := canonicalNames[key]; ok {
		return code, true
	}

	if code, ok := aliases[key]; ok {
		return code, true
	}

	return resolvePartial(key)
}

// resolvePartial accepts a match only when exactly one canonical name
// contains, or is contained by, the queried name. Multiple candidates mean
// the query is ambiguous and stays unresolved; guessing would make
// classification unstable across re-scrapes.
func resolvePartial(key string) (string, bool) {
	matched := ""
	count := 0

	for name, code := range canonicalNames {
		if strings.Contains(name, key) || strings.Contains(key, name) {
			count++

			matched = code
			if count > 1 {
				return "", false
			}
		}
	}

	if count == 1 {
		return matched, true
	}

	return "", false
}

// IsValidCode reports whether code is one of the alpha-2 codes this
// resolver can produce.
func IsValidCode(code string) bool {
	if len(code) != 2 {
		return false
	}

	code = strings.ToUpper(code)
	for _, c := range canonicalNames {
		if c == code {
			return true
		}
	}

	for _, c := range aliases {
		if c == code {
			return true
		}
	}

	return false
}
