package scraper

import "strings"

// cityCountries maps city/place tokens to the country name they imply.
// FCDO post names follow patterns like "British Embassy Ankara" and naval
// party rows like "Diego Garcia NP 1002"; the table covers the places that
// actually appear in the sources.
var cityCountries = []struct {
	token   string
	country string
}{
	// Naval party stations.
	{"diego garcia", "British Indian Ocean Territory"},
	{"falkland", "Falklands"},
	{"den helder", "Netherlands"},
	// Europe.
	{"ankara", "Turkey"},
	{"paris", "France"},
	{"berlin", "Germany"},
	{"madrid", "Spain"},
	{"rome", "Italy"},
	{"athens", "Greece"},
	{"vienna", "Austria"},
	{"brussels", "Belgium"},
	{"amsterdam", "Netherlands"},
	{"dublin", "Ireland"},
	{"lisbon", "Portugal"},
	{"copenhagen", "Denmark"},
	{"stockholm", "Sweden"},
	{"oslo", "Norway"},
	{"helsinki", "Finland"},
	{"warsaw", "Poland"},
	{"prague", "Czech Republic"},
	{"budapest", "Hungary"},
	{"bucharest", "Romania"},
	{"sofia", "Bulgaria"},
	{"moscow", "Russia"},
	// Americas.
	{"ottawa", "Canada"},
	{"washington", "USA"},
	{"new york", "USA"},
	{"los angeles", "USA"},
	{"san francisco", "USA"},
	{"chicago", "USA"},
	{"boston", "USA"},
	{"atlanta", "USA"},
	{"mexico city", "Mexico"},
	{"brasilia", "Brazil"},
	{"buenos aires", "Argentina"},
	{"santiago", "Chile"},
	{"lima", "Peru"},
	{"bogota", "Colombia"},
	// Asia and Middle East.
	{"tokyo", "Japan"},
	{"beijing", "China"},
	{"shanghai", "China"},
	{"seoul", "South Korea"},
	{"delhi", "India"},
	{"mumbai", "India"},
	{"bangkok", "Thailand"},
	{"singapore", "Singapore"},
	{"jakarta", "Indonesia"},
	{"manila", "Philippines"},
	{"kuala lumpur", "Malaysia"},
	{"hanoi", "Vietnam"},
	{"islamabad", "Pakistan"},
	{"kabul", "Afghanistan"},
	{"tehran", "Iran"},
	{"riyadh", "Saudi Arabia"},
	{"dubai", "United Arab Emirates"},
	{"abu dhabi", "United Arab Emirates"},
	// Oceania.
	{"canberra", "Australia"},
	{"sydney", "Australia"},
	{"melbourne", "Australia"},
	{"wellington", "New Zealand"},
	{"auckland", "New Zealand"},
	// Africa.
	{"cairo", "Egypt"},
	{"nairobi", "Kenya"},
	{"johannesburg", "South Africa"},
	{"pretoria", "South Africa"},
	{"lagos", "Nigeria"},
	{"abuja", "Nigeria"},
	{"addis ababa", "Ethiopia"},
	{"accra", "Ghana"},
	{"dar es salaam", "Tanzania"},
	{"kampala", "Uganda"},
	// Other stations appearing on the locations page.
	{"gibraltar", "Gibraltar"},
	{"ascension", "Ascension"},
	{"dhekelia", "Cyprus"},
	{"akrotiri", "Cyprus"},
	{"episkopi", "Cyprus"},
	{"brunei", "Brunei"},
	{"kathmandu", "Nepal"},
}

// InferCountry guesses the country name implied by a location or post
// name. Returns "" when no token matches; the guess is a country *name*,
// resolution to a code still goes through the resolver chain.
func InferCountry(location string) string {
	lower := strings.ToLower(location)

	for _, entry := range cityCountries {
		if strings.Contains(lower, entry.token) {
			return entry.country
		}
	}

	return ""
}
