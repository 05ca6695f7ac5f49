package circle

import "github.com/sahilm/fuzzy"

// Country is one row of the phone-login country picker.
type Country struct {
	Name     string
	ISO      string // two-letter code
	DialCode string // "+" prefix included
}

// Countries is the dial-code table shown by the picker, alphabetical by name.
var Countries = []Country{
	{"Argentina", "AR", "+54"},
	{"Australia", "AU", "+61"},
	{"Austria", "AT", "+43"},
	{"Belgium", "BE", "+32"},
	{"Brazil", "BR", "+55"},
	{"Canada", "CA", "+1"},
	{"Chile", "CL", "+56"},
	{"China", "CN", "+86"},
	{"Colombia", "CO", "+57"},
	{"Czechia", "CZ", "+420"},
	{"Denmark", "DK", "+45"},
	{"Egypt", "EG", "+20"},
	{"Finland", "FI", "+358"},
	{"France", "FR", "+33"},
	{"Germany", "DE", "+49"},
	{"Greece", "GR", "+30"},
	{"Hong Kong", "HK", "+852"},
	{"India", "IN", "+91"},
	{"Indonesia", "ID", "+62"},
	{"Ireland", "IE", "+353"},
	{"Israel", "IL", "+972"},
	{"Italy", "IT", "+39"},
	{"Japan", "JP", "+81"},
	{"Malaysia", "MY", "+60"},
	{"Mexico", "MX", "+52"},
	{"Netherlands", "NL", "+31"},
	{"New Zealand", "NZ", "+64"},
	{"Norway", "NO", "+47"},
	{"Philippines", "PH", "+63"},
	{"Poland", "PL", "+48"},
	{"Portugal", "PT", "+351"},
	{"Singapore", "SG", "+65"},
	{"South Africa", "ZA", "+27"},
	{"South Korea", "KR", "+82"},
	{"Spain", "ES", "+34"},
	{"Sweden", "SE", "+46"},
	{"Switzerland", "CH", "+41"},
	{"Taiwan", "TW", "+886"},
	{"Thailand", "TH", "+66"},
	{"Turkey", "TR", "+90"},
	{"United Arab Emirates", "AE", "+971"},
	{"United Kingdom", "GB", "+44"},
	{"United States", "US", "+1"},
	{"Vietnam", "VN", "+84"},
}

// SearchCountries fuzzy-filters the country table by name. An empty query
// returns every country in table order.
func SearchCountries(query string) []Country {
	if query == "" {
		return Countries
	}

	names := make([]string, len(Countries))
	for i, c := range Countries {
		names[i] = c.Name
	}

	matches := fuzzy.Find(query, names)
	results := make([]Country, len(matches))
	for i, match := range matches {
		results[i] = Countries[match.Index]
	}
	return results
}
