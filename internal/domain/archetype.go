package domain

import "sort"

// UnknownArchetypeName is returned for codes outside the 32-entry table.
const UnknownArchetypeName = "Unknown Archetype"

// Archetype is one of the 32 named personas, one per letter combination.
type Archetype struct {
	Code   string   `json:"code"`
	Name   string   `json:"name"`
	Traits []string `json:"traits"`
}

// archetypeNames is keyed by code in canonical axis order
// (E/F, L/A, P/C, S/R, G/N).
var archetypeNames = map[string]string{
	"ELPSG": "Utopian Cosmopolitan",
	"ELPSN": "Grassroots Socialist",
	"ELPRG": "Spiritual Humanitarian",
	"ELPRN": "Faithful Agrarian",
	"ELCSG": "Pragmatic Internationalist",
	"ELCSN": "Heritage Cooperativist",
	"ELCRG": "Devout Mutualist",
	"ELCRN": "Rural Traditionalist",
	"EAPSG": "Technocratic Planner",
	"EAPSN": "Revolutionary Vanguard",
	"EAPRG": "Theocratic Reformer",
	"EAPRN": "Populist Crusader",
	"EACSG": "Bureaucratic Steward",
	"EACSN": "National Collectivist",
	"EACRG": "Clerical Guardian",
	"EACRN": "Theocratic Collectivist",
	"FLPSG": "Cosmopolitan Libertarian",
	"FLPSN": "Independent Freethinker",
	"FLPRG": "Enlightened Philanthropist",
	"FLPRN": "Frontier Individualist",
	"FLCSG": "Classical Liberal",
	"FLCSN": "Constitutional Minarchist",
	"FLCRG": "Faithful Free-Trader",
	"FLCRN": "Homestead Conservative",
	"FAPSG": "Corporate Modernizer",
	"FAPSN": "Industrial Nationalist",
	"FAPRG": "Moral Capitalist",
	"FAPRN": "Civic Revivalist",
	"FACSG": "Market Technocrat",
	"FACSN": "Security Hawk",
	"FACRG": "Imperial Traditionalist",
	"FACRN": "Nationalist Patriarch",
}

// LookupArchetype returns the archetype for code, and false when the code
// is not one of the 32 valid combinations.
func LookupArchetype(code string) (Archetype, bool) {
	name, ok := archetypeNames[code]
	if !ok {
		return Archetype{Code: code, Name: UnknownArchetypeName}, false
	}
	return Archetype{Code: code, Name: name, Traits: TraitsFor(code)}, true
}

// TraitsFor returns the five pole labels spelled by code, or nil when any
// letter does not belong to its axis.
func TraitsFor(code string) []string {
	if len(code) != AxisCount {
		return nil
	}
	traits := make([]string, 0, AxisCount)
	for i, a := range Axes {
		p, ok := a.PoleFor(Letter(code[i]))
		if !ok {
			return nil
		}
		traits = append(traits, p.Label())
	}
	return traits
}

// AllArchetypes lists the table sorted by code.
func AllArchetypes() []Archetype {
	codes := make([]string, 0, len(archetypeNames))
	for c := range archetypeNames {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	out := make([]Archetype, 0, len(codes))
	for _, c := range codes {
		a, _ := LookupArchetype(c)
		out = append(out, a)
	}
	return out
}

// AllCodes enumerates every code over the defined letter pairs, in
// left-before-right order per axis.
func AllCodes() []string {
	codes := []string{""}
	for _, a := range Axes {
		next := make([]string, 0, len(codes)*2)
		for _, prefix := range codes {
			next = append(next, prefix+a.Left().Letter.String(), prefix+a.Right().Letter.String())
		}
		codes = next
	}
	return codes
}
