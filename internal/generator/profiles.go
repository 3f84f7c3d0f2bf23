// Package generator implements the case-type generation engine: party
// and name-variation generation, invoice synthesis, the per-case-type
// transaction policy table, group-payment aggregation and run-level
// assembly. All randomness flows through an explicit *rand.Rand so a
// seeded run is fully reproducible and concurrent requests never share
// a generator.
package generator

// CountryProfile scopes the plausible surface forms of a generated
// company: legal suffixes, identifier prefixes and name pools. Data
// plausibility, not legal correctness, is the goal.
type CountryProfile struct {
	Locale        string
	LegalSuffixes []string
	VATPrefix     string
	IBANPrefix    string
	BankNames     []string
	Cities        []string
	Streets       []string
	RegionWords   []string
	Surnames      []string
}

var germanProfile = CountryProfile{
	Locale: "de-DE",
	LegalSuffixes: []string{
		"GmbH",
		"AG",
		"GmbH & Co. KG",
		"SE",
		"UG",
		"e.K.",
		"OHG",
	},
	VATPrefix:  "DE",
	IBANPrefix: "DE",
	BankNames: []string{
		"Commerzbank",
		"Deutsche Bank",
		"Sparkasse Berlin",
		"DZ Bank",
		"Hamburger Volksbank",
		"Postbank",
	},
	Cities: []string{
		"Berlin", "Hamburg", "München", "Köln", "Frankfurt",
		"Stuttgart", "Düsseldorf", "Leipzig", "Dresden", "Nürnberg",
	},
	Streets: []string{
		"Hauptstraße", "Bahnhofstraße", "Industrieweg", "Marktplatz",
		"Gartenstraße", "Lindenallee", "Berliner Straße", "Am Werk",
	},
	RegionWords: []string{
		"Bayerische", "Norddeutsche", "Rheinische", "Hanseatische",
		"Schwäbische", "Sächsische", "Westfälische",
	},
	Surnames: []string{
		"Müller", "Schmidt", "Schneider", "Fischer", "Weber",
		"Meyer", "Wagner", "Becker", "Hoffmann", "Richter",
	},
}

// Fusion fragments for the prefix+suffix and prefix+industry templates.
var (
	namePrefixes = []string{
		"Tech", "Inno", "Data", "Pro", "Euro", "Meta", "Opti",
		"Trans", "Inter", "Alpha", "Nova", "Digi",
	}
	nameFusionSuffixes = []string{
		"nova", "tec", "ware", "works", "core", "flux", "dyn",
		"line", "matic", "plex",
	}
	industryPhrases = []string{
		"Software Solutions", "Logistik", "Consulting", "Maschinenbau",
		"Handels", "Systems", "Engineering", "Medien", "Bau",
		"Elektronik",
	}
)

// knownLegalSuffixes is the fixed list used by the ad-hoc
// suffix-stripping fallback transform. It deliberately covers more
// jurisdictions than the generation profile: real bank statements do.
var knownLegalSuffixes = []string{
	"GmbH & Co. KG",
	"GmbH",
	"AG",
	"KG",
	"UG",
	"SE",
	"e.K.",
	"OHG",
	"Ltd",
	"Ltd.",
	"Inc",
	"Inc.",
	"LLC",
	"S.A.",
	"B.V.",
}
