package generator

import (
	"fmt"
	"math/rand"
	"strings"
	"unicode"

	"github.com/TabularInc/invoice-test-cases-generator/internal/domain/entity"
)

// PartyGenerator builds counterparty companies together with the set
// of alternate surface forms a bank statement might show for them.
type PartyGenerator struct {
	rng     *rand.Rand
	profile CountryProfile
}

// NewPartyGenerator returns a generator drawing from the given random
// source and the default (German) country profile.
func NewPartyGenerator(rng *rand.Rand) *PartyGenerator {
	return &PartyGenerator{rng: rng, profile: germanProfile}
}

// Company generates one company record. NameVariations is computed
// once here and never mutated afterwards.
func (g *PartyGenerator) Company() entity.Company {
	base := g.baseName()
	suffix := g.profile.LegalSuffixes[g.rng.Intn(len(g.profile.LegalSuffixes))]
	name := base + " " + suffix

	domain := domainSlug(base)
	city := g.profile.Cities[g.rng.Intn(len(g.profile.Cities))]
	street := g.profile.Streets[g.rng.Intn(len(g.profile.Streets))]

	return entity.Company{
		Name:           name,
		Address:        fmt.Sprintf("%s %d, %05d %s", street, 1+g.rng.Intn(199), 10000+g.rng.Intn(89999), city),
		Phone:          fmt.Sprintf("+49 %d %d", 30+g.rng.Intn(870), 1000000+g.rng.Intn(8999999)),
		Email:          "info@" + domain + ".de",
		Website:        "www." + domain + ".de",
		BankName:       g.profile.BankNames[g.rng.Intn(len(g.profile.BankNames))],
		IBAN:           g.iban(),
		VATID:          fmt.Sprintf("%s%09d", g.profile.VATPrefix, g.rng.Intn(1000000000)),
		NameVariations: NameVariations(base, suffix),
	}
}

// baseName picks one of four business-name templates uniformly.
func (g *PartyGenerator) baseName() string {
	prefix := namePrefixes[g.rng.Intn(len(namePrefixes))]
	industry := industryPhrases[g.rng.Intn(len(industryPhrases))]

	switch g.rng.Intn(4) {
	case 0: // prefix + suffix fusion, e.g. "TechNova"
		fusion := nameFusionSuffixes[g.rng.Intn(len(nameFusionSuffixes))]
		return prefix + capitalize(fusion)
	case 1: // region word + industry phrase, e.g. "Bayerische Logistik"
		region := g.profile.RegionWords[g.rng.Intn(len(g.profile.RegionWords))]
		return region + " " + industry
	case 2: // surname + industry phrase, e.g. "Müller Consulting"
		surname := g.profile.Surnames[g.rng.Intn(len(g.profile.Surnames))]
		return surname + " " + industry
	default: // prefix + industry fusion, e.g. "EuroConsulting"
		return prefix + capitalize(firstField(industry))
	}
}

func (g *PartyGenerator) iban() string {
	return fmt.Sprintf("%s%02d%08d%010d",
		g.profile.IBANPrefix,
		10+g.rng.Intn(90),
		10000000+g.rng.Intn(89999999),
		g.rng.Int63n(10000000000))
}

// NameVariations derives the set of alternate renderings of a company
// name from its base name and legal suffix. The result has set
// semantics: no duplicates, order insignificant (but deterministic for
// a given input). The canonical "{base} {suffix}" form is not required
// to be a member.
func NameVariations(base, suffix string) []string {
	full := base + " " + suffix

	var raw []string
	raw = append(raw, strings.ToUpper(full))
	raw = append(raw, base)
	raw = append(raw, strings.ToUpper(base))

	if initials := initialism(base); len([]rune(initials)) >= 2 {
		raw = append(raw, initials, initials+" "+suffix)
	}

	if spaced := deCamel(base); spaced != base {
		raw = append(raw, spaced, spaced+" "+suffix)
	}

	if stripped := strings.ReplaceAll(suffix, ".", ""); stripped != suffix {
		raw = append(raw, base+" "+stripped)
	}

	if runes := []rune(base); len(runes) > 10 {
		raw = append(raw, strings.ToUpper(string(runes[:10])))
	}

	seen := make(map[string]struct{}, len(raw))
	variations := make([]string, 0, len(raw))
	for _, v := range raw {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		variations = append(variations, v)
	}
	return variations
}

// RandomNameVariation models the messy counterparty text of a real
// bank statement: the canonical name with probability 0.4, otherwise a
// uniform draw from the precomputed variations, otherwise one of five
// ad-hoc transforms.
func RandomNameVariation(rng *rand.Rand, c entity.Company) string {
	if rng.Float64() < 0.4 {
		return c.Name
	}
	if len(c.NameVariations) > 0 {
		return c.NameVariations[rng.Intn(len(c.NameVariations))]
	}

	switch rng.Intn(5) {
	case 0:
		return strings.ToUpper(c.Name)
	case 1:
		return firstField(c.Name)
	case 2:
		return stripLegalSuffix(c.Name)
	case 3:
		return strings.ReplaceAll(c.Name, ".", "")
	default:
		fields := strings.Fields(c.Name)
		if len(fields) < 2 {
			return c.Name
		}
		return fields[0] + " " + fields[1]
	}
}

// stripLegalSuffix removes a trailing legal-entity token, matched
// case-insensitively against the fixed list of known suffixes.
func stripLegalSuffix(name string) string {
	lower := strings.ToLower(name)
	for _, suffix := range knownLegalSuffixes {
		if strings.HasSuffix(lower, " "+strings.ToLower(suffix)) {
			return strings.TrimSpace(name[:len(name)-len(suffix)])
		}
	}
	return name
}

// initialism returns the uppercased first letters of the
// space-delimited tokens of s.
func initialism(s string) string {
	var b strings.Builder
	for _, field := range strings.Fields(s) {
		runes := []rune(field)
		b.WriteRune(unicode.ToUpper(runes[0]))
	}
	return b.String()
}

// deCamel inserts a space at every lowercase-then-uppercase letter
// boundary: "TechNova" becomes "Tech Nova".
func deCamel(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) && unicode.IsLower(runes[i-1]) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func firstField(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return s
	}
	return fields[0]
}

// domainSlug lowercases a base name and strips everything but ASCII
// letters and digits, good enough for a plausible web domain.
func domainSlug(base string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(base) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == 'ä':
			b.WriteString("ae")
		case r == 'ö':
			b.WriteString("oe")
		case r == 'ü':
			b.WriteString("ue")
		case r == 'ß':
			b.WriteString("ss")
		}
	}
	if b.Len() == 0 {
		return "firma"
	}
	return b.String()
}
