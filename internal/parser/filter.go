package parser

import (
	"strings"

	"github.com/mustafagonen/ekstreparse/internal/models"
)

// asciiFold maps Turkish letters to ASCII look-alikes so keyword matching
// works on both proper diacritics and extraction that lost them.
var asciiFold = strings.NewReplacer(
	"ç", "c", "Ç", "c",
	"ğ", "g", "Ğ", "g",
	"ı", "i", "I", "i",
	"İ", "i",
	"ö", "o", "Ö", "o",
	"ş", "s", "Ş", "s",
	"ü", "u", "Ü", "u",
)

// foldKey produces the lowercase ASCII-folded form used for all keyword
// table lookups. Folding runs before lowering so the dotted/dotless I pair
// never reaches strings.ToLower.
func foldKey(s string) string {
	return strings.ToLower(asciiFold.Replace(s))
}

// CategoryRule maps a description keyword to a category. Rules are
// evaluated in order; the first match wins.
type CategoryRule struct {
	Keyword  string
	Category string
}

// defaultCategoryRules is the built-in keyword table. More specific
// merchant names come before generic words inside each bucket, and Market
// precedes Transport so "METRO GROSMARKET" does not land in Transport.
var defaultCategoryRules = []CategoryRule{
	{"migros", models.CategoryMarket},
	{"a101", models.CategoryMarket},
	{"bim", models.CategoryMarket},
	{"sok market", models.CategoryMarket},
	{"carrefour", models.CategoryMarket},
	{"market", models.CategoryMarket},
	{"gida", models.CategoryMarket},

	{"yemeksepeti", models.CategoryDining},
	{"starbucks", models.CategoryDining},
	{"restoran", models.CategoryDining},
	{"restaurant", models.CategoryDining},
	{"lokanta", models.CategoryDining},
	{"cafe", models.CategoryDining},
	{"kahve", models.CategoryDining},
	{"burger", models.CategoryDining},
	{"pizza", models.CategoryDining},
	{"yemek", models.CategoryDining},

	{"akaryakit", models.CategoryTransport},
	{"benzin", models.CategoryTransport},
	{"opet", models.CategoryTransport},
	{"shell", models.CategoryTransport},
	{"petrol", models.CategoryTransport},
	{"taksi", models.CategoryTransport},
	{"uber", models.CategoryTransport},
	{"otopark", models.CategoryTransport},
	{"hgs", models.CategoryTransport},
	{"metro", models.CategoryTransport},

	{"kira", models.CategoryRent},

	{"elektrik", models.CategoryUtilities},
	{"dogalgaz", models.CategoryUtilities},
	{"igdas", models.CategoryUtilities},
	{"iski", models.CategoryUtilities},
	{"turkcell", models.CategoryUtilities},
	{"vodafone", models.CategoryUtilities},
	{"turk telekom", models.CategoryUtilities},
	{"internet", models.CategoryUtilities},
	{"fatura", models.CategoryUtilities},

	{"lc waikiki", models.CategoryClothing},
	{"lcw", models.CategoryClothing},
	{"defacto", models.CategoryClothing},
	{"koton", models.CategoryClothing},
	{"zara", models.CategoryClothing},
	{"mavi", models.CategoryClothing},
	{"giyim", models.CategoryClothing},

	{"eczane", models.CategoryHealth},
	{"hastane", models.CategoryHealth},
	{"klinik", models.CategoryHealth},
	{"optik", models.CategoryHealth},
	{"medikal", models.CategoryHealth},

	{"netflix", models.CategoryEntertainment},
	{"spotify", models.CategoryEntertainment},
	{"sinema", models.CategoryEntertainment},
	{"steam", models.CategoryEntertainment},
	{"oyun", models.CategoryEntertainment},

	{"kitap", models.CategoryEducation},
	{"kirtasiye", models.CategoryEducation},
	{"kurs", models.CategoryEducation},
	{"okul", models.CategoryEducation},
	{"udemy", models.CategoryEducation},
}

// defaultExclusions marks statement metadata lines that assemble like
// transactions but are not purchases: period markers, minimum payment,
// prior balance, limits, points.
var defaultExclusions = []string{
	"donem borcu",
	"son odeme",
	"asgari",
	"ekstre",
	"onceki",
	"devreden",
	"hesap ozeti",
	"kesim tarihi",
	"limit",
	"puan",
	"toplam",
}

// Classifier assigns categories and recognizes informational lines. Safe
// for concurrent use once built.
type Classifier struct {
	rules      []CategoryRule
	exclusions []string
}

// NewClassifier builds a classifier from keyword tables. Keywords are
// folded once up front so per-line matching is a plain substring scan.
func NewClassifier(rules []CategoryRule, exclusions []string) *Classifier {
	c := &Classifier{
		rules:      make([]CategoryRule, len(rules)),
		exclusions: make([]string, len(exclusions)),
	}
	for i, r := range rules {
		c.rules[i] = CategoryRule{Keyword: foldKey(r.Keyword), Category: r.Category}
	}
	for i, k := range exclusions {
		c.exclusions[i] = foldKey(k)
	}
	return c
}

// DefaultClassifier returns a classifier over the built-in tables.
func DefaultClassifier() *Classifier {
	return NewClassifier(defaultCategoryRules, defaultExclusions)
}

// DefaultExclusions returns a copy of the built-in exclusion keywords,
// for callers that override categories but keep the stock exclusions.
func DefaultExclusions() []string {
	return append([]string(nil), defaultExclusions...)
}

// IsInformational reports whether a cleaned description is statement
// metadata rather than a purchase.
func (c *Classifier) IsInformational(desc string) bool {
	folded := foldKey(desc)
	for _, k := range c.exclusions {
		if strings.Contains(folded, k) {
			return true
		}
	}
	return false
}

// Classify returns the first matching category for a description, or the
// catch-all bucket when no keyword fires.
func (c *Classifier) Classify(desc string) string {
	folded := foldKey(desc)
	for _, r := range c.rules {
		if strings.Contains(folded, r.Keyword) {
			return r.Category
		}
	}
	return models.CategoryOther
}
