package parser

import (
	"regexp"
	"strings"
)

// repair is one corruption-fix rule. The table runs in order: the glyph
// repairs must fire before the merchant rules, which assume repaired text.
type repair struct {
	pattern     *regexp.Regexp
	replacement string
}

// descriptionRepairs reverses known damage in extracted descriptions.
// Statement text reaches us through a Windows-1254 byte stream decoded as
// Latin-1, which maps the Turkish letters onto accented Latin glyphs; the
// first six rules undo that. The remainder are merchant-specific garbles
// observed in real statements, kept verbatim even where they are clearly
// overfit (the trailing-GI rule restores a truncated "GIDA" token and will
// happily rewrite anything else ending in GI).
var descriptionRepairs = []repair{
	{regexp.MustCompile(`Ð`), "Ğ"},
	{regexp.MustCompile(`Ý`), "İ"},
	{regexp.MustCompile(`Þ`), "Ş"},
	{regexp.MustCompile(`ð`), "ğ"},
	{regexp.MustCompile(`ý`), "ı"},
	{regexp.MustCompile(`þ`), "ş"},

	{regexp.MustCompile(`\bMIGROS\b`), "MİGROS"},
	{regexp.MustCompile(`\bM GROS\b`), "MİGROS"},
	{regexp.MustCompile(`\bBIM\b`), "BİM"},
	{regexp.MustCompile(`\bSOK MARKET`), "ŞOK MARKET"},
	{regexp.MustCompile(`\bTURK TELEKOM\b`), "TÜRK TELEKOM"},
	{regexp.MustCompile(`GI$`), "GIDA"},
}

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	strayDashes   = regexp.MustCompile(`\s-+\s|\s-+$|^-+\s|^-+$`)
)

// cleanDescription runs the repair table over a raw description, then
// collapses whitespace, strips stray dashes and trims. Callers must treat
// results shorter than two characters as unusable.
func cleanDescription(raw string) string {
	s := strings.TrimSpace(raw)
	for _, r := range descriptionRepairs {
		s = r.pattern.ReplaceAllString(s, r.replacement)
	}
	s = strayDashes.ReplaceAllString(s, " ")
	s = whitespaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
