package helper

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

const DefaultSlugMaxLen = 160

var slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)

// GenerateSlug normalizes s into a URL-safe slug: diacritics stripped,
// lowercased, non-alphanumerics collapsed into single hyphens.
func GenerateSlug(s string) string {
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) { // combining marks from decomposition
			continue
		}
		b.WriteRune(r)
	}
	out := strings.ToLower(b.String())
	out = slugInvalid.ReplaceAllString(out, "-")
	out = strings.Trim(out, "-")
	if len(out) > DefaultSlugMaxLen {
		out = strings.Trim(out[:DefaultSlugMaxLen], "-")
	}
	return out
}

// EnsureUniqueSlug probes table.column for base, base-2, base-3, ... and
// returns the first free candidate.
func EnsureUniqueSlug(db *gorm.DB, table, column, base string) (string, error) {
	if base == "" {
		base = "item"
	}
	candidate := base
	for i := 2; ; i++ {
		var count int64
		if err := db.Table(table).Where(fmt.Sprintf("%s = ?", column), candidate).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}
