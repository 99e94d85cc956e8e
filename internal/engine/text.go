package engine

import (
	"html"
	"regexp"
	"strings"
)

var (
	htmlTagRegex     = regexp.MustCompile(`<[^>]*>`)
	whitespaceRegex  = regexp.MustCompile(`\s+`)
	inlineWrapRegex  = regexp.MustCompile(`\\\(|\\\)|\\\[|\\\]`)
	leadingDollarRe  = regexp.MustCompile(`^\s*\$+`)
	trailingDollarRe = regexp.MustCompile(`\$+\s*$`)

	fracRegex    = regexp.MustCompile(`\\frac\{([^}]*)\}\{([^}]*)\}`)
	mathrmRegex  = regexp.MustCompile(`\\mathrm\{([^}]*)\}`)
	texTextRegex = regexp.MustCompile(`\\text\{([^}]*)\}`)
	mathbfRegex  = regexp.MustCompile(`\\mathbf\{([^}]*)\}`)
	mathitRegex  = regexp.MustCompile(`\\mathit\{([^}]*)\}`)
	mathsfRegex  = regexp.MustCompile(`\\mathsf\{([^}]*)\}`)
	braceRegex   = regexp.MustCompile(`\{([^}]*)\}`)
)

var texSymbolReplacer = strings.NewReplacer(
	`\times`, "×",
	`\cdot`, "·",
	`\leq`, "≤",
	`\geq`, "≥",
	`\neq`, "≠",
	`\pm`, "±",
)

// NormalizeInput strips markup tags, decodes HTML entities and collapses
// whitespace. Every engine entry point runs input through this first.
func NormalizeInput(value string) string {
	withoutTags := htmlTagRegex.ReplaceAllString(value, " ")
	decoded := html.UnescapeString(withoutTags)
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(decoded, " "))
}

// StripNotationDelimiters removes the \( \) \[ \] and $ wrappers so the
// bare expression can serve as a cache key.
func StripNotationDelimiters(value string) string {
	s := inlineWrapRegex.ReplaceAllString(value, "")
	s = leadingDollarRe.ReplaceAllString(s, "")
	s = trailingDollarRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

func notationToPlainText(value string) string {
	text := inlineWrapRegex.ReplaceAllString(value, "")
	text = fracRegex.ReplaceAllString(text, "$1/$2")
	text = texSymbolReplacer.Replace(text)
	text = mathrmRegex.ReplaceAllString(text, "$1")
	text = texTextRegex.ReplaceAllString(text, "$1")
	text = mathbfRegex.ReplaceAllString(text, "$1")
	text = mathitRegex.ReplaceAllString(text, "$1")
	text = mathsfRegex.ReplaceAllString(text, "$1")
	text = braceRegex.ReplaceAllString(text, "$1")
	return strings.ReplaceAll(text, `\`, "")
}

// SanitizeText converts a raw question field to displayable plain text:
// markup stripped, entities decoded, notation flattened to its nearest
// unicode rendition.
func SanitizeText(value string) string {
	if value == "" {
		return ""
	}
	withoutTags := htmlTagRegex.ReplaceAllString(value, " ")
	decoded := html.UnescapeString(withoutTags)
	flattened := notationToPlainText(decoded)
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(flattened, " "))
}
