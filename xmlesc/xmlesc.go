// Package xmlesc escapes strings for embedding in project XML.
package xmlesc

import (
	"strings"

	"github.com/Gtd232/AerfuckyingExtensions/cast"
)

var replacer = strings.NewReplacer(
	"<", "&lt;",
	">", "&gt;",
	"&", "&amp;",
	"'", "&apos;",
	`"`, "&quot;",
)

// Escape replaces the five XML special characters with entities.
func Escape(s string) string {
	return replacer.Replace(s)
}

// EscapeValue escapes any dynamic value, stringifying it first.
func EscapeValue(value any) string {
	return Escape(cast.ToString(value))
}
