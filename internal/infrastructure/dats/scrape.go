package dats

import (
	"regexp"
	"strings"
	"sync"
)

// The PASS responses vary their namespace prefixes between deployments, so
// elements are scraped by local name rather than decoded against a schema.

var (
	tagReMu sync.Mutex
	tagRe   = map[string]*regexp.Regexp{}
)

func tagPattern(tag string) *regexp.Regexp {
	tagReMu.Lock()
	defer tagReMu.Unlock()
	re, ok := tagRe[tag]
	if !ok {
		re = regexp.MustCompile(`(?s)<(?:[A-Za-z0-9_]+:)?` + tag + `(?:\s[^>]*)?>(.*?)</(?:[A-Za-z0-9_]+:)?` + tag + `>`)
		tagRe[tag] = re
	}
	return re
}

// xmlTag returns the trimmed, unescaped text of the first element with the
// given local name, or "" when absent.
func xmlTag(body, tag string) string {
	m := tagPattern(tag).FindStringSubmatch(body)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(unescape(m[1]))
}

// xmlTags returns the inner text of every element with the given local
// name, in document order. Inner markup is preserved so callers can scrape
// nested tags out of each block.
func xmlTags(body, tag string) []string {
	var out []string
	for _, m := range tagPattern(tag).FindAllStringSubmatch(body, -1) {
		out = append(out, m[1])
	}
	return out
}

var entityReplacer = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
	"&amp;", "&",
)

func unescape(s string) string {
	return entityReplacer.Replace(s)
}
