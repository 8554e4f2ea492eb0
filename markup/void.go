package markup

import "sort"

// voidTags lists the tag names rendered as self-closing tags.
var voidTags = map[string]struct{}{
	"area":    {},
	"base":    {},
	"br":      {},
	"col":     {},
	"command": {},
	"embed":   {},
	"hr":      {},
	"img":     {},
	"input":   {},
	"keygen":  {},
	"link":    {},
	"menu":    {},
	"item":    {},
	"meta":    {},
	"param":   {},
	"source":  {},
	"track":   {},
	"wbr":     {},
}

// IsVoid returns true if tag names a void element, i.e. one that is
// rendered as a self-closing tag. Tag names are case-sensitive.
func IsVoid(tag string) bool {
	_, ok := voidTags[tag]
	return ok
}

// VoidTags returns the names of all void elements in alphabetical order.
func VoidTags() []string {
	tags := make([]string, 0, len(voidTags))
	for tag := range voidTags {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
