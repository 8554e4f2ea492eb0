package markup

import (
	"strings"
)

// Attribute is a key-value pair of an element.
type Attribute struct {
	Key   string
	Value string
}

func (a Attribute) String() string {
	return a.Key + `="` + a.Value + `"`
}

// Attributes is an ordered map of element attributes. Attributes keep
// the order in which they have been set; overwriting a key keeps its
// position.
//
// The zero value is an empty set of attributes, ready to use.
type Attributes struct {
	items []Attribute
	index map[string]int
}

// NormalizeKey maps an attribute key to HTML naming convention by
// replacing underscores with hyphens, e.g. "data_image" → "data-image".
func NormalizeKey(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

// Set sets the value for key, normalizing the key first.
func (attrs *Attributes) Set(key, value string) *Attributes {
	key = NormalizeKey(key)
	if attrs.index == nil {
		attrs.index = make(map[string]int)
	}
	if i, ok := attrs.index[key]; ok {
		attrs.items[i].Value = value
		return attrs
	}
	attrs.index[key] = len(attrs.items)
	attrs.items = append(attrs.items, Attribute{Key: key, Value: value})
	return attrs
}

// Get returns the value for key (after normalization), if present.
func (attrs *Attributes) Get(key string) (string, bool) {
	if attrs == nil {
		return "", false
	}
	i, ok := attrs.index[NormalizeKey(key)]
	if !ok {
		return "", false
	}
	return attrs.items[i].Value, true
}

// Len returns the number of attributes.
func (attrs *Attributes) Len() int {
	if attrs == nil {
		return 0
	}
	return len(attrs.items)
}

// Item returns the i-th attribute in insertion order.
func (attrs *Attributes) Item(i int) (Attribute, bool) {
	if i < 0 || i >= attrs.Len() {
		return Attribute{}, false
	}
	return attrs.items[i], true
}

// Keys returns all attribute keys in insertion order.
func (attrs *Attributes) Keys() []string {
	keys := make([]string, attrs.Len())
	for i := range keys {
		keys[i] = attrs.items[i].Key
	}
	return keys
}

// String formats the attributes as `key="value"` pairs, separated by a
// single space. Values are not escaped.
func (attrs *Attributes) String() string {
	if attrs.Len() == 0 {
		return ""
	}
	var b strings.Builder
	for i, a := range attrs.items {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(a.String())
	}
	return b.String()
}
