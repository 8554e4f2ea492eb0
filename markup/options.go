package markup

import (
	"sort"
	"strings"
)

// Option configures an element at construction time.
type Option func(*config)

type config struct {
	classes     []string
	haveClasses bool
	selfClosing bool
	attrs       []Attribute
}

func newConfig(opts []Option) *config {
	conf := &config{}
	for _, opt := range opts {
		if opt != nil {
			opt(conf)
		}
	}
	return conf
}

// attributes assembles the attribute set: the class attribute comes
// first, all other attributes follow in the order of the options.
func (conf *config) attributes() *Attributes {
	attrs := &Attributes{}
	if conf.haveClasses {
		attrs.Set("class", strings.Join(conf.classes, " "))
	}
	for _, a := range conf.attrs {
		attrs.Set(a.Key, a.Value)
	}
	return attrs
}

// Classes sets the class attribute. Class names are joined with single
// spaces. Calling Classes without arguments produces an empty class
// attribute. Multiple Classes options accumulate.
func Classes(names ...string) Option {
	return func(conf *config) {
		conf.classes = append(conf.classes, names...)
		conf.haveClasses = true
	}
}

// SelfClosing forces an element to be rendered like a void element,
// regardless of its tag name.
func SelfClosing() Option {
	return func(conf *config) {
		conf.selfClosing = true
	}
}

// Attr adds an attribute. Underscores in key are replaced by hyphens.
func Attr(key, value string) Option {
	return func(conf *config) {
		conf.attrs = append(conf.attrs, Attribute{Key: key, Value: value})
	}
}

// Attrs adds a map of attributes. As Go maps are unordered, the attributes
// are added in lexical order of their keys; use Attr to control the
// order of attributes.
func Attrs(m map[string]string) Option {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return func(conf *config) {
		for _, k := range keys {
			conf.attrs = append(conf.attrs, Attribute{Key: k, Value: m[k]})
		}
	}
}
