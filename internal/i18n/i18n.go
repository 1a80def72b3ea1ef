// Package i18n resolves UI labels from embedded YAML catalogs. Lookups never
// fail: a missing key falls back to English and then to the key itself.
package i18n

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/accommodate/internal/ports"
)

//go:embed locales/*.yaml
var bundles embed.FS

// Supported lists the bundled locales. English is first and is the fallback.
var Supported = []language.Tag{language.English, language.Spanish, language.French}

var matcher = language.NewMatcher(Supported)

// Catalog is a ports.Translator for one locale.
type Catalog struct {
	locale   language.Tag
	messages map[string]string
	fallback map[string]string
}

var _ ports.Translator = (*Catalog)(nil)

// Load returns the catalog best matching locale, which may be any BCP 47 tag
// or an Accept-Language header value. Unrecognized input yields English.
func Load(locale string) (*Catalog, error) {
	tag := Match(locale)

	fallback, err := readBundle(language.English)
	if err != nil {
		return nil, err
	}
	if tag == language.English {
		return &Catalog{locale: tag, messages: fallback, fallback: fallback}, nil
	}
	messages, err := readBundle(tag)
	if err != nil {
		return nil, err
	}
	return &Catalog{locale: tag, messages: messages, fallback: fallback}, nil
}

// MustLoad is Load for the embedded catalogs, which are known to parse.
func MustLoad(locale string) *Catalog {
	c, err := Load(locale)
	if err != nil {
		panic(err)
	}
	return c
}

// Match resolves locale to one of the Supported tags.
func Match(locale string) language.Tag {
	var desired []language.Tag
	if tags, _, err := language.ParseAcceptLanguage(locale); err == nil && len(tags) > 0 {
		desired = tags
	} else if tag, err := language.Parse(locale); err == nil {
		desired = []language.Tag{tag}
	}
	_, index, confidence := matcher.Match(desired...)
	if confidence == language.No {
		return language.English
	}
	return Supported[index]
}

// Translate implements ports.Translator.
func (c *Catalog) Translate(key string) string {
	if c == nil {
		return key
	}
	if msg, ok := c.messages[key]; ok {
		return msg
	}
	if msg, ok := c.fallback[key]; ok {
		return msg
	}
	return key
}

// Locale implements ports.Translator.
func (c *Catalog) Locale() string {
	if c == nil {
		return language.English.String()
	}
	return c.locale.String()
}

// Keys lists every key defined by the catalog's locale in sorted order.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.messages))
	for key := range c.messages {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func readBundle(tag language.Tag) (map[string]string, error) {
	base, _ := tag.Base()
	name := path.Join("locales", base.String()+".yaml")
	raw, err := bundles.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", name, err)
	}
	var tree map[string]any
	if err := yaml.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", name, err)
	}
	out := make(map[string]string)
	flatten("", tree, out)
	return out, nil
}

func flatten(prefix string, node map[string]any, out map[string]string) {
	for key, value := range node {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch v := value.(type) {
		case map[string]any:
			flatten(full, v, out)
		case string:
			out[full] = v
		default:
			out[full] = strings.TrimSpace(fmt.Sprint(v))
		}
	}
}
