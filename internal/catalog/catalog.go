// Package catalog holds the reading material shown next to an animation:
// explanations, complexity and code samples per algorithm.
package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"gopkg.in/yaml.v3"
)

// Fallback is the entry and sample used for algorithms without their own.
const Fallback = "bubble-sort"

var ErrUnknownLanguage = errors.New("catalog: unknown language")

var (
	//go:embed catalog.yaml
	catalogYAML []byte

	//go:embed samples
	samples embed.FS
)

type Entry struct {
	ID          string   `yaml:"-" json:"id"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Steps       []string `yaml:"steps" json:"steps"`
	Time        string   `yaml:"time" json:"time_complexity"`
	Space       string   `yaml:"space" json:"space_complexity"`
	BigO        string   `yaml:"big_o" json:"big_o"`
}

// Language is a code sample language and the file extension its samples
// are stored under.
type Language struct {
	Name  string
	Ext   string
	Lexer string
}

var Languages = []Language{
	{Name: "python", Ext: ".py", Lexer: "python"},
	{Name: "javascript", Ext: ".js", Lexer: "javascript"},
	{Name: "java", Ext: ".java", Lexer: "java"},
	{Name: "go", Ext: ".go.txt", Lexer: "go"},
}

func language(name string) (Language, error) {
	for _, l := range Languages {
		if l.Name == name {
			return l, nil
		}
	}
	return Language{}, fmt.Errorf("%w: %s", ErrUnknownLanguage, name)
}

type Catalog struct {
	entries map[string]Entry
	samples fs.FS
}

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	return parse(catalogYAML, samples)
}

// MustLoad is Load for package initialisation paths where the embedded data
// is known to be valid.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

func parse(data []byte, files fs.FS) (*Catalog, error) {
	entries := make(map[string]Entry)
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("catalog: parse: %w", err)
	}
	if _, ok := entries[Fallback]; !ok {
		return nil, fmt.Errorf("catalog: missing %s entry", Fallback)
	}
	for id, e := range entries {
		e.ID = id
		entries[id] = e
	}
	return &Catalog{entries: entries, samples: files}, nil
}

// Find returns the entry for id, if there is one.
func (c *Catalog) Find(id string) (Entry, bool) {
	e, ok := c.entries[id]
	return e, ok
}

// Lookup returns the entry for id, falling back to bubble sort.
func (c *Catalog) Lookup(id string) Entry {
	if e, ok := c.entries[id]; ok {
		return e
	}
	return c.entries[Fallback]
}

// Complexity is the headline big-O shown in the stats panel.
func (c *Catalog) Complexity(id string) string {
	if e, ok := c.entries[id]; ok && e.BigO != "" {
		return e.BigO
	}
	return "O(n²)"
}

func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.entries))
	for id := range c.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Sample returns the code sample for id in lang. Algorithms without a
// sample in that language get the bubble sort one.
func (c *Catalog) Sample(id, lang string) (string, error) {
	l, err := language(lang)
	if err != nil {
		return "", err
	}
	for _, name := range []string{id, Fallback} {
		b, err := fs.ReadFile(c.samples, "samples/"+name+l.Ext)
		if err == nil {
			return string(b), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
	}
	return "", fmt.Errorf("catalog: no %s sample", lang)
}

// Highlight renders code for a terminal using chroma.
func Highlight(code, lang, style string) (string, error) {
	l, err := language(lang)
	if err != nil {
		return "", err
	}
	if style == "" {
		style = "monokai"
	}
	var b strings.Builder
	if err := quick.Highlight(&b, code, l.Lexer, "terminal256", style); err != nil {
		return "", fmt.Errorf("catalog: highlight: %w", err)
	}
	return b.String(), nil
}

// Explain formats an entry as plain text.
func Explain(e Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n%s\n\n", e.Title, e.Description)
	for i, s := range e.Steps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, s)
	}
	fmt.Fprintf(&b, "\nTime Complexity:  %s\nSpace Complexity: %s\n", e.Time, e.Space)
	return b.String()
}
