// Package prompt builds the instruction prompts sent to the generative API.
//
// Templates live in a versioned YAML artifact; each template carries exactly
// one {{text}} substitution slot. The default artifact is embedded in the
// binary and can be overridden per deployment via PROMPT_TEMPLATES_FILE.
package prompt

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// MaxTextChars caps how much extracted document text is embedded in any
// prompt. Counted in Unicode code points; truncation never splits a rune.
const MaxTextChars = 30000

// Slot is the placeholder every template must contain exactly once.
const Slot = "{{text}}"

// Template names the service relies on.
const (
	TemplateMindmap   = "mindmap"
	TemplateQuestions = "questions"
)

//go:embed templates.yaml
var defaultArtifact []byte

// artifact is the on-disk shape of the template file.
type artifact struct {
	Version   int               `yaml:"version"`
	Templates map[string]string `yaml:"templates"`
}

// Library holds the validated templates of one artifact.
type Library struct {
	version   int
	templates map[string]string
}

// Load builds a Library from the artifact at path, or from the embedded
// default when path is empty. Validation failures abort startup.
func Load(path string) (*Library, error) {
	if path == "" {
		return parse(defaultArtifact)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read templates: %w", err)
	}
	return parse(raw)
}

func parse(raw []byte) (*Library, error) {
	var a artifact
	if err := yaml.Unmarshal(raw, &a); err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	if a.Version <= 0 {
		return nil, errors.New("templates artifact: version is required")
	}
	if len(a.Templates) == 0 {
		return nil, errors.New("templates artifact: no templates defined")
	}
	for name, body := range a.Templates {
		if strings.Count(body, Slot) != 1 {
			return nil, fmt.Errorf("template %q: must contain the %s slot exactly once", name, Slot)
		}
	}
	for _, name := range []string{TemplateMindmap, TemplateQuestions} {
		if _, ok := a.Templates[name]; !ok {
			return nil, fmt.Errorf("templates artifact: missing template %q", name)
		}
	}
	return &Library{version: a.Version, templates: a.Templates}, nil
}

// Version reports the artifact version for startup logs.
func (l *Library) Version() int { return l.version }

// Build renders the named template with text substituted into its slot.
// Text beyond MaxTextChars is cut to exactly the first MaxTextChars
// characters and truncated reports that it happened; truncation is a notice
// for the caller, never an error. The same template and text always produce
// the same prompt.
func (l *Library) Build(name, text string) (prompt string, truncated bool, err error) {
	body, ok := l.templates[name]
	if !ok {
		return "", false, fmt.Errorf("unknown template %q", name)
	}
	text, truncated = Truncate(text)
	return strings.Replace(body, Slot, text, 1), truncated, nil
}

// Truncate enforces MaxTextChars on text, counting code points.
func Truncate(text string) (string, bool) {
	if utf8.RuneCountInString(text) <= MaxTextChars {
		return text, false
	}
	runes := []rune(text)
	return string(runes[:MaxTextChars]), true
}
