// Package detector tags text with its natural language.
package detector

import (
	"fmt"
	"strings"

	"github.com/pemistahl/lingua-go"
)

// Unknown is reported when no language could be decided.
const Unknown = "unknown"

// Detector guesses the language of a piece of text.
type Detector interface {
	Detect(text string) string
}

// Lingua is a Detector backed by lingua-go, restricted to a fixed set of
// candidate languages.
type Lingua struct {
	detector lingua.LanguageDetector
}

// NewLingua builds a detector over the named languages ("English",
// "german", ...). lingua needs at least two candidates.
func NewLingua(names []string) (*Lingua, error) {
	langs, err := resolveLanguages(names)
	if err != nil {
		return nil, err
	}
	if len(langs) < 2 {
		return nil, fmt.Errorf("language detection needs at least 2 languages, got %d", len(langs))
	}

	return &Lingua{
		detector: lingua.NewLanguageDetectorBuilder().FromLanguages(langs...).Build(),
	}, nil
}

// Detect returns the lower-case language name, or Unknown.
func (l *Lingua) Detect(text string) string {
	if strings.TrimSpace(text) == "" {
		return Unknown
	}
	lang, ok := l.detector.DetectLanguageOf(text)
	if !ok {
		return Unknown
	}
	return strings.ToLower(lang.String())
}

func resolveLanguages(names []string) ([]lingua.Language, error) {
	byName := make(map[string]lingua.Language)
	for _, lang := range lingua.AllLanguages() {
		byName[strings.ToLower(lang.String())] = lang
	}

	seen := make(map[lingua.Language]struct{})
	var langs []lingua.Language
	for _, name := range names {
		lang, ok := byName[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("unknown language %q", name)
		}
		if _, dup := seen[lang]; dup {
			continue
		}
		seen[lang] = struct{}{}
		langs = append(langs, lang)
	}
	return langs, nil
}
