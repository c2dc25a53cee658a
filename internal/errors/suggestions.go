package errors

import (
	"strings"

	"golang.org/x/text/cases"
)

// ErrorSuggestion represents a suggestion for fixing an error
type ErrorSuggestion struct {
	Title       string
	Description string
	Command     string
}

// normalizeTagName folds case and drops hyphens so that the kebab-case and
// PascalCase spellings of a tag compare equal.
func normalizeTagName(name string) string {
	return cases.Fold().String(strings.ReplaceAll(name, "-", ""))
}

// SimilarTagNames returns the known names a mistyped name probably meant, in
// the order of known. Names equal after case and hyphen folding come first,
// then names that contain or are contained in the query.
func SimilarTagNames(name string, known []string) []string {
	query := normalizeTagName(name)
	if query == "" {
		return nil
	}

	var exact, partial []string
	for _, candidate := range known {
		if candidate == name {
			continue
		}
		normalized := normalizeTagName(candidate)
		switch {
		case normalized == query:
			exact = append(exact, candidate)
		case strings.Contains(normalized, query) || strings.Contains(query, normalized):
			partial = append(partial, candidate)
		}
	}

	return append(exact, partial...)
}

// TagNotFoundSuggestions generates suggestions for an unknown tag name
func TagNotFoundSuggestions(name string, known []string) []ErrorSuggestion {
	var suggestions []ErrorSuggestion

	for _, similar := range SimilarTagNames(name, known) {
		suggestions = append(suggestions, ErrorSuggestion{
			Title:       "Did you mean '" + similar + "'?",
			Description: "Tag names are matched exactly, including case",
			Command:     "tagdata show " + similar,
		})
	}

	suggestions = append(suggestions, ErrorSuggestion{
		Title:       "List all known tags",
		Description: "Known tags: " + strings.Join(known, ", "),
		Command:     "tagdata list",
	})

	return suggestions
}

// FormatSuggestions renders suggestions as an indented block for terminals
func FormatSuggestions(title string, suggestions []ErrorSuggestion) string {
	var b strings.Builder

	b.WriteString(title)
	b.WriteString("\n")
	for _, s := range suggestions {
		b.WriteString("\n  • ")
		b.WriteString(s.Title)
		if s.Description != "" {
			b.WriteString("\n    ")
			b.WriteString(s.Description)
		}
		if s.Command != "" {
			b.WriteString("\n    $ ")
			b.WriteString(s.Command)
		}
	}
	b.WriteString("\n")

	return b.String()
}
