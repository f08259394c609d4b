package fs

import (
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/stylekit/internal/core/domain"
	"go.trai.ch/stylekit/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.InputResolver = (*Resolver)(nil)

// Resolver implements the InputResolver interface using filepath.Glob
// extended with {a,b} alternation.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// ResolveInputs resolves the given patterns to a sorted, de-duplicated list
// of files. Each pattern must match at least one file; for a pattern with
// alternatives it is enough that one alternative matches.
func (r *Resolver) ResolveInputs(patterns []string, root string) ([]string, error) {
	uniquePaths := make(map[string]struct{})

	for _, pattern := range patterns {
		expanded, err := expandBraces(pattern)
		if err != nil {
			return nil, zerr.With(err, "pattern", pattern)
		}

		matched := 0
		for _, alt := range expanded {
			path := alt
			if root != "" && !filepath.IsAbs(alt) {
				path = filepath.Join(root, alt)
			}

			matches, err := filepath.Glob(path)
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidPattern.Error()), "pattern", pattern)
			}
			for _, match := range matches {
				uniquePaths[match] = struct{}{}
			}
			matched += len(matches)
		}

		if matched == 0 {
			return nil, zerr.With(domain.ErrInputNotFound, "pattern", pattern)
		}
	}

	result := make([]string, 0, len(uniquePaths))
	for path := range uniquePaths {
		result = append(result, path)
	}
	slices.Sort(result)

	return result, nil
}

// expandBraces expands the {a,b} groups of pattern, including nested ones.
// A pattern without braces expands to itself.
func expandBraces(pattern string) ([]string, error) {
	open := strings.IndexByte(pattern, '{')
	if open < 0 {
		if strings.IndexByte(pattern, '}') >= 0 {
			return nil, zerr.With(domain.ErrInvalidPattern, "reason", "unbalanced '}'")
		}
		return []string{pattern}, nil
	}

	closing, alternatives := -1, []string{}
	depth, start := 0, open+1
	for i := open + 1; i < len(pattern) && closing < 0; i++ {
		switch pattern[i] {
		case '{':
			depth++
		case '}':
			if depth == 0 {
				alternatives = append(alternatives, pattern[start:i])
				closing = i
			} else {
				depth--
			}
		case ',':
			if depth == 0 {
				alternatives = append(alternatives, pattern[start:i])
				start = i + 1
			}
		}
	}
	if closing < 0 {
		return nil, zerr.With(domain.ErrInvalidPattern, "reason", "unbalanced '{'")
	}

	prefix, suffix := pattern[:open], pattern[closing+1:]

	var result []string
	for _, alt := range alternatives {
		expanded, err := expandBraces(prefix + alt + suffix)
		if err != nil {
			return nil, err
		}
		for _, e := range expanded {
			if !slices.Contains(result, e) {
				result = append(result, e)
			}
		}
	}
	return result, nil
}
