// Package header validates the license header expected at the top of
// source files: an SPDX identifier on line 1, a copyright notice on
// line 3, and an author line on line 5, with blank comment separators
// between them. The separator lines are not inspected.
package header

import (
	"bufio"
	"os"
	"regexp"
	"slices"
)

// Outcome is the result of validating one file's header.
type Outcome struct {
	OK     bool
	Reason string
}

// Pass returns a passing Outcome.
func Pass() Outcome {
	return Outcome{OK: true}
}

// Fail returns a failing Outcome with the given reason.
func Fail(reason string) Outcome {
	return Outcome{Reason: reason}
}

// Rule ties a line index to the pattern that line must satisfy.
type Rule struct {
	// Line is the zero-based line index the rule applies to.
	Line int
	// Reason is reported when the rule does not match.
	Reason string
	// Match reports whether the line satisfies the rule.
	Match func(line string) bool
}

var (
	copyrightRe = regexp.MustCompile(`^//\s*Copyright`)
	authorRe    = regexp.MustCompile(`^//\s*Author:`)
)

// Rules returns the header grammar for the given accepted license lines.
// Rules are ordered; the first mismatch determines the reported reason.
func Rules(licenses []string) []Rule {
	return []Rule{
		{
			Line:   0,
			Reason: "header format incorrect",
			Match: func(line string) bool {
				return slices.Contains(licenses, line)
			},
		},
		{
			Line:   2,
			Reason: "copyright line missing or malformed",
			Match:  copyrightRe.MatchString,
		},
		{
			Line:   4,
			Reason: "author line missing or malformed",
			Match:  authorRe.MatchString,
		},
	}
}

// Validator checks file headers against a fixed rule list.
type Validator struct {
	rules []Rule
	// lines is how many leading lines the rules reach
	lines int
}

// NewValidator creates a Validator accepting the given license lines.
func NewValidator(licenses []string) *Validator {
	return New(Rules(licenses))
}

// New creates a Validator from an explicit rule list.
func New(rules []Rule) *Validator {
	lines := 0
	for _, r := range rules {
		if r.Line+1 > lines {
			lines = r.Line + 1
		}
	}
	return &Validator{rules: rules, lines: lines}
}

// Validate checks the given leading lines against the rules. Lines the
// file does not have are treated as empty strings, so a too-short file
// fails whichever rule first reaches past its end.
func (v *Validator) Validate(lines []string) Outcome {
	for _, rule := range v.rules {
		line := ""
		if rule.Line < len(lines) {
			line = lines[rule.Line]
		}
		if !rule.Match(line) {
			return Fail(rule.Reason)
		}
	}
	return Pass()
}

// ValidateFile reads the leading lines of the file at path and validates
// them. An unreadable file fails closed rather than being skipped.
func (v *Validator) ValidateFile(path string) Outcome {
	lines, err := v.headLines(path)
	if err != nil {
		return Fail("unreadable")
	}
	return v.Validate(lines)
}

// headLines reads up to v.lines leading lines from the file.
func (v *Validator) headLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for len(lines) < v.lines && scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
