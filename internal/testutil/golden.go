// Package testutil loads txtar golden cases for caseconv tests.
package testutil

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
)

// Case is one golden archive: a list of identifiers and, per target case,
// the expected conversion of each one.
type Case struct {
	// Name is the archive file name without the .txtar extension.
	Name string

	// Description is the archive comment.
	Description string

	// Source is taken from the "Source: ..." line of the description. It names
	// a case ("camel", "snake", "kebab") or a mode ("guess", "jumbled").
	Source string

	// Inputs are the lines of the "input" file.
	Inputs []string

	// Want maps a target case name to the expected lines of "want/<target>".
	Want map[string][]string
}

// ParseCase builds a Case from an archive holding an "input" file and one
// or more "want/<target>" files, each with one identifier per line.
func ParseCase(name string, ar *txtar.Archive) (*Case, error) {
	c := &Case{
		Name:        name,
		Description: string(ar.Comment),
		Want:        make(map[string][]string),
	}
	c.Source = directive(c.Description, "Source:")
	if c.Source == "" {
		return nil, fmt.Errorf("missing Source: line in archive comment")
	}

	for _, f := range ar.Files {
		switch {
		case f.Name == "input":
			c.Inputs = lines(f.Data)
		case strings.HasPrefix(f.Name, "want/"):
			c.Want[strings.TrimPrefix(f.Name, "want/")] = lines(f.Data)
		default:
			return nil, fmt.Errorf("unexpected file in archive: %q (expected input or want/*)", f.Name)
		}
	}

	if c.Inputs == nil {
		return nil, fmt.Errorf("missing input in archive")
	}
	if len(c.Want) == 0 {
		return nil, fmt.Errorf("missing want/* files in archive")
	}
	for target, want := range c.Want {
		if len(want) != len(c.Inputs) {
			return nil, fmt.Errorf("want/%s has %d lines, input has %d", target, len(want), len(c.Inputs))
		}
	}
	return c, nil
}

// ConvertFunc converts one identifier from source to the named target case.
type ConvertFunc func(source, target, input string) (string, error)

// Run converts every input to every target and reports mismatches.
func (c *Case) Run(t *testing.T, convert ConvertFunc) {
	t.Helper()

	targets := make([]string, 0, len(c.Want))
	for target := range c.Want {
		targets = append(targets, target)
	}
	slices.Sort(targets)

	for _, target := range targets {
		t.Run(target, func(t *testing.T) {
			got := make([]string, 0, len(c.Inputs))
			for _, input := range c.Inputs {
				out, err := convert(c.Source, target, input)
				if err != nil {
					t.Fatalf("convert %q from %s to %s: %v", input, c.Source, target, err)
				}
				got = append(got, out)
			}
			if diff := cmp.Diff(c.Want[target], got); diff != "" {
				t.Errorf("%s: %s -> %s mismatch (-want +got):\n%s", c.Name, c.Source, target, diff)
			}
		})
	}
}

// LoadCases loads every *.txtar archive in dir, sorted by name.
func LoadCases(t *testing.T, dir string) []*Case {
	t.Helper()

	pattern := filepath.Join(dir, "*.txtar")
	files, err := filepath.Glob(pattern)
	if err != nil {
		t.Fatalf("glob %q: %v", pattern, err)
	}
	if len(files) == 0 {
		t.Fatalf("no txtar files found in %q", dir)
	}

	cases := make([]*Case, 0, len(files))
	for _, file := range files {
		ar, err := txtar.ParseFile(file)
		if err != nil {
			t.Fatalf("parse %q: %v", file, err)
		}
		name := strings.TrimSuffix(filepath.Base(file), ".txtar")
		c, err := ParseCase(name, ar)
		if err != nil {
			t.Fatalf("parse case %q: %v", name, err)
		}
		cases = append(cases, c)
	}

	slices.SortFunc(cases, func(a, b *Case) int { return strings.Compare(a.Name, b.Name) })
	return cases
}

// directive returns the trimmed value of the first line starting with prefix.
func directive(text, prefix string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if v, ok := strings.CutPrefix(line, prefix); ok {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// lines splits data into lines, dropping the final newline and any
// carriage returns.
func lines(data []byte) []string {
	s := strings.TrimRight(strings.ReplaceAll(string(data), "\r", ""), "\n")
	if s == "" {
		return []string{}
	}
	return strings.Split(s, "\n")
}
