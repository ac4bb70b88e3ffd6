package lawrunner

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned by Encode for an unsupported report format.
var ErrUnknownFormat = errors.New("unknown report format")

// Report is the outcome of a law run.
type Report struct {
	RunID   string        `json:"run_id" yaml:"run_id"`
	Seed    int64         `json:"seed" yaml:"seed"`
	Started time.Time     `json:"started" yaml:"started"`
	Elapsed string        `json:"elapsed" yaml:"elapsed"`
	Passed  bool          `json:"passed" yaml:"passed"`
	Suites  []SuiteResult `json:"suites" yaml:"suites"`
}

// SuiteResult is the outcome of one law suite.
type SuiteResult struct {
	Name    string      `json:"name" yaml:"name"`
	Passed  bool        `json:"passed" yaml:"passed"`
	Elapsed string      `json:"elapsed" yaml:"elapsed"`
	Laws    []LawResult `json:"laws" yaml:"laws"`
}

// LawResult is the outcome of one law property. Args holds the shrunk
// counterexample of a failed law.
type LawResult struct {
	Name      string   `json:"name" yaml:"name"`
	Status    string   `json:"status" yaml:"status"`
	Passed    bool     `json:"passed" yaml:"passed"`
	Succeeded int      `json:"succeeded" yaml:"succeeded"`
	Discarded int      `json:"discarded,omitempty" yaml:"discarded,omitempty"`
	Error     string   `json:"error,omitempty" yaml:"error,omitempty"`
	Args      []string `json:"args,omitempty" yaml:"args,omitempty"`
}

// LawCount returns the number of laws checked.
func (r *Report) LawCount() int {
	n := 0
	for _, s := range r.Suites {
		n += len(s.Laws)
	}
	return n
}

// Failed returns the laws that did not hold, named "Suite/law".
func (r *Report) Failed() []string {
	var failed []string
	for _, s := range r.Suites {
		for _, l := range s.Laws {
			if !l.Passed {
				failed = append(failed, s.Name+"/"+l.Name)
			}
		}
	}
	return failed
}

// Encode writes the report to w as text, json or yaml.
func (r *Report) Encode(w io.Writer, format string) error {
	switch format {
	case "text":
		return r.encodeText(w)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func (r *Report) encodeText(w io.Writer) error {
	ew := &errWriter{w: w}
	ew.printf("run %s seed %d elapsed %s\n", r.RunID, r.Seed, r.Elapsed)
	for _, s := range r.Suites {
		ew.printf("%s %s (%s)\n", mark(s.Passed), s.Name, s.Elapsed)
		for _, l := range s.Laws {
			ew.printf("    %s %s: %s after %d tests", mark(l.Passed), l.Name, l.Status, l.Succeeded)
			if l.Error != "" {
				ew.printf(": %s", l.Error)
			}
			if len(l.Args) > 0 {
				ew.printf(" with %v", l.Args)
			}
			ew.printf("\n")
		}
	}
	if r.Passed {
		ew.printf("OK: %d laws hold\n", r.LawCount())
	} else {
		ew.printf("FAILED: %d of %d laws\n", len(r.Failed()), r.LawCount())
	}
	return ew.err
}

func mark(passed bool) string {
	if passed {
		return "+"
	}
	return "!"
}

// errWriter keeps the first write error and skips later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
