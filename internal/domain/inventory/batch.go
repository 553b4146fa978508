package inventory

import (
	"bufio"
	"io"
	"regexp"
	"strings"
)

const maxCodeLen = 64

var codePattern = regexp.MustCompile(`^[A-Za-z0-9-]+$`)

// Entry is one code offered for import.
type Entry struct {
	Code   string `json:"code"`
	Serial string `json:"serial,omitempty"`
}

type Rejected struct {
	Code   string `json:"code"`
	Reason string `json:"reason"`
}

// BulkAddReport describes a partial import: rejected entries never fail the batch.
type BulkAddReport struct {
	Added      int        `json:"added"`
	Duplicates []string   `json:"duplicates"`
	Invalid    []Rejected `json:"invalid"`
}

// Prepare trims and validates a batch. Entries repeating an earlier code in the same
// batch are reported as duplicates so only the first occurrence is stored.
func Prepare(entries []Entry) (valid []Entry, report BulkAddReport) {
	seen := make(map[string]struct{}, len(entries))
	report.Duplicates = []string{}
	report.Invalid = []Rejected{}
	for _, e := range entries {
		e.Code = strings.TrimSpace(e.Code)
		e.Serial = strings.TrimSpace(e.Serial)
		switch {
		case e.Code == "":
			report.Invalid = append(report.Invalid, Rejected{Code: e.Code, Reason: "empty code"})
			continue
		case len(e.Code) > maxCodeLen:
			report.Invalid = append(report.Invalid, Rejected{Code: e.Code, Reason: "code too long"})
			continue
		case !codePattern.MatchString(e.Code):
			report.Invalid = append(report.Invalid, Rejected{Code: e.Code, Reason: "code has invalid characters"})
			continue
		}
		if _, dup := seen[e.Code]; dup {
			report.Duplicates = append(report.Duplicates, e.Code)
			continue
		}
		seen[e.Code] = struct{}{}
		valid = append(valid, e)
	}
	return valid, report
}

// ParseLines reads "code[,serial]" lines; blank lines and lines starting with # are skipped.
func ParseLines(r io.Reader) ([]Entry, error) {
	var entries []Entry
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		code, serial, _ := strings.Cut(line, ",")
		entries = append(entries, Entry{Code: strings.TrimSpace(code), Serial: strings.TrimSpace(serial)})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
