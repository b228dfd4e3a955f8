package dataset

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"
)

// maxLineBytes bounds a single dataset line. Tuning examples routinely carry
// long documents, so the bufio default of 64K is far too small.
const maxLineBytes = 16 * 1024 * 1024

// SkipFunc is called when a malformed line is skipped. The ordinal is the
// 1-based position the record would have held among decoded records.
type SkipFunc func(ordinal int, err error)

// Scanner iterates the records of a JSONL dataset. Blank lines are skipped
// silently; lines that fail to decode are reported through the skip callback
// and do not stop iteration.
type Scanner struct {
	scanner *bufio.Scanner
	decoded int
	onSkip  SkipFunc
}

// NewScanner creates a scanner over r. onSkip may be nil.
func NewScanner(r io.Reader, onSkip SkipFunc) *Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &Scanner{
		scanner: sc,
		onSkip:  onSkip,
	}
}

// Next returns the next successfully decoded record, or nil when the input
// is exhausted. Check Err after a nil return.
func (s *Scanner) Next() *Record {
	for s.scanner.Scan() {
		line := strings.TrimSpace(s.scanner.Text())
		if line == "" {
			continue
		}

		var record Record
		if err := json.Unmarshal([]byte(line), &record); err != nil {
			if s.onSkip != nil {
				s.onSkip(s.decoded+1, err)
			}
			continue
		}

		s.decoded++
		return &record
	}
	return nil
}

// Decoded returns the number of records decoded so far.
func (s *Scanner) Decoded() int {
	return s.decoded
}

// Err returns the first error encountered while reading the input.
func (s *Scanner) Err() error {
	return s.scanner.Err()
}
