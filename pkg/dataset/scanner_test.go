package dataset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectRecords(t *testing.T, input string, onSkip SkipFunc) []*Record {
	t.Helper()

	scanner := NewScanner(strings.NewReader(input), onSkip)
	var records []*Record
	for record := scanner.Next(); record != nil; record = scanner.Next() {
		records = append(records, record)
	}
	require.NoError(t, scanner.Err())
	return records
}

func TestScanner_WellFormedLines(t *testing.T) {
	input := `{"contents":[{"parts":[{"text":"one"}]}]}
{"contents":[{"parts":[{"text":"two"}]}]}
{"contents":[{"parts":[{"text":"three"}]}]}`

	records := collectRecords(t, input, nil)
	assert.Len(t, records, 3)
	assert.Equal(t, []string{"two"}, records[1].Texts())
}

func TestScanner_SkipsBlankLines(t *testing.T) {
	input := "\n{\"contents\":[{\"parts\":[{\"text\":\"hi\"}]}]}\n   \n\n"

	skips := 0
	records := collectRecords(t, input, func(ordinal int, err error) { skips++ })

	assert.Len(t, records, 1)
	assert.Equal(t, 0, skips, "blank lines must not be reported as skips")
}

func TestScanner_InvalidJSONIsRecoverable(t *testing.T) {
	input := `{"contents":[{"parts":[{"text":"one"}]}]}
not json at all
{"contents":[{"parts":[{"text":"two"}]}]}`

	var skippedOrdinals []int
	records := collectRecords(t, input, func(ordinal int, err error) {
		assert.Error(t, err)
		skippedOrdinals = append(skippedOrdinals, ordinal)
	})

	assert.Len(t, records, 2, "lines after a malformed line must still be processed")
	// The malformed line is reported at the position it would have held
	// among decoded records, matching the counter-based numbering.
	assert.Equal(t, []int{2}, skippedOrdinals)
}

func TestScanner_Decoded(t *testing.T) {
	input := `{"contents":[]}
bad
{"contents":[]}`

	scanner := NewScanner(strings.NewReader(input), nil)
	for record := scanner.Next(); record != nil; record = scanner.Next() {
	}

	assert.Equal(t, 2, scanner.Decoded())
}

func TestScanner_LongLine(t *testing.T) {
	// Well beyond the bufio default buffer size
	text := strings.Repeat("a", 256*1024)
	input := `{"contents":[{"parts":[{"text":"` + text + `"}]}]}`

	records := collectRecords(t, input, nil)
	require.Len(t, records, 1)
	assert.Equal(t, []string{text}, records[0].Texts())
}
