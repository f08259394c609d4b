package stylelint

import (
	"bytes"
	"encoding/json"

	"go.trai.ch/stylekit/internal/core/domain"
	"go.trai.ch/zerr"
)

// decodeResults decodes the JSON formatter output. Depending on the
// stylelint version it is printed on stdout or on stderr, so both are tried.
// The stream may carry other lines, such as Node deprecation warnings, so
// the array is looked for at every line start.
func decodeResults(streams ...[]byte) ([]domain.FileResult, error) {
	var lastErr error
	for _, data := range streams {
		for _, start := range arrayStarts(data) {
			var results []domain.FileResult
			if err := json.NewDecoder(bytes.NewReader(data[start:])).Decode(&results); err != nil {
				lastErr = err
				continue
			}
			return results, nil
		}
	}

	if lastErr != nil {
		return nil, zerr.Wrap(lastErr, domain.ErrLinterOutputInvalid.Error())
	}
	return nil, zerr.With(domain.ErrLinterOutputInvalid, "reason", "no JSON output")
}

// arrayStarts returns the offsets of '[' that open a line, ignoring
// leading blanks.
func arrayStarts(data []byte) []int {
	var starts []int
	for offset := 0; offset < len(data); {
		line := data[offset:]
		if end := bytes.IndexByte(line, '\n'); end >= 0 {
			line = line[:end+1]
		}
		trimmed := bytes.TrimLeft(line, " \t\r")
		if len(trimmed) > 0 && trimmed[0] == '[' {
			starts = append(starts, offset+len(line)-len(trimmed))
		}
		offset += len(line)
	}
	return starts
}
