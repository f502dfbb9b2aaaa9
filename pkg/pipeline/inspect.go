package pipeline

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/montanaflynn/stats"

	"github.com/matzehuels/strprof/pkg/corpus"
	"github.com/matzehuels/strprof/pkg/errors"
	"github.com/matzehuels/strprof/pkg/preamble"
)

// maxLineSize bounds a single corpus string read by Inspect.
const maxLineSize = 64 << 20

// Inspect reads a generated corpus from r and measures its string lengths.
// A leading preamble line is parsed and reported as Declared. Any character
// outside the generator alphabet is a MALFORMED_DATA error naming the line.
// Lines may end in CRLF.
func (r *Runner) Inspect(ctx context.Context, rd io.Reader) (*InspectResult, error) {
	res := &InspectResult{}
	var lengths stats.Float64Data

	sc := bufio.NewScanner(rd)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		if lineNo%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		line := strings.TrimSuffix(sc.Text(), "\r")
		if lineNo == 1 && preamble.IsPreamble(line) {
			declared, err := preamble.Parse(line)
			if err != nil {
				return nil, err
			}
			res.Declared = &declared
			continue
		}
		if !corpus.InAlphabet(line) {
			return nil, errors.New(errors.ErrCodeMalformedData,
				"line %d: contains characters outside the generator alphabet", lineNo)
		}
		lengths = append(lengths, float64(len(line)))
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedData, err, "read corpus")
	}

	res.Lines = len(lengths)
	if res.Lines > 0 {
		// Errors only arise for empty input, excluded above.
		res.Mean, _ = lengths.Mean()
		res.Variance, _ = lengths.PopulationVariance()
		lo, _ := lengths.Min()
		hi, _ := lengths.Max()
		res.MinLen, res.MaxLen = int(lo), int(hi)
	}

	r.Logger.Debug("inspected corpus",
		"lines", res.Lines,
		"mean", res.Mean,
		"variance", res.Variance,
		"preamble", res.Declared != nil)
	return res, nil
}
