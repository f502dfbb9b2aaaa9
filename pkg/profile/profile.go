package profile

import (
	"encoding/csv"
	stderrors "errors"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/strprof/pkg/errors"
)

// ClocksPerSec is the tick rate of the C clock() timings the profiling
// drivers write. Divide dependent series by it to get seconds.
const ClocksPerSec = 1_000_000

// Data is a parsed profile: labelled, equally long numeric series stored
// column-major. Series 0 is the independent variable; the remaining series
// are dependent variables aligned with it by row index.
//
// Data is immutable. Accessors return copies.
type Data struct {
	labels []string
	series [][]float64
}

// ParseString parses CSV text. See [Parse].
func ParseString(s string) (*Data, error) {
	return Parse(strings.NewReader(s))
}

// Parse reads CSV from r. The first non-empty row is the header; every other
// non-empty row must have one numeric field per header label. Blank lines are
// skipped. A header without data rows yields empty series.
func Parse(r io.Reader) (*Data, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = false

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New(errors.ErrCodeMalformedData, "missing header row")
	}
	if err != nil {
		return nil, malformed(err)
	}
	if len(header) == 0 {
		return nil, errors.New(errors.ErrCodeMalformedData, "empty header row")
	}

	d := &Data{
		labels: slices.Clone(header),
		series: make([][]float64, len(header)),
	}
	for i := range d.series {
		d.series[i] = []float64{}
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, malformed(err)
		}
		line, _ := reader.FieldPos(0)

		if len(record) != len(header) {
			return nil, errors.New(errors.ErrCodeMalformedData,
				"line %d: got %d fields, header has %d", line, len(record), len(header))
		}
		for i, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, errors.New(errors.ErrCodeMalformedData,
					"line %d: %s value %q is not a number", line, header[i], field)
			}
			d.series[i] = append(d.series[i], v)
		}
	}
	return d, nil
}

func malformed(err error) error {
	var pe *csv.ParseError
	if stderrors.As(err, &pe) {
		return errors.Wrap(errors.ErrCodeMalformedData, pe.Err, "line %d, column %d", pe.Line, pe.Column)
	}
	return errors.Wrap(errors.ErrCodeMalformedData, err, "read csv")
}

// NSeries returns the number of series, independent variable included.
func (d *Data) NSeries() int { return len(d.labels) }

// Rows returns the number of data rows.
func (d *Data) Rows() int {
	if len(d.series) == 0 {
		return 0
	}
	return len(d.series[0])
}

// Labels returns all labels in column order.
func (d *Data) Labels() []string { return slices.Clone(d.labels) }

// IndependentLabel returns the label of series 0.
func (d *Data) IndependentLabel() string { return d.labels[0] }

// DependentLabels returns the labels of series 1..n-1 in column order.
func (d *Data) DependentLabels() []string { return slices.Clone(d.labels[1:]) }

// Independent returns series 0.
func (d *Data) Independent() []float64 { return slices.Clone(d.series[0]) }

// Dependent returns series 1..n-1 in column order, positionally matching
// [Data.DependentLabels].
func (d *Data) Dependent() [][]float64 {
	out := make([][]float64, 0, len(d.series)-1)
	for _, s := range d.series[1:] {
		out = append(out, slices.Clone(s))
	}
	return out
}

// ScaleDependent returns a copy of d with every dependent value divided by
// factor, e.g. [ClocksPerSec] to turn clock ticks into seconds.
func (d *Data) ScaleDependent(factor float64) (*Data, error) {
	if !(factor > 0) {
		return nil, errors.New(errors.ErrCodeInvalidParameter, "scale factor must be positive, got %v", factor)
	}
	out := &Data{
		labels: slices.Clone(d.labels),
		series: make([][]float64, len(d.series)),
	}
	out.series[0] = slices.Clone(d.series[0])
	for i := 1; i < len(d.series); i++ {
		scaled := make([]float64, len(d.series[i]))
		for j, v := range d.series[i] {
			scaled[j] = v / factor
		}
		out.series[i] = scaled
	}
	return out, nil
}
