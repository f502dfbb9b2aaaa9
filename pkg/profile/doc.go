// Package profile parses CSV timing output into aligned numeric series.
//
// The profiling drivers print one CSV row per measurement: the first column
// is the independent variable (block size, string count, ...) and every
// other column is a timing for one container implementation. [Parse] turns
// that text into a [Data] value whose series are stored column-major so all
// values of one variable are contiguous and ready to plot:
//
//	d, err := profile.Parse(f)
//	if err != nil {
//	    return err // MALFORMED_DATA
//	}
//	for i, ys := range d.Dependent() {
//	    plotLine(d.DependentLabels()[i], d.Independent(), ys)
//	}
//
// Ragged rows, non-numeric fields and missing headers are rejected with
// MALFORMED_DATA errors; nothing is coerced.
package profile
