package profile

import (
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/strprof/pkg/errors"
)

const sample = `block_size,stringv,array
1,10,12
2,20,22

3,30,35
4,40,41
`

func TestParse(t *testing.T) {
	d, err := ParseString(sample)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if d.NSeries() != 3 {
		t.Errorf("NSeries() = %d, want 3", d.NSeries())
	}
	if d.Rows() != 4 {
		t.Errorf("Rows() = %d, want 4", d.Rows())
	}
	if d.IndependentLabel() != "block_size" {
		t.Errorf("IndependentLabel() = %q, want block_size", d.IndependentLabel())
	}
	assertStrings(t, "DependentLabels()", d.DependentLabels(), []string{"stringv", "array"})
	assertStrings(t, "Labels()", d.Labels(), []string{"block_size", "stringv", "array"})
	assertFloats(t, "Independent()", d.Independent(), []float64{1, 2, 3, 4})

	dep := d.Dependent()
	if len(dep) != 2 {
		t.Fatalf("len(Dependent()) = %d, want 2", len(dep))
	}
	assertFloats(t, "Dependent()[0]", dep[0], []float64{10, 20, 30, 40})
	assertFloats(t, "Dependent()[1]", dep[1], []float64{12, 22, 35, 41})
}

func TestParseHeaderOnly(t *testing.T) {
	d, err := ParseString("x,a,b\n")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if d.NSeries() != 3 || d.Rows() != 0 {
		t.Errorf("NSeries() = %d, Rows() = %d; want 3, 0", d.NSeries(), d.Rows())
	}
	if got := d.Independent(); len(got) != 0 {
		t.Errorf("Independent() = %v, want empty", got)
	}
	for i, s := range d.Dependent() {
		if len(s) != 0 {
			t.Errorf("Dependent()[%d] = %v, want empty", i, s)
		}
	}
}

func TestParseSingleColumn(t *testing.T) {
	d, err := ParseString("n\n1\n2\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Dependent()) != 0 || len(d.DependentLabels()) != 0 {
		t.Error("single column profile should have no dependent series")
	}
	assertFloats(t, "Independent()", d.Independent(), []float64{1, 2})
}

func TestParseQuotedAndSpaced(t *testing.T) {
	d, err := ParseString("\"size, bytes\",\"time\"\r\n 1 , 2.5e3 \r\n")
	if err != nil {
		t.Fatal(err)
	}
	if d.IndependentLabel() != "size, bytes" {
		t.Errorf("IndependentLabel() = %q", d.IndependentLabel())
	}
	assertFloats(t, "Dependent()[0]", d.Dependent()[0], []float64{2500})
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{"empty", "", "missing header"},
		{"blank lines only", "\n\n\n", "missing header"},
		{"short row", "a,b,c\n1,2,3\n4,5\n", "line 3"},
		{"long row", "a,b\n1,2,3\n", "got 3 fields"},
		{"non numeric", "a,b\n1,fast\n", "b value \"fast\""},
		{"empty field", "a,b\n1,\n", "not a number"},
		{"bad quoting", "a,b\n1,\"2\n", "line"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseString(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) = %+v, want error", tt.input, d)
			}
			if d != nil {
				t.Error("Parse() returned data alongside an error")
			}
			if !errors.IsMalformedData(err) {
				t.Errorf("Parse() code = %v, want MALFORMED_DATA", errors.GetCode(err))
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Parse() error = %q, want it to mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	d, _ := ParseString(sample)
	d.Independent()[0] = 99
	d.Dependent()[0][0] = 99
	d.DependentLabels()[0] = "mutated"

	if d.Independent()[0] != 1 || d.Dependent()[0][0] != 10 || d.DependentLabels()[0] != "stringv" {
		t.Error("mutating accessor results changed the profile")
	}
}

func TestScaleDependent(t *testing.T) {
	d, _ := ParseString("n,t\n1,2000000\n2,500000\n")
	scaled, err := d.ScaleDependent(ClocksPerSec)
	if err != nil {
		t.Fatal(err)
	}
	assertFloats(t, "Independent()", scaled.Independent(), []float64{1, 2})
	assertFloats(t, "Dependent()[0]", scaled.Dependent()[0], []float64{2, 0.5})
	assertFloats(t, "original", d.Dependent()[0], []float64{2000000, 500000})

	for _, f := range []float64{0, -1, math.NaN()} {
		if _, err := d.ScaleDependent(f); !errors.IsInvalidParameter(err) {
			t.Errorf("ScaleDependent(%v) error = %v, want INVALID_PARAMETER", f, err)
		}
	}
}

func TestSummarize(t *testing.T) {
	d, _ := ParseString("n,a,b\n1,1,5\n2,2,5\n3,3,5\n4,10,5\n")
	got := d.Summarize()
	if len(got) != 2 {
		t.Fatalf("len(Summarize()) = %d, want 2", len(got))
	}

	a := got[0]
	if a.Label != "a" || a.Points != 4 || a.Min != 1 || a.Max != 10 || a.Mean != 4 || a.Median != 2.5 {
		t.Errorf("Summarize()[0] = %+v", a)
	}
	if want := math.Sqrt(12.5); math.Abs(a.StdDev-want) > 1e-12 {
		t.Errorf("StdDev = %v, want %v", a.StdDev, want)
	}
	if b := got[1]; b.StdDev != 0 || b.Mean != 5 {
		t.Errorf("Summarize()[1] = %+v", b)
	}

	empty, _ := ParseString("n,a\n")
	if s := empty.Summarize(); len(s) != 1 || s[0].Points != 0 {
		t.Errorf("Summarize() on header-only = %+v", s)
	}
}

func assertStrings(t *testing.T, name string, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("%s[%d] = %q, want %q", name, i, got[i], want[i])
		}
	}
}

func assertFloats(t *testing.T, name string, got, want []float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("%s[%d] = %v, want %v", name, i, got[i], want[i])
		}
	}
}
