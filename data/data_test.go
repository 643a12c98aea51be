package data

import (
	"math"
	"strings"
	"testing"
)

func TestRange(t *testing.T) {
	c := Columns{
		"a": {3, math.NaN(), -2, 7},
		"b": {math.NaN()},
	}
	if min, max := c.Range("a"); min != -2 || max != 7 {
		t.Errorf("Range(a) = %v,%v, want -2,7", min, max)
	}
	if min, max := c.Range("b"); !math.IsNaN(min) || !math.IsNaN(max) {
		t.Errorf("Range(b) = %v,%v, want NaN,NaN", min, max)
	}
	if min, _ := c.Range("missing"); !math.IsNaN(min) {
		t.Errorf("Range(missing) = %v, want NaN", min)
	}
}

func TestReadCSV(t *testing.T) {
	in := "x, y,\n1,2,3\n4,oops,6\n"
	c, names, err := ReadCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got := strings.Join(c.Names(), ","); got != "col3,x,y" {
		t.Errorf("Names() = %q", got)
	}
	if got := strings.Join(names, ","); got != "x,y,col3" {
		t.Errorf("header order = %q", got)
	}
	if got := c["x"]; len(got) != 2 || got[0] != 1 || got[1] != 4 {
		t.Errorf("x = %v", got)
	}
	if got := c["y"]; len(got) != 2 || got[0] != 2 || !math.IsNaN(got[1]) {
		t.Errorf("y = %v, want [2 NaN]", got)
	}
	if got := c["col3"]; len(got) != 2 || got[1] != 6 {
		t.Errorf("col3 = %v", got)
	}

	if _, _, err := ReadCSV(strings.NewReader("")); err == nil {
		t.Errorf("expected error for empty input")
	}
}

func TestReadCSVPaddedHeader(t *testing.T) {
	c, names, err := ReadCSV(strings.NewReader("time, value \n1,2\n3,4\n"))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(c) != 2 {
		t.Fatalf("got %d columns %v, want 2", len(c), c.Names())
	}
	if got := strings.Join(names, ","); got != "time,value" {
		t.Errorf("header order = %q", got)
	}
	if got := c["value"]; len(got) != 2 || got[0] != 2 || got[1] != 4 {
		t.Errorf("value = %v, want [2 4]", got)
	}
	if _, ok := c[" value "]; ok {
		t.Errorf("untrimmed column present")
	}
}

func TestReadCSVDuplicateHeader(t *testing.T) {
	if _, _, err := ReadCSV(strings.NewReader("a, a\n1,2\n")); err == nil {
		t.Errorf("expected error for duplicate column")
	}
}
