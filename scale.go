package guide

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/vdobler/guide/data"
	"gonum.org/v1/plot"
)

// A Scaler is the interface guides need from a scale bound to a variable.
type Scaler interface {
	// Ticks returns the domain values to put ticks on, in order.
	Ticks() []float64

	// Convert maps a domain value to range space.
	Convert(v float64) float64

	// Normalize maps a range space value to [0,1].
	Normalize(r float64) float64

	// Format returns the label text of the domain value v.
	Format(v float64) string
}

// ScaleTable maps variable names to their scales.
type ScaleTable map[string]Scaler

// Lookup returns the scale of variable or a *MissingScaleError.
func (t ScaleTable) Lookup(variable string) (Scaler, error) {
	s, ok := t[variable]
	if !ok || s == nil {
		return nil, &MissingScaleError{Variable: variable}
	}
	return s, nil
}

// TrainScales returns a linear, autoscaled scale for every column of cols.
// Columns without data get the range [-1,1].
func TrainScales(cols data.Columns) ScaleTable {
	t := make(ScaleTable, len(cols))
	for _, name := range cols.Names() {
		s := NewScale()
		s.Title = name
		min, max := cols.Range(name)
		s.Data.Update(min, max)
		s.Autoscale()
		s.deDegenerate()
		t[name] = s
	}
	return t
}

// ----------------------------------------------------------------------------
// Scale

// Scale maps a variable's domain to a range and provides ticks for it.
// Scale implements Scaler.
type Scale struct {
	// Title is the scale's title.
	Title string

	// Data is the range covered by actual data.
	Data Interval

	// Interval captures the domain of this scale. It may be larger or
	// smaller than the actual Data range.
	Interval

	// Range is the range space, [0,1] for a new scale.
	Range Interval

	// ScaleType determines the fundamental nature of the scale.
	ScaleType ScaleType

	// Autoscaling can be used to control autoscaling of this scale.
	Autoscaling

	// Trans maps Interval to Range. If unset the transformation is
	// chosen from ScaleType.
	Trans *Transformation

	// Ticker is responsible for generating the ticks. If nil
	// the ticker of the transformation is used.
	Ticker plot.Ticker

	// Values contains the levels of a discrete scale.
	Values []string

	// Formatter formats tick labels. If nil a format suitable to the
	// scale type is used.
	Formatter func(float64) string

	// TimeFmt is used to format Time scales whose values are seconds
	// since T0.
	TimeFmt string
	T0      time.Time
}

// NewScale returns a new linear scale which autoscales to the actual data.
func NewScale() *Scale {
	s := &Scale{
		Data:      unsetInterval(),
		Interval:  unsetInterval(),
		Range:     Interval{0, 1},
		ScaleType: Linear,
		Autoscaling: Autoscaling{
			MinRange: unsetInterval(),
			MaxRange: unsetInterval(),
		},
	}
	s.Autoscaling.Expand.Relative = 0.05

	return s
}

// NewLinearScale returns a linear scale with the fixed domain [min,max].
func NewLinearScale(min, max float64) *Scale {
	s := NewScale()
	s.Min, s.Max = min, max
	return s
}

// NewDiscreteScale returns a discrete scale over values. The i'th value
// is placed at the center of the i'th of len(values) equal bins.
func NewDiscreteScale(values ...string) *Scale {
	s := NewScale()
	s.ScaleType = Discrete
	s.Values = values
	s.Min, s.Max = -0.5, float64(len(values))-0.5
	return s
}

// NewTimeScale returns a time scale from t0 to t1. Domain values are
// seconds since t0.
func NewTimeScale(t0, t1 time.Time, layout string) *Scale {
	s := NewScale()
	s.ScaleType = Time
	s.T0 = t0
	s.TimeFmt = layout
	s.Min, s.Max = 0, t1.Sub(t0).Seconds()
	return s
}

// NewLogScale returns a logarithmic scale with the fixed domain [min,max].
func NewLogScale(min, max float64) *Scale {
	s := NewLinearScale(min, max)
	s.ScaleType = Logarithmic
	return s
}

func (s *Scale) trans() *Transformation {
	if s.Trans != nil {
		return s.Trans
	}
	if s.ScaleType == Logarithmic {
		return &Log10Trans
	}
	return &LinearTrans
}

func (s *Scale) degenerate() bool {
	return math.IsNaN(s.Min) || math.IsNaN(s.Max) || s.Min == s.Max
}

// Map maps the interval [s.Min, s.Max] to [0, 1].
// Values outside of [s.Min, s.Max] are mapped to values < 0 or > 1.
// If s's Interval is degenerate or unset Map returns NaN.
func (s *Scale) Map(x float64) float64 {
	if s.degenerate() {
		return math.NaN()
	}

	switch s.ScaleType {
	case Linear, Time, Discrete:
		return (x - s.Min) / (s.Max - s.Min)
	case Logarithmic:
		min, max := math.Log10(s.Min), math.Log10(s.Max)
		return (math.Log10(x) - min) / (max - min)
	default:
		panic(s.ScaleType)
	}
}

// Convert implements Scaler.
func (s *Scale) Convert(v float64) float64 {
	if s.degenerate() {
		return math.NaN()
	}
	return s.trans().Trans(s.Interval, s.Range, v)
}

// Normalize implements Scaler.
func (s *Scale) Normalize(r float64) float64 {
	if s.Range.Min == s.Range.Max {
		return math.NaN()
	}
	return (r - s.Range.Min) / (s.Range.Max - s.Range.Min)
}

// Ticks implements Scaler. Discrete scales tick every level, the other
// types use the major ticks of the Ticker which lie inside the domain.
func (s *Scale) Ticks() []float64 {
	if s.ScaleType == Discrete {
		ticks := make([]float64, len(s.Values))
		for i := range ticks {
			ticks[i] = float64(i)
		}
		return ticks
	}
	if s.degenerate() {
		return nil
	}

	ticker := s.Ticker
	if ticker == nil {
		ticker = s.trans().Ticker
	}
	min, max := math.Min(s.Min, s.Max), math.Max(s.Min, s.Max)
	eps := 1e-9 * (max - min)
	var ticks []float64
	for _, t := range ticker.Ticks(min, max) {
		if t.IsMinor() || t.Value < min-eps || t.Value > max+eps {
			continue
		}
		ticks = append(ticks, t.Value)
	}
	return ticks
}

// Format implements Scaler.
func (s *Scale) Format(v float64) string {
	if s.Formatter != nil {
		return s.Formatter(v)
	}
	switch s.ScaleType {
	case Discrete:
		i := int(math.Round(v))
		if i < 0 || i >= len(s.Values) {
			return ""
		}
		return s.Values[i]
	case Time:
		layout := s.TimeFmt
		if layout == "" {
			layout = "2006-01-02 15:04"
		}
		return s.T0.Add(time.Duration(v * float64(time.Second))).Format(layout)
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// UpdateData updates s to cover i.
func (s *Scale) UpdateData(i Interval) {
	s.Data.Update(i.Min)
	s.Data.Update(i.Max)
}

// FixMin fixes the min of s to x. If x is NaN the min is determined by
// autoscaling to the actual data.
func (s *Scale) FixMin(x float64) {
	s.MinRange.Min = x
	s.MinRange.Max = x
}

// FixMax fixes the max of s to x. If x is NaN the max is determined by
// autoscaling to the actual data.
func (s *Scale) FixMax(x float64) {
	s.MaxRange.Min = x
	s.MaxRange.Max = x
}

// HasData reports whether the Data interval of s is valid.
func (s *Scale) HasData() bool {
	return !math.IsNaN(s.Data.Min) && !math.IsNaN(s.Data.Max)
}

// InRange reports whether x lies in the range of s.
func (s *Scale) InRange(x float64) bool {
	return x >= s.Min && x <= s.Max
}

func (s *Scale) String() string {
	if s == nil {
		return "<nil>"
	}
	return fmt.Sprintf("Range=[%.2f:%.2f] Data=[%.2f:%.2f] %s %q",
		s.Min, s.Max, s.Data.Min, s.Data.Max, s.ScaleType, s.Title)
}

// Autoscale turns the data range into the domain of s.
func (s *Scale) Autoscale() {
	if !s.HasData() {
		return
	}

	ext := s.Expand.Relative*(s.Data.Max-s.Data.Min) + s.Expand.Absolute

	// Determine the left edge of s.
	if s.MinRange.Min == s.MinRange.Max {
		// Degenerate MinRange interval and non NaN:
		// The user has set a fixed Min.
		s.Min = s.MinRange.Min
	} else {
		s.Min = s.Data.Min

		switch s.ScaleType {
		case Linear, Time:
			s.Min -= ext
		case Discrete:
			s.Min -= 0.5 + ext
		case Logarithmic:
			s.Min /= 1 + s.Expand.Relative
		default:
			panic(s.ScaleType)
		}

		// Clip autoscaling
		if s.MinRange.Min > s.Min {
			s.Min = s.MinRange.Min
		}
		if s.MinRange.Max < s.Min {
			s.Min = s.MinRange.Max
		}
	}

	// Determine the right edge of s.
	if s.MaxRange.Min == s.MaxRange.Max {
		s.Max = s.MaxRange.Min
	} else {
		s.Max = s.Data.Max

		switch s.ScaleType {
		case Linear, Time:
			s.Max += ext
		case Discrete:
			s.Max += 0.5 + ext
		case Logarithmic:
			s.Max *= 1 + s.Expand.Relative
		default:
			panic(s.ScaleType)
		}

		if s.MaxRange.Min > s.Max {
			s.Max = s.MaxRange.Min
		}
		if s.MaxRange.Max < s.Max {
			s.Max = s.MaxRange.Max
		}
	}
}

// deDegenerate makes sure the domain of s is set and not empty.
func (s *Scale) deDegenerate() {
	if math.IsNaN(s.Min) {
		s.Min = -1
	}
	if math.IsNaN(s.Max) {
		s.Max = 1
	}
	if s.Min == s.Max {
		s.Min, s.Max = s.Min-1, s.Max+1
	}
}

// ----------------------------------------------------------------------------
// Interval

// Interval represents a (potentially degenerate) real interval.
// Both edges of the interval may be NaN indicating this edge is not
// determined.
type Interval struct {
	Min, Max float64
}

func unsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Update expands i to include x.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Min < v) {
			i.Min = v
		}
		if !(i.Max > v) {
			i.Max = v
		}
	}
}

// Equal reports whether i and j are the same, treating NaN edges as equal.
func (i *Interval) Equal(j Interval) bool {
	same := func(a, b float64) bool {
		if math.IsNaN(a) {
			return math.IsNaN(b)
		}
		return a == b
	}
	return same(i.Min, j.Min) && same(i.Max, j.Max)
}

// ----------------------------------------------------------------------------
// ScaleType

// ScaleType selects one of the handful known scale types.
type ScaleType int

// String returns the type of st.
func (st ScaleType) String() string {
	return []string{"linear", "discrete", "time", "log"}[int(st)]
}

const (
	Linear ScaleType = iota
	Discrete
	Time
	Logarithmic
)

// ----------------------------------------------------------------------------
// Autoscaling

// Autoscaling controls how the min and max value of a scale are scaled.
// Setting a range to a degenerate interval [f:f] will turn off autoscaling
// and fix the value to f. A non-degenerate range [u:v] will allow autoscaling
// between u and v. A NaN value works like -Inf for u and +Inf for v.
type Autoscaling struct {
	// Expand determines how much the actual data range is expanded.
	Expand struct {
		Absolute float64
		Relative float64
	}

	MinRange Interval // MinRange determines the allowed range of the Min of a scale.
	MaxRange Interval // MaxRange determines the allowed range of the Max of a scale.
}
