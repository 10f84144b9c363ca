package yearsheet

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func seq(n int) []float64 {
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = float64(i + 1)
	}
	return vals
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		count   int
		wantErr error
	}{
		{"regular year", 2023, 365, nil},
		{"leap year", 2020, 366, nil},
		{"too short", 2023, 364, ErrInputLength},
		{"too long", 2023, 367, ErrInputLength},
		{"empty", 2023, 0, ErrInputLength},
		{"366 values for regular year", 2023, 366, ErrYearMismatch},
		{"365 values for leap year", 2020, 365, ErrYearMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.year, tt.count)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate(%d, %d) = %v, want %v", tt.year, tt.count, err, tt.wantErr)
			}
		})
	}
}

func TestDaysInYear(t *testing.T) {
	tests := []struct {
		year int
		want int
	}{
		{2020, 366},
		{2021, 365},
		{2023, 365},
		{2000, 366}, // divisible by 400
		{1900, 365}, // divisible by 100 but not 400
	}

	for _, tt := range tests {
		if got := DaysInYear(tt.year); got != tt.want {
			t.Errorf("DaysInYear(%d) = %d, want %d", tt.year, got, tt.want)
		}
	}
}

func TestLayoutShape(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		days      int
		wantWeeks int
	}{
		{"2023 starts Sunday", 2023, 365, 53},
		{"2021 starts Friday", 2021, 365, 53},
		{"2020 leap starts Wednesday", 2020, 366, 53},
		{"2022 starts Saturday", 2022, 365, 53},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Layout(seq(tt.days), tt.year)
			if err != nil {
				t.Fatalf("Layout: %v", err)
			}
			if g.Weeks != tt.wantWeeks {
				t.Errorf("Weeks = %d, want %d", g.Weeks, tt.wantWeeks)
			}
			if len(g.Cells) != DaysPerWeek {
				t.Fatalf("rows = %d, want %d", len(g.Cells), DaysPerWeek)
			}

			defined := 0
			for _, row := range g.Cells {
				if len(row) != g.Weeks {
					t.Fatalf("row length = %d, want %d", len(row), g.Weeks)
				}
				for _, c := range row {
					if c.Defined() {
						defined++
					}
				}
			}
			if defined != tt.days {
				t.Errorf("defined cells = %d, want %d", defined, tt.days)
			}
		})
	}
}

func TestLayoutPlacement(t *testing.T) {
	// 2021: Jan 1 is a Friday, so day 1 sits at row 5 of column 0 and the
	// first two cells of the column are padding.
	g, err := Layout(seq(365), 2021)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}

	if got := g.Cells[5][0]; got.Day != 1 || got.Value != 1 {
		t.Errorf("cell (5,0) = %+v, want day 1 value 1", got)
	}
	for row := 0; row < 5; row++ {
		if g.Cells[row][0].Defined() {
			t.Errorf("cell (%d,0) should be padding, got %+v", row, g.Cells[row][0])
		}
	}

	// Day N is always N-1 steps forward of day 1 in row-major calendar order.
	offset := 5
	for day := 1; day <= 365; day++ {
		pos := offset + day - 1
		c := g.Cells[pos%DaysPerWeek][pos/DaysPerWeek]
		if c.Day != day {
			t.Fatalf("day %d placed at wrong cell: got day %d", day, c.Day)
		}
	}
}

func TestLayoutSundayStart(t *testing.T) {
	// 2023: Jan 1 is a Sunday. A single 1.0 on day 1 must land at row 0,
	// column 0, and the weekly aggregate must carry it in week 0 alone.
	values := make([]float64, 365)
	values[0] = 1.0

	g, err := Layout(values, 2023)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if c := g.Cells[0][0]; c.Day != 1 || c.Value != 1.0 {
		t.Errorf("cell (0,0) = %+v, want day 1 value 1.0", c)
	}
	for _, row := range g.Cells {
		for col, c := range row {
			if c.Defined() && c.Day != 1 && c.Value != 0 {
				t.Errorf("cell day %d col %d = %v, want 0", c.Day, col, c.Value)
			}
		}
	}

	agg := g.WeeklyAggregate()
	if agg[0] != 1.0 {
		t.Errorf("aggregate[0] = %v, want 1.0", agg[0])
	}
	for i, v := range agg[1:] {
		if v != 0 {
			t.Errorf("aggregate[%d] = %v, want 0", i+1, v)
		}
	}
}

func TestLayoutLeapMismatch(t *testing.T) {
	if _, err := Layout(seq(366), 2023); !errors.Is(err, ErrYearMismatch) {
		t.Errorf("366 values for 2023: err = %v, want ErrYearMismatch", err)
	}
	if _, err := Layout(seq(366), 2020); err != nil {
		t.Errorf("366 values for 2020: err = %v, want nil", err)
	}
}

func TestLayoutIdempotent(t *testing.T) {
	vals := seq(365)
	a, err := Layout(vals, 2023)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	b, err := Layout(vals, 2023)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("repeated layout differs (-first +second):\n%s", diff)
	}
}

func TestWeeklyAggregateTotal(t *testing.T) {
	for _, year := range []int{2020, 2021, 2023} {
		vals := seq(DaysInYear(year))
		g, err := Layout(vals, year)
		if err != nil {
			t.Fatalf("Layout(%d): %v", year, err)
		}

		var want float64
		for _, v := range vals {
			want += v
		}
		var got float64
		for _, s := range g.WeeklyAggregate() {
			got += s
		}
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("year %d: aggregate total = %v, want %v", year, got, want)
		}
	}
}

func TestValueRange(t *testing.T) {
	vals := make([]float64, 365)
	for i := range vals {
		vals[i] = 10
	}
	vals[100] = -3
	vals[200] = 42

	g, err := Layout(vals, 2023)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	min, max := g.ValueRange()
	if min != -3 || max != 42 {
		t.Errorf("ValueRange() = (%v, %v), want (-3, 42)", min, max)
	}
}

func TestDateOf(t *testing.T) {
	g, err := Layout(seq(366), 2020)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if got := g.DateOf(60); got.Month() != 2 || got.Day() != 29 {
		t.Errorf("DateOf(60) = %v, want Feb 29", got)
	}
	if got := g.DateOf(366); got.Month() != 12 || got.Day() != 31 {
		t.Errorf("DateOf(366) = %v, want Dec 31", got)
	}
}
