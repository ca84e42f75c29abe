package history

import "testing"

func TestExtractYear(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   int
		wantOK bool
	}{
		{"inline year", "In 1969, the Moon landing occurred", 1969, true},
		{"leading year", "1969 Moon landing", 1969, true},
		{"no year", "No year here", 0, false},
		{"three digits", "476 - Fall of Rome", 0, false},
		{"five digits skipped", "Code 12345 then 1987", 1987, true},
		{"first of many", "1914 to 1918", 1914, true},
		{"trailing year", "born in 2001", 2001, true},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractYear(tt.text)
			if got != tt.want || ok != tt.wantOK {
				t.Fatalf("ExtractYear(%q) = (%d, %v), want (%d, %v)", tt.text, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		year, century, decade int
	}{
		{1987, 20, 8},
		{2000, 20, 0},
		{2001, 21, 0},
		{1, 1, 0},
		{100, 1, 0},
		{101, 2, 0},
		{9999, 100, 9},
	}
	for _, tt := range tests {
		century, decade := Classify(tt.year)
		if century != tt.century || decade != tt.decade {
			t.Errorf("Classify(%d) = (%d, %d), want (%d, %d)", tt.year, century, decade, tt.century, tt.decade)
		}
	}
}

func TestClassify_MatchesFormulaOverRange(t *testing.T) {
	for y := 1; y <= 9999; y++ {
		century, decade := Classify(y)
		wantCentury := y / 100
		if y%100 != 0 {
			wantCentury++
		}
		if century != wantCentury || decade != (y%100)/10 {
			t.Fatalf("Classify(%d) = (%d, %d), want (%d, %d)", y, century, decade, wantCentury, (y%100)/10)
		}
	}
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"World War II &#8211; ends   early", "World War II - ends early"},
		{"  padded\ttext \n", "padded text"},
		{"1969 &#8211;&#8212; Apollo", "1969 - Apollo"},
		{"1914&#8211;1918 World War I", "1914-1918 World War I"},
		{"Jean&#45;Paul Sartre", "Jean-Paul Sartre"},
		{"Jean&#X2D;Paul", "Jean-Paul"},
		{"range &#x2013; hex", "range - hex"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		if got := CleanText(tt.in); got != tt.want {
			t.Errorf("CleanText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDayRecordListAndEmpty(t *testing.T) {
	d := DayRecord{Births: []Event{{Text: "1900 someone"}}}
	if d.Empty() {
		t.Fatalf("Empty() = true, want false")
	}
	if got := d.List(CategoryBirths); len(got) != 1 {
		t.Fatalf("List(Births) len = %d, want 1", len(got))
	}
	if got := d.List(CategoryEvents); len(got) != 0 {
		t.Fatalf("List(Events) len = %d, want 0", len(got))
	}
	if !(DayRecord{}).Empty() {
		t.Fatalf("zero DayRecord Empty() = false, want true")
	}
}
