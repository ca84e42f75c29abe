package history

import (
	"reflect"
	"testing"
)

func intPtr(v int) *int { return &v }

func events(texts ...string) []Event {
	out := make([]Event, len(texts))
	for i, text := range texts {
		out[i] = Event{Text: text}
	}
	return out
}

func TestFilter_PolicyTable(t *testing.T) {
	input := events("1987 a", "2087 b", "1990 c", "no year", "2081 d", "1881 e")

	tests := []struct {
		name     string
		criteria Criteria
		want     []Event
	}{
		{
			name:     "both overrides return input",
			criteria: Criteria{Century: intPtr(21), Decade: intPtr(8), AllCenturies: true, AllDecades: true},
			want:     input,
		},
		{
			name:     "all centuries keeps decade matches",
			criteria: Criteria{Century: intPtr(21), Decade: intPtr(8), AllCenturies: true},
			want:     events("1987 a", "2087 b", "2081 d", "1881 e"),
		},
		{
			name:     "all decades keeps century matches",
			criteria: Criteria{Century: intPtr(21), Decade: intPtr(8), AllDecades: true},
			want:     events("2087 b", "2081 d"),
		},
		{
			name:     "century and decade both required",
			criteria: Criteria{Century: intPtr(19), Decade: intPtr(8)},
			want:     events("1881 e"),
		},
		{
			name:     "nothing set returns input",
			criteria: Criteria{},
			want:     input,
		},
		{
			name:     "century only",
			criteria: Criteria{Century: intPtr(20)},
			want:     events("1987 a", "1990 c"),
		},
		{
			name:     "all centuries without decade is inactive",
			criteria: Criteria{AllCenturies: true},
			want:     input,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(input, tt.criteria)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Filter = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestFilter_CenturyAndDecade(t *testing.T) {
	got := Filter(events("1987", "2087", "1990"), Criteria{Century: intPtr(21), Decade: intPtr(8)})
	if len(got) != 1 || got[0].Text != "2087" {
		t.Fatalf("Filter = %#v, want only 2087", got)
	}
}

func TestFilter_DropsYearlessOnlyWhenActive(t *testing.T) {
	input := events("No year here")
	if got := Filter(input, Criteria{}); len(got) != 1 {
		t.Fatalf("inactive Filter len = %d, want 1", len(got))
	}
	if got := Filter(input, Criteria{Decade: intPtr(0)}); len(got) != 0 {
		t.Fatalf("active Filter len = %d, want 0", len(got))
	}
}

func TestFilter_DoesNotMutateOrAlias(t *testing.T) {
	input := events("1987 a", "2087 b")
	snapshot := append([]Event(nil), input...)

	got := Filter(input, Criteria{AllCenturies: true, AllDecades: true})
	got[0].Text = "changed"

	if !reflect.DeepEqual(input, snapshot) {
		t.Fatalf("input mutated: %#v", input)
	}
}
