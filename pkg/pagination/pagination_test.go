package pagination

import (
	"net/url"
	"testing"
)

func TestNormalizeLimit(t *testing.T) {
	cases := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "zero uses default", limit: 0, want: DefaultLimit},
		{name: "negative uses default", limit: -4, want: DefaultLimit},
		{name: "within range kept", limit: 10, want: 10},
		{name: "above max clamped", limit: 500, want: MaxLimit},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeLimit(tc.limit); got != tc.want {
				t.Fatalf("NormalizeLimit(%d) = %d, want %d", tc.limit, got, tc.want)
			}
		})
	}
}

func TestWindow(t *testing.T) {
	cases := []struct {
		name      string
		params    Params
		total     int
		wantStart int
		wantEnd   int
	}{
		{name: "first page", params: Params{Limit: 3, Offset: 0}, total: 10, wantStart: 0, wantEnd: 3},
		{name: "middle page", params: Params{Limit: 3, Offset: 3}, total: 10, wantStart: 3, wantEnd: 6},
		{name: "short last page", params: Params{Limit: 4, Offset: 8}, total: 10, wantStart: 8, wantEnd: 10},
		{name: "offset past end", params: Params{Limit: 5, Offset: 20}, total: 10, wantStart: 10, wantEnd: 10},
		{name: "negative offset zeroed", params: Params{Limit: 2, Offset: -1}, total: 5, wantStart: 0, wantEnd: 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, end := tc.params.Window(tc.total)
			if start != tc.wantStart || end != tc.wantEnd {
				t.Fatalf("Window(%d) = (%d, %d), want (%d, %d)", tc.total, start, end, tc.wantStart, tc.wantEnd)
			}
		})
	}
}

func TestFromQuery(t *testing.T) {
	params, err := FromQuery(url.Values{"limit": {"10"}, "offset": {"30"}})
	if err != nil {
		t.Fatalf("FromQuery: %v", err)
	}
	if params.Limit != 10 || params.Offset != 30 {
		t.Fatalf("got %+v", params)
	}

	params, err = FromQuery(url.Values{})
	if err != nil {
		t.Fatalf("FromQuery empty: %v", err)
	}
	if params.Limit != DefaultLimit || params.Offset != 0 {
		t.Fatalf("got %+v", params)
	}

	if _, err := FromQuery(url.Values{"limit": {"abc"}}); err == nil {
		t.Fatal("expected error for non-numeric limit")
	}
	if _, err := FromQuery(url.Values{"offset": {"-1"}}); err == nil {
		t.Fatal("expected error for negative offset")
	}
}
