package schedule

import (
	"testing"
	"time"
)

func TestRemapWeekday(t *testing.T) {
	// 0 (воскресенье) должно переходить в 7, остальные дни не меняются.
	want := map[time.Weekday]int{
		time.Sunday:    7,
		time.Monday:    1,
		time.Tuesday:   2,
		time.Wednesday: 3,
		time.Thursday:  4,
		time.Friday:    5,
		time.Saturday:  6,
	}
	for w, expected := range want {
		if got := RemapWeekday(w); got != expected {
			t.Errorf("RemapWeekday(%v) = %d, want %d", w, got, expected)
		}
	}
}

func TestISOWeekday(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		want    int
		wantErr bool
	}{
		{name: "monday", date: "2024-09-02", want: 1},
		{name: "tuesday", date: "2024-09-03", want: 2},
		{name: "saturday", date: "2024-09-07", want: 6},
		{name: "sunday maps to 7", date: "2024-09-08", want: 7},
		{name: "garbage", date: "03.09.2024", wantErr: true},
		{name: "empty", date: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ISOWeekday(tt.date)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ISOWeekday(%q) error = %v, wantErr %v", tt.date, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ISOWeekday(%q) = %d, want %d", tt.date, got, tt.want)
			}
		})
	}
}
