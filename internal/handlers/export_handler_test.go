package handlers

import "testing"

func TestSheetName(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		want    string
	}{
		{name: "short name unchanged", subject: "Алгебра", want: "Алгебра"},
		{name: "forbidden chars replaced", subject: "ОБЖ: основы/практика", want: "ОБЖ  основы практика"},
		{
			name:    "long name truncated to 31 runes",
			subject: "Очень длинное название предмета с продолжением",
			want:    "Очень длинное название предмета",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sheetName(tt.subject)
			if got != tt.want {
				t.Errorf("sheetName(%q) = %q, want %q", tt.subject, got, tt.want)
			}
			if len([]rune(got)) > 31 {
				t.Errorf("sheet name longer than 31 runes: %q", got)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		iso  string
		want string
	}{
		{iso: "2024-09-03", want: "03.09.2024"},
		{iso: "garbage", want: "garbage"},
	}

	for _, tt := range tests {
		if got := formatDate(tt.iso); got != tt.want {
			t.Errorf("formatDate(%q) = %q, want %q", tt.iso, got, tt.want)
		}
	}
}
