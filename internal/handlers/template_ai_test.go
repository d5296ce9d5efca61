package handlers

import "testing"

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "plain json",
			raw:  `{"Понедельник": []}`,
			want: `{"Понедельник": []}`,
		},
		{
			name: "json inside markdown block",
			raw:  "Вот шаблон:\n```json\n{\"a\": 1}\n```\nГотово.",
			want: `{"a": 1}`,
		},
		{
			name: "json inside bare code block",
			raw:  "```\n{\"a\": 1}\n```",
			want: `{"a": 1}`,
		},
		{
			name: "surrounding prose",
			raw:  `Конечно! {"a": 1} Надеюсь, помог.`,
			want: `{"a": 1}`,
		},
		{name: "no json at all", raw: "извините, не могу", want: ""},
		{name: "truncated json", raw: `{"a": `, want: ""},
		{name: "empty input", raw: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractJSON(tt.raw); got != tt.want {
				t.Errorf("extractJSON() = %q, want %q", got, tt.want)
			}
		})
	}
}
