package date

import (
	"testing"

	go_json "github.com/goccy/go-json"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{
			name:  "bare date",
			input: "2024-01-15",
			want:  Date("2024-01-15"),
		},
		{
			name:  "rfc3339 timestamp drops time of day",
			input: "2024-01-15T22:45:12Z",
			want:  Date("2024-01-15"),
		},
		{
			name:  "rfc3339 with offset",
			input: "2024-01-15T01:00:00-05:00",
			want:  Date("2024-01-15"),
		},
		{
			name:    "garbage",
			input:   "January 15th",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestUnmarshalJSON(t *testing.T) {
	t.Parallel()

	var payload struct {
		Date Date `json:"date"`
	}

	if err := go_json.Unmarshal([]byte(`{"date":"2024-03-01T09:30:00Z"}`), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if payload.Date != Date("2024-03-01") {
		t.Errorf("got %v, want 2024-03-01", payload.Date)
	}

	if err := go_json.Unmarshal([]byte(`{"date":null}`), &payload); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if !payload.Date.IsZero() {
		t.Errorf("null date should be zero, got %v", payload.Date)
	}
}

func TestAddDays(t *testing.T) {
	t.Parallel()

	d := Date("2024-02-28")
	if got := d.AddDays(1); got != Date("2024-02-29") {
		t.Errorf("leap day: got %v", got)
	}
	if got := d.AddDays(-28); got != Date("2024-01-31") {
		t.Errorf("backwards: got %v", got)
	}
}
