package service

import "testing"

func TestExtractDatabaseName(t *testing.T) {
	tests := []struct {
		name string
		uri  string
		want string
	}{
		{
			name: "appName diprioritaskan",
			uri:  "mongodb+srv://u:p@cluster0.abc.mongodb.net/?retryWrites=true&appName=RestoMenu",
			want: "restomenu",
		},
		{
			name: "nama database di path",
			uri:  "mongodb://localhost:27017/menudb?authSource=admin",
			want: "menudb",
		},
		{
			name: "srv dengan path",
			uri:  "mongodb+srv://u:p@cluster0.abc.mongodb.net/restaurant",
			want: "restaurant",
		},
		{
			name: "tanpa petunjuk fallback test",
			uri:  "mongodb://localhost:27017",
			want: "test",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractDatabaseName(tt.uri); got != tt.want {
				t.Errorf("extractDatabaseName(%q) = %q, ingin %q", tt.uri, got, tt.want)
			}
		})
	}
}

func TestAsDecimal(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"float64", 199.5, "199.50"},
		{"int32", int32(50), "50.00"},
		{"int64", int64(120), "120.00"},
		{"string angka", "99.99", "99.99"},
		{"string rusak", "abc", "0.00"},
		{"nil", nil, "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := asDecimal(tt.in).StringFixed(2); got != tt.want {
				t.Errorf("asDecimal(%v) = %s, ingin %s", tt.in, got, tt.want)
			}
		})
	}
}
