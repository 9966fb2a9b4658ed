package utils

import "testing"

func TestGenInvoiceNo(t *testing.T) {
	tests := []struct {
		seq  int64
		want string
	}{
		{1, "INV-0001"},
		{42, "INV-0042"},
		{9999, "INV-9999"},
		{12345, "INV-12345"},
	}

	for _, tt := range tests {
		if got := GenInvoiceNo(tt.seq); got != tt.want {
			t.Errorf("GenInvoiceNo(%d) = %q, ingin %q", tt.seq, got, tt.want)
		}
	}
}

func TestIsUniqueViolationNil(t *testing.T) {
	if IsUniqueViolation(nil) {
		t.Error("IsUniqueViolation(nil) harus false")
	}
}
