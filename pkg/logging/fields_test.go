package logging

import (
	"errors"
	"testing"
)

func TestWithTraceID(t *testing.T) {
	attr := WithTraceID("trace-12345")
	if attr.Key != FieldTraceID {
		t.Errorf("Key = %q, want %q", attr.Key, FieldTraceID)
	}
	if attr.Value.String() != "trace-12345" {
		t.Errorf("Value = %q, want %q", attr.Value.String(), "trace-12345")
	}
}

func TestWithEventID(t *testing.T) {
	attr := WithEventID("API_FETCH_ERR")
	if attr.Key != FieldEventID {
		t.Errorf("Key = %q, want %q", attr.Key, FieldEventID)
	}
	if attr.Value.String() != "API_FETCH_ERR" {
		t.Errorf("Value = %q, want %q", attr.Value.String(), "API_FETCH_ERR")
	}
}

func TestWithError(t *testing.T) {
	t.Run("With error", func(t *testing.T) {
		attr := WithError(errors.New("connection failed"))
		if attr.Value.String() != "connection failed" {
			t.Errorf("Value = %q, want %q", attr.Value.String(), "connection failed")
		}
	})

	t.Run("With nil error", func(t *testing.T) {
		attr := WithError(nil)
		if attr.Value.String() != "" {
			t.Errorf("Value = %q, want empty string", attr.Value.String())
		}
	})
}

func TestNumericFields(t *testing.T) {
	if attr := WithLatency(150); attr.Key != FieldLatencyMs || attr.Value.Int64() != 150 {
		t.Errorf("WithLatency() = %v", attr)
	}
	if attr := WithHTTPStatus(404); attr.Key != FieldHTTPStatus || attr.Value.Int64() != 404 {
		t.Errorf("WithHTTPStatus() = %v", attr)
	}
	if attr := WithCount(12); attr.Key != FieldCount || attr.Value.Int64() != 12 {
		t.Errorf("WithCount() = %v", attr)
	}
	if attr := WithResource("partners"); attr.Key != FieldResource || attr.Value.String() != "partners" {
		t.Errorf("WithResource() = %v", attr)
	}
}

func TestCommonFields(t *testing.T) {
	t.Run("WithUser with masking", func(t *testing.T) {
		cf := NewCommonFields(NewMasker(true))
		attr := cf.WithUser("operator@example.com")
		if attr.Key != FieldUser {
			t.Errorf("Key = %q, want %q", attr.Key, FieldUser)
		}
		if attr.Value.String() != "o*******@example.com" {
			t.Errorf("Value = %q", attr.Value.String())
		}
	})

	t.Run("NewCommonFields with nil masker", func(t *testing.T) {
		cf := NewCommonFields(nil)
		attr := cf.WithToken("abcdefghijkl")
		if attr.Value.String() != "abcdefghijkl" {
			t.Errorf("Value = %q, want unmasked token", attr.Value.String())
		}
	})

	t.Run("APILogFields", func(t *testing.T) {
		cf := NewCommonFields(nil)
		fields := cf.APILogFields("t-1", "API_FETCH_ERR", "countries")
		if len(fields) != 3 {
			t.Fatalf("len = %d, want 3", len(fields))
		}
	})
}
