package model

import (
	"encoding/json"
	"testing"
)

func TestParseRate(t *testing.T) {
	tests := []struct {
		input   string
		want    Rate
		wantErr bool
	}{
		{"0.25", 0.25, false},
		{" 3 ", 3, false},
		{"", 0, false},
		{"abc", 0, true},
		{"-1", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseRate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRateUnmarshal(t *testing.T) {
	var tariff Tariff
	data := `{"tariffId":1,"localCallsPrepaid":"0.5","receivingCallsPrepaid":0.1,"callBackHomePrepaid":null,"sendingSmsPrepaid":"","mtPrepaid":"2"}`
	if err := json.Unmarshal([]byte(data), &tariff); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if tariff.LocalCalls != 0.5 {
		t.Errorf("LocalCalls = %v, want 0.5", tariff.LocalCalls)
	}
	if tariff.ReceivingCalls != 0.1 {
		t.Errorf("ReceivingCalls = %v, want 0.1", tariff.ReceivingCalls)
	}
	if tariff.CallBackHome != 0 || tariff.SendingSMS != 0 {
		t.Error("null and empty rates must decode as zero")
	}
	if tariff.MT == nil || *tariff.MT != 2 {
		t.Errorf("MT = %v, want 2", tariff.MT)
	}
	if tariff.DataRoaming != nil {
		t.Error("absent optional rate must stay nil")
	}
}

func TestRateString(t *testing.T) {
	if got := Rate(0.150).String(); got != "0.15" {
		t.Errorf("String() = %q, want %q", got, "0.15")
	}
	if got := OptionalRateString(nil); got != "" {
		t.Errorf("OptionalRateString(nil) = %q, want empty", got)
	}
}

func TestParseOptionalRate(t *testing.T) {
	r, err := ParseOptionalRate("  ")
	if err != nil || r != nil {
		t.Errorf("ParseOptionalRate(blank) = %v, %v; want nil, nil", r, err)
	}
	r, err = ParseOptionalRate("1.2")
	if err != nil || r == nil || *r != 1.2 {
		t.Errorf("ParseOptionalRate(1.2) = %v, %v", r, err)
	}
	if _, err := ParseOptionalRate("x"); err == nil {
		t.Error("expected error")
	}
}
