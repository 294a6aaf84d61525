package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Rate は料金単価を表す。
// JSONの数値・数値文字列のどちらからでも読み込める。
type Rate float64

// ParseRate は文字列をRateに変換する。空文字は0として扱う。
func ParseRate(s string) (Rate, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid rate %q: %w", s, err)
	}
	if f < 0 {
		return 0, fmt.Errorf("invalid rate %q: must not be negative", s)
	}
	return Rate(f), nil
}

// UnmarshalJSON はjson.Unmarshalerを実装する。
func (r *Rate) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*r = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := ParseRate(s)
		if err != nil {
			return err
		}
		*r = v
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*r = Rate(f)
	return nil
}

// String は末尾の0を省いた10進表記を返す。
func (r Rate) String() string {
	return strconv.FormatFloat(float64(r), 'f', -1, 64)
}

// OptionalRateString は任意項目の料金を文字列で返す。未設定は空文字。
func OptionalRateString(r *Rate) string {
	if r == nil {
		return ""
	}
	return r.String()
}

// ParseOptionalRate は任意項目の料金を変換する。空文字はnilを返す。
func ParseOptionalRate(s string) (*Rate, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	v, err := ParseRate(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
