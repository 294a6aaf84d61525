// Package countrydata は国名と国コードの静的リストを提供する。
// 一覧・選択画面の表示装飾（国旗）にのみ使用し、正のデータはバックエンドが持つ。
package countrydata

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed countries.yaml
var embeddedCountries []byte

// Entry は静的リストの1エントリを表す。
type Entry struct {
	Code  string `yaml:"code"`  // ISO 3166-1 alpha-2
	Label string `yaml:"label"` // 表示名
}

// Flag は国コードから国旗の絵文字を生成する。
// コードが2文字の英字でない場合は空文字を返す。
func (e Entry) Flag() string {
	code := strings.ToUpper(e.Code)
	if len(code) != 2 {
		return ""
	}
	var b strings.Builder
	for _, c := range code {
		if c < 'A' || c > 'Z' {
			return ""
		}
		b.WriteRune(0x1F1E6 + (c - 'A'))
	}
	return b.String()
}

// DisplayLabel は国旗付きの表示ラベルを返す。
func (e Entry) DisplayLabel() string {
	if flag := e.Flag(); flag != "" {
		return flag + " " + e.Label
	}
	return e.Label
}

// List は静的な国リストを表す。
type List struct {
	entries []Entry
}

type document struct {
	Countries []Entry `yaml:"countries"`
}

// Parse はYAMLから国リストを読み込む。
// 空のラベル、2文字でないコード、重複ラベル（大文字小文字無視）はエラー。
func Parse(data []byte) (*List, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse country list: %w", err)
	}

	seen := make(map[string]struct{}, len(doc.Countries))
	for i, e := range doc.Countries {
		if strings.TrimSpace(e.Label) == "" {
			return nil, fmt.Errorf("entry %d: label is empty", i+1)
		}
		if len(e.Code) != 2 {
			return nil, fmt.Errorf("entry %d (%s): code must be 2 letters", i+1, e.Label)
		}
		key := strings.ToLower(e.Label)
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("entry %d: duplicate label %q", i+1, e.Label)
		}
		seen[key] = struct{}{}
	}

	return &List{entries: doc.Countries}, nil
}

var (
	defaultOnce sync.Once
	defaultList *List
)

// Default は埋め込みの国リストを返す。
func Default() *List {
	defaultOnce.Do(func() {
		l, err := Parse(embeddedCountries)
		if err != nil {
			panic(err)
		}
		defaultList = l
	})
	return defaultList
}

// Entries は全エントリのコピーを返す。
func (l *List) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len はエントリ数を返す。
func (l *List) Len() int {
	return len(l.entries)
}

// Lookup は国名で大文字小文字を区別せずに検索する。
func (l *List) Lookup(name string) (Entry, bool) {
	for _, e := range l.entries {
		if strings.EqualFold(e.Label, name) {
			return e, true
		}
	}
	return Entry{}, false
}
