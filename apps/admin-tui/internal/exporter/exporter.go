// Package exporter は一覧データのCSVスナップショットを出力する。
// TUIのエクスポート画面とexportサブコマンドの両方から使用する。
package exporter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/api"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/audit"
	csvpkg "github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/csv"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/reconcile"
)

// ErrUnknownResource は未定義のリソース名が指定された場合のエラー
var ErrUnknownResource = errors.New("unknown export resource")

// Resource はエクスポート対象の種別を表す。
type Resource string

// エクスポート対象
const (
	ResourcePartners    Resource = Resource(api.ResourcePartners)
	ResourceCountries   Resource = Resource(api.ResourceCountries)
	ResourceTariffs     Resource = Resource(api.ResourceTariffs)
	ResourceOpcoTariffs Resource = Resource(api.ResourceOpcoTariffs)
)

// Resources は全エクスポート対象を画面の表示順で返す。
func Resources() []Resource {
	return []Resource{ResourceCountries, ResourcePartners, ResourceTariffs, ResourceOpcoTariffs}
}

// ParseResource はリソース名またはラベルをResourceに変換する。
func ParseResource(s string) (Resource, error) {
	s = strings.TrimSpace(s)
	for _, r := range Resources() {
		if strings.EqualFold(string(r), s) || strings.EqualFold(r.Label(), s) {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownResource, s)
}

// Label は画面表示用のラベルを返す。
func (r Resource) Label() string {
	switch r {
	case ResourcePartners:
		return "Partners"
	case ResourceCountries:
		return "Opcos"
	case ResourceTariffs:
		return "Partner Tariffs"
	case ResourceOpcoTariffs:
		return "Opco Tariffs"
	}
	return string(r)
}

// AuditTarget は監査ログの対象種別を返す。
func (r Resource) AuditTarget() audit.TargetType {
	switch r {
	case ResourcePartners:
		return audit.TargetPartner
	case ResourceCountries:
		return audit.TargetCountry
	case ResourceTariffs:
		return audit.TargetTariff
	default:
		return audit.TargetOpcoTariff
	}
}

// Exporter はバックエンドから一覧を取得してCSVに書き出す。
type Exporter struct {
	source Source
	loader *reconcile.Loader
}

// New は新しいExporterを生成する。
func New(source Source) *Exporter {
	return &Exporter{
		source: source,
		loader: reconcile.NewLoader(source),
	}
}

// Write は指定リソースの一覧をCSV形式でwに書き込み、出力した行数を返す。
// 一覧画面と異なり、取得失敗は空のファイルにせずエラーとして返す。
func (e *Exporter) Write(ctx context.Context, r Resource, w io.Writer) (int, error) {
	switch r {
	case ResourcePartners:
		snap := e.loader.Load(ctx)
		if snap.Err != nil {
			return 0, snap.Err
		}
		return len(snap.Merged), csvpkg.WritePartnerCSV(w, snap.Merged)

	case ResourceCountries:
		countries, err := e.source.ListCountries(ctx)
		if err != nil {
			return 0, fmt.Errorf("fetch %s: %w", r, err)
		}
		return len(countries), csvpkg.WriteCountryCSV(w, countries)

	case ResourceTariffs:
		tariffs, err := e.source.ListTariffs(ctx)
		if err != nil {
			return 0, fmt.Errorf("fetch %s: %w", r, err)
		}
		return len(tariffs), csvpkg.WriteTariffCSV(w, tariffs)

	case ResourceOpcoTariffs:
		tariffs, err := e.source.ListOpcoTariffs(ctx)
		if err != nil {
			return 0, fmt.Errorf("fetch %s: %w", r, err)
		}
		return len(tariffs), csvpkg.WriteOpcoTariffCSV(w, tariffs)
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownResource, string(r))
}

// ToFile は指定リソースの一覧をpathに書き出す。
// 書き込みに失敗した場合は作成途中のファイルを削除する。
func (e *Exporter) ToFile(ctx context.Context, r Resource, path string) (int, error) {
	if strings.TrimSpace(path) == "" {
		return 0, errors.New("output file path is required")
	}
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", path, err)
	}

	n, err := e.Write(ctx, r, f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return 0, err
	}
	return n, nil
}

var _ Source = (*api.Client)(nil)
