package reconcile

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/api"
	"github.com/oyaguma3/roaming-admin/pkg/logging"
	"github.com/oyaguma3/roaming-admin/pkg/model"
)

// Snapshot は1回の取得サイクルで得たデータと突き合わせ結果を保持する。
type Snapshot struct {
	Partners  []model.Partner
	Countries []model.Country
	Merged    []model.MergedPartner
	Index     *Index
	// Err は取得に失敗したコレクションのエラー。失敗した側は空として扱われている。
	Err error
}

// Loader はパートナーと国を同時に取得し、突き合わせる。
type Loader struct {
	source Source
}

// NewLoader は新しいLoaderを生成する。
func NewLoader(source Source) *Loader {
	return &Loader{source: source}
}

// Load はパートナーと国を並行して取得し、両方の完了後に突き合わせる。
// 取得に失敗したコレクションは空として扱い、エラーはSnapshot.Errに格納する。
func (l *Loader) Load(ctx context.Context) *Snapshot {
	var (
		partners             []model.Partner
		countries            []model.Country
		partnerErr, countErr error
	)

	var g errgroup.Group
	g.Go(func() error {
		partners, partnerErr = api.FetchList(ctx, api.ResourcePartners, l.source.ListPartners)
		return nil
	})
	g.Go(func() error {
		countries, countErr = api.FetchList(ctx, api.ResourceCountries, l.source.ListCountries)
		return nil
	})
	_ = g.Wait()

	idx := NewIndex(countries)
	snap := &Snapshot{
		Partners:  partners,
		Countries: countries,
		Merged:    idx.Merge(partners),
		Index:     idx,
		Err:       errors.Join(partnerErr, countErr),
	}

	if unresolved := idx.Unresolved(partners); len(unresolved) > 0 {
		slog.Debug("partners without owning country",
			logging.WithEventID("RECONCILE_UNRESOLVED"),
			logging.WithCount(len(unresolved)),
			slog.Any("partner_ids", unresolved),
		)
	}

	return snap
}
