package api

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/oyaguma3/roaming-admin/pkg/logging"
)

// FetchList は一覧取得関数を呼び出し、失敗時は空スライスとエラーを返す。
// 一覧画面は取得失敗時も空の表を表示し、エラーはステータスバーとログにのみ出す。
func FetchList[T any](ctx context.Context, resource string, fetch func(context.Context) ([]T, error)) ([]T, error) {
	items, err := fetch(ctx)
	if err != nil {
		slog.Error("failed to fetch collection",
			logging.WithEventID("API_FETCH_ERR"),
			logging.WithResource(resource),
			logging.WithError(err),
		)
		return []T{}, fmt.Errorf("fetch %s: %w", resource, err)
	}
	if items == nil {
		items = []T{}
	}
	slog.Debug("collection fetched",
		logging.WithResource(resource),
		logging.WithCount(len(items)),
	)
	return items, nil
}
