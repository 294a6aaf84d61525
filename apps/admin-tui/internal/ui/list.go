package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/format"
)

const searchDialogPage = "search-dialog"

// Column は一覧テーブルの列定義を表す。
type Column[T any] struct {
	Header string
	Value  func(T) string
	// Color はセルの文字色。nilの場合はColorText。
	Color func(T) tcell.Color
	// MaxWidth は表示する最大文字数。0は無制限。
	MaxWidth int
}

// ListView は検索・ページング付きの一覧テーブルを表す。
// 各リソースの一覧画面はこれに列定義とコールバックを与えて構成する。
type ListView[T any] struct {
	table        *tview.Table
	app          *App
	title        string
	columns      []Column[T]
	items        []T
	filter       *Filter
	searchValues func(T) []string
	pagination   *Pagination

	onCreate  func()
	onEdit    func(T)
	onDelete  func(T)
	onView    func(T)
	onBack    func()
	onRefresh func()
	onSearch  func(query string, results int)
}

// NewListView は新しいListViewを生成する。
func NewListView[T any](app *App, title string, pageSize int, pageSizeOptions []int, columns []Column[T]) *ListView[T] {
	table := tview.NewTable().
		SetBorders(false).
		SetSelectable(true, false).
		SetFixed(1, 0)

	table.SetTitleAlign(tview.AlignCenter).
		SetBorder(true).
		SetBorderColor(ColorBorder)

	l := &ListView[T]{
		table:      table,
		app:        app,
		title:      title,
		columns:    columns,
		filter:     NewFilter(""),
		pagination: NewPagination(pageSize, pageSizeOptions...),
	}
	table.SetInputCapture(l.handleKey)
	l.render()
	return l
}

// SetSearch は検索対象の表示名と値の取り出し方を設定する。
func (l *ListView[T]) SetSearch(field string, values func(T) []string) {
	l.filter.Field = field
	l.searchValues = values
}

// SetOnCreate は追加時のコールバックを設定する。
func (l *ListView[T]) SetOnCreate(handler func()) { l.onCreate = handler }

// SetOnEdit は編集時のコールバックを設定する。
func (l *ListView[T]) SetOnEdit(handler func(T)) { l.onEdit = handler }

// SetOnDelete は削除時のコールバックを設定する。
func (l *ListView[T]) SetOnDelete(handler func(T)) { l.onDelete = handler }

// SetOnView は詳細表示時のコールバックを設定する。
func (l *ListView[T]) SetOnView(handler func(T)) { l.onView = handler }

// SetOnBack は戻る時のコールバックを設定する。
func (l *ListView[T]) SetOnBack(handler func()) { l.onBack = handler }

// SetOnRefresh は再読み込み時のコールバックを設定する。
func (l *ListView[T]) SetOnRefresh(handler func()) { l.onRefresh = handler }

// SetOnSearch は検索実行時のコールバックを設定する。
func (l *ListView[T]) SetOnSearch(handler func(query string, results int)) { l.onSearch = handler }

// GetTable は内部のtview.Tableを返す。
func (l *ListView[T]) GetTable() *tview.Table {
	return l.table
}

// SetItems は表示するアイテムを差し替える。検索条件とページ位置は維持する。
func (l *ListView[T]) SetItems(items []T) {
	l.items = items
	l.render()
}

// Items は全アイテムを返す。
func (l *ListView[T]) Items() []T {
	return l.items
}

// Visible は検索条件にマッチするアイテムを返す。
func (l *ListView[T]) Visible() []T {
	if l.searchValues == nil {
		return l.items
	}
	return FilterItems(l.items, l.filter, l.searchValues)
}

// PageItems は現在のページに表示しているアイテムを返す。
func (l *ListView[T]) PageItems() []T {
	return GetPageItems(l.Visible(), l.pagination)
}

// Pagination はページネーション状態を返す。
func (l *ListView[T]) Pagination() *Pagination {
	return l.pagination
}

// Filter は検索状態を返す。
func (l *ListView[T]) Filter() *Filter {
	return l.filter
}

// Search は検索条件を設定して最初のページに戻り、マッチ件数を返す。
func (l *ListView[T]) Search(query string) int {
	l.filter.SetQuery(query)
	l.pagination.FirstPage()
	l.render()
	n := len(l.Visible())
	if l.onSearch != nil && l.filter.Active {
		l.onSearch(l.filter.Query, n)
	}
	return n
}

// ClearSearch は検索条件を解除する。
func (l *ListView[T]) ClearSearch() {
	l.filter.Clear()
	l.pagination.FirstPage()
	l.render()
}

// Selected は選択中の行のアイテムを返す。
func (l *ListView[T]) Selected() (T, bool) {
	var zero T
	row, _ := l.table.GetSelection()
	page := l.PageItems()
	idx := row - 1
	if idx < 0 || idx >= len(page) {
		return zero, false
	}
	return page[idx], true
}

func (l *ListView[T]) render() {
	l.table.Clear()

	for col, c := range l.columns {
		l.table.SetCell(0, col, tview.NewTableCell(c.Header).
			SetTextColor(ColorHeader).
			SetSelectable(false).
			SetExpansion(1))
	}

	page := l.PageItems()
	for i, item := range page {
		for col, c := range l.columns {
			color := ColorText
			if c.Color != nil {
				color = c.Color(item)
			}
			text := c.Value(item)
			if c.MaxWidth > 0 {
				text = format.Truncate(text, c.MaxWidth)
			}
			l.table.SetCell(i+1, col, tview.NewTableCell(tview.Escape(text)).
				SetTextColor(color).
				SetExpansion(1))
		}
	}

	title := " " + l.title + " "
	if l.filter.Active {
		title += "[yellow](" + tview.Escape(l.filter.FormatFilterStatus()) + ")[-] "
	}
	title += "[gray]" + l.pagination.FormatPageInfo() + "[-] "
	l.table.SetTitle(title)

	if len(page) > 0 {
		l.table.Select(1, 0)
	}
}

func (l *ListView[T]) withSelected(handler func(T)) {
	if handler == nil {
		return
	}
	if item, ok := l.Selected(); ok {
		handler(item)
	}
}

func (l *ListView[T]) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEsc:
		if l.filter.Active {
			l.ClearSearch()
			return nil
		}
		if l.onBack != nil {
			l.onBack()
		}
		return nil
	case KeyCreate:
		if l.onCreate != nil {
			l.onCreate()
		}
		return nil
	case KeyEdit:
		l.withSelected(l.onEdit)
		return nil
	case KeyDelete:
		l.withSelected(l.onDelete)
		return nil
	case KeyRefresh:
		if l.onRefresh != nil {
			l.onRefresh()
		}
		return nil
	case tcell.KeyPgUp:
		if l.pagination.PrevPage() {
			l.render()
		}
		return nil
	case tcell.KeyPgDn:
		if l.pagination.NextPage() {
			l.render()
		}
		return nil
	case tcell.KeyEnter:
		l.withSelected(l.onView)
		return nil
	case tcell.KeyRune:
	default:
		return event
	}

	switch event.Rune() {
	case RuneCreate:
		if l.onCreate != nil {
			l.onCreate()
		}
	case RuneEdit:
		l.withSelected(l.onEdit)
	case RuneDelete:
		l.withSelected(l.onDelete)
	case RuneView:
		l.withSelected(l.onView)
	case RuneRefresh:
		if l.onRefresh != nil {
			l.onRefresh()
		}
	case RunePageSize:
		l.pagination.CyclePageSize()
		l.render()
	case RuneSearch:
		if l.searchValues != nil {
			l.showSearchDialog()
		}
	case RuneBack:
		if l.onBack != nil {
			l.onBack()
		}
	default:
		return event
	}
	return nil
}

func (l *ListView[T]) showSearchDialog() {
	if l.app == nil {
		return
	}
	dialog := NewInputDialog(
		"Search "+l.title,
		l.filter.Field+":",
		l.filter.Query,
		func(value string) {
			l.app.CloseModal(searchDialogPage, l.table)
			l.Search(value)
		},
		func() {
			l.app.CloseModal(searchDialogPage, l.table)
		},
	)
	l.app.ShowModal(searchDialogPage, Centered(dialog.GetForm(), 54, 7))
}
