package ui

import "fmt"

// Pagination はスライスのページ分割状態を管理する。
type Pagination struct {
	TotalItems  int
	PageSize    int
	CurrentPage int
	// Options は切り替え可能な1ページあたりの行数。
	Options []int
}

// NewPagination は新しいPaginationを生成する。
// pageSizeがoptionsに含まれない場合でもそのまま使用する。
func NewPagination(pageSize int, options ...int) *Pagination {
	if pageSize <= 0 {
		pageSize = 1
	}
	return &Pagination{
		PageSize:    pageSize,
		CurrentPage: 1,
		Options:     options,
	}
}

// SetTotalItems は総アイテム数を設定し、範囲外のページ番号を補正する。
func (p *Pagination) SetTotalItems(total int) {
	p.TotalItems = total
	if p.CurrentPage > p.TotalPages() {
		p.CurrentPage = p.TotalPages()
	}
	if p.CurrentPage < 1 {
		p.CurrentPage = 1
	}
}

// TotalPages は総ページ数を返す。0件でも1ページとして扱う。
func (p *Pagination) TotalPages() int {
	if p.TotalItems == 0 {
		return 1
	}
	return (p.TotalItems + p.PageSize - 1) / p.PageSize
}

// StartIndex は現在のページの開始インデックスを返す。
func (p *Pagination) StartIndex() int {
	return (p.CurrentPage - 1) * p.PageSize
}

// EndIndex は現在のページの終了インデックス（排他的）を返す。
func (p *Pagination) EndIndex() int {
	return min(p.CurrentPage*p.PageSize, p.TotalItems)
}

// NextPage は次のページに移動する。移動できなければfalseを返す。
func (p *Pagination) NextPage() bool {
	if p.CurrentPage < p.TotalPages() {
		p.CurrentPage++
		return true
	}
	return false
}

// PrevPage は前のページに移動する。移動できなければfalseを返す。
func (p *Pagination) PrevPage() bool {
	if p.CurrentPage > 1 {
		p.CurrentPage--
		return true
	}
	return false
}

// FirstPage は最初のページに移動する。
func (p *Pagination) FirstPage() {
	p.CurrentPage = 1
}

// SetPageSize は1ページあたりの行数を変更し、最初のページに戻る。
func (p *Pagination) SetPageSize(size int) {
	if size <= 0 {
		return
	}
	p.PageSize = size
	p.FirstPage()
}

// CyclePageSize はOptionsの次の行数に切り替え、新しい行数を返す。
// 現在の行数がOptionsにない場合は先頭の選択肢に切り替える。
func (p *Pagination) CyclePageSize() int {
	if len(p.Options) == 0 {
		return p.PageSize
	}
	next := p.Options[0]
	for i, opt := range p.Options {
		if opt == p.PageSize {
			next = p.Options[(i+1)%len(p.Options)]
			break
		}
	}
	p.SetPageSize(next)
	return next
}

// GetPageItems はスライスから現在のページのアイテムを取得する。
func GetPageItems[T any](items []T, p *Pagination) []T {
	p.SetTotalItems(len(items))
	start := p.StartIndex()
	if start >= len(items) {
		return []T{}
	}
	return items[start:p.EndIndex()]
}

// FormatPageInfo はページ情報の文字列を生成する。
func (p *Pagination) FormatPageInfo() string {
	if p.TotalItems == 0 {
		return "No items"
	}
	return fmt.Sprintf("%d-%d of %d (Page %d/%d, %d rows)",
		p.StartIndex()+1, p.EndIndex(), p.TotalItems, p.CurrentPage, p.TotalPages(), p.PageSize)
}
