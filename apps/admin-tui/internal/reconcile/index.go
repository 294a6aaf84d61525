package reconcile

import "github.com/oyaguma3/roaming-admin/pkg/model"

// Index はパートナーIDから所属国を引く索引。
// 取得サイクルごとに一度だけ構築し、行ごとの線形走査を避ける。
type Index struct {
	byPartner map[int64]model.Country
}

// NewIndex は国一覧から索引を構築する。
// 同じパートナーIDを複数の国が含む場合は先に現れた国を採用する。
func NewIndex(countries []model.Country) *Index {
	idx := &Index{byPartner: make(map[int64]model.Country)}
	for _, c := range countries {
		for _, ref := range c.Partners {
			if _, exists := idx.byPartner[ref.ID]; !exists {
				idx.byPartner[ref.ID] = c
			}
		}
	}
	return idx
}

// CountryOf はパートナーの所属国を返す。
func (idx *Index) CountryOf(partnerID int64) (model.Country, bool) {
	c, ok := idx.byPartner[partnerID]
	return c, ok
}

// Len は索引に登録されたパートナー数を返す。
func (idx *Index) Len() int {
	return len(idx.byPartner)
}

// Merge はパートナー一覧を一覧表示用の行に変換する。
func (idx *Index) Merge(partners []model.Partner) []model.MergedPartner {
	rows := make([]model.MergedPartner, 0, len(partners))
	for _, p := range partners {
		row := model.MergedPartner{
			ID:          p.ID,
			PartnerName: p.Name,
			CountryName: Unknown,
			Category:    Unknown,
			NetworkType: p.NetworkType,
			RDC:         p.RDC,
		}
		if c, ok := idx.CountryOf(p.ID); ok {
			row.CountryName = c.Name
			row.Category = string(c.Category)
		}
		rows = append(rows, row)
	}
	return rows
}

// Unresolved は所属国を解決できないパートナーのIDを返す。
func (idx *Index) Unresolved(partners []model.Partner) []int64 {
	var ids []int64
	for _, p := range partners {
		if _, ok := idx.byPartner[p.ID]; !ok {
			ids = append(ids, p.ID)
		}
	}
	return ids
}

// CountryForPartner は料金表登録時の国を決定する。
// 索引で解決できない場合はパートナー自身の国参照を使う。
func (idx *Index) CountryForPartner(p model.Partner, countries []model.Country) (model.Country, bool) {
	if c, ok := idx.CountryOf(p.ID); ok {
		return c, true
	}
	if p.Country.ID == 0 {
		return model.Country{}, false
	}
	for _, c := range countries {
		if c.ID == p.Country.ID {
			return c, true
		}
	}
	return model.Country{}, false
}
