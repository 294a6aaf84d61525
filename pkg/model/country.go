package model

import "strconv"

// Country は国（OPCO）を表す。
// Partnersは当該国に所属するパートナーIDの一覧。
type Country struct {
	ID       int64        `json:"countryId,omitempty"`
	Name     string       `json:"countryName"`
	Category Category     `json:"category"`
	Partners []PartnerRef `json:"partners,omitempty"`
}

// CountryInput は国の作成・更新リクエストボディを表す。
type CountryInput struct {
	Name     string   `json:"countryName"`
	Category Category `json:"category"`
}

// Input は作成・更新用の入力値を返す。
func (c *Country) Input() CountryInput {
	return CountryInput{Name: c.Name, Category: c.Category}
}

// OwnsPartner は指定IDのパートナーが所属しているかどうかを返す。
func (c *Country) OwnsPartner(partnerID int64) bool {
	for _, ref := range c.Partners {
		if ref.ID == partnerID {
			return true
		}
	}
	return false
}

// IDString はIDを文字列で返す。
func (c *Country) IDString() string {
	return strconv.FormatInt(c.ID, 10)
}
