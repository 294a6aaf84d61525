package model

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Mechanism はローミング料金の精算方式を表す。
type Mechanism string

// 精算方式
const (
	MechanismSRDC Mechanism = "SRDC"
	MechanismLBTR Mechanism = "LBTR"
)

// Mechanisms は全精算方式を返す。
func Mechanisms() []Mechanism {
	return []Mechanism{MechanismSRDC, MechanismLBTR}
}

// NetworkType はLBTR方式で使用するネットワーク種別を表す。
type NetworkType string

// ネットワーク種別
const (
	NetworkTypeF NetworkType = "F"
	NetworkTypeP NetworkType = "P"
	NetworkTypeN NetworkType = "N"
)

// NetworkTypes は全ネットワーク種別を返す。
func NetworkTypes() []NetworkType {
	return []NetworkType{NetworkTypeF, NetworkTypeP, NetworkTypeN}
}

// FlexString はJSONの文字列・数値どちらからでも読み込める文字列。
// MCC/MNC/RDCはバックエンドによって数値で返されることがある。
type FlexString string

// UnmarshalJSON はjson.Unmarshalerを実装する。
func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = FlexString(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*s = FlexString(num.String())
	return nil
}

// String は文字列値を返す。
func (s FlexString) String() string {
	return string(s)
}

// CountryRef は国への参照（ID）を表す。
type CountryRef struct {
	ID int64 `json:"countryId"`
}

// PartnerRef はパートナーへの参照（ID）を表す。
type PartnerRef struct {
	ID int64 `json:"partnerId"`
}

// Partner はローミングパートナーを表す。
type Partner struct {
	ID          int64       `json:"partnerId,omitempty"`
	Name        string      `json:"partnerName"`
	Country     CountryRef  `json:"country"`
	Mechanism   Mechanism   `json:"mechanism"`
	NetworkType NetworkType `json:"networkType,omitempty"`
	MCC         FlexString  `json:"mcc"`
	MNC         FlexString  `json:"mnc"`
	RDC         FlexString  `json:"rdc,omitempty"`
}

// Normalize は精算方式に応じて不要なフィールドをクリアする。
// SRDCではRDCのみ、LBTRではNetworkTypeのみを保持する。
func (p *Partner) Normalize() {
	switch p.Mechanism {
	case MechanismSRDC:
		p.NetworkType = ""
	case MechanismLBTR:
		p.RDC = ""
	default:
		p.NetworkType = ""
		p.RDC = ""
	}
}

// IDString はIDを文字列で返す。
func (p *Partner) IDString() string {
	return strconv.FormatInt(p.ID, 10)
}

// MergedPartner はパートナーと所属国を突き合わせた一覧行を表す。
type MergedPartner struct {
	ID          int64       `json:"id"`
	PartnerName string      `json:"partnerName"`
	CountryName string      `json:"countryName"`
	Category    string      `json:"category"`
	NetworkType NetworkType `json:"networkType"`
	RDC         FlexString  `json:"rdc"`
}
