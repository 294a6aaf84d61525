package store

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/oyaguma3/roaming-admin/pkg/model"
)

//go:embed seed.yaml
var defaultSeed []byte

// Seed は起動時に投入するデータを表す。
type Seed struct {
	Countries   []model.Country
	Partners    []model.Partner
	Tariffs     []model.Tariff
	OpcoTariffs []model.OpcoTariff
}

// DefaultSeed は組み込みのシードデータを返す。
func DefaultSeed() (*Seed, error) {
	return ParseSeed(defaultSeed)
}

// LoadSeed はファイルからシードデータを読み込む。pathが空なら組み込みデータを使う。
func LoadSeed(path string) (*Seed, error) {
	if path == "" {
		return DefaultSeed()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return ParseSeed(data)
}

// ParseSeed はYAMLのシードデータを解析する。
// パートナーの所属国は国側のpartnersから導出するため、パートナー側のcountryは省略できる。
func ParseSeed(data []byte) (*Seed, error) {
	var doc seedDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse seed: %w", err)
	}
	return doc.toSeed()
}

type seedDocument struct {
	Countries []struct {
		ID       int64   `yaml:"id"`
		Name     string  `yaml:"name"`
		Category string  `yaml:"category"`
		Partners []int64 `yaml:"partners"`
	} `yaml:"countries"`
	Partners []struct {
		ID          int64  `yaml:"id"`
		Name        string `yaml:"name"`
		Mechanism   string `yaml:"mechanism"`
		NetworkType string `yaml:"networkType"`
		MCC         string `yaml:"mcc"`
		MNC         string `yaml:"mnc"`
		RDC         string `yaml:"rdc"`
	} `yaml:"partners"`
	Tariffs []struct {
		ID           int64      `yaml:"id"`
		Partner      int64      `yaml:"partner"`
		Country      int64      `yaml:"country"`
		Local        model.Rate `yaml:"local"`
		Receiving    model.Rate `yaml:"receiving"`
		CallBackHome model.Rate `yaml:"callBackHome"`
		SMS          model.Rate `yaml:"sms"`
	} `yaml:"tariffs"`
	OpcoTariffs []struct {
		ID           int64      `yaml:"id"`
		Country      int64      `yaml:"country"`
		Local        model.Rate `yaml:"local"`
		Receiving    model.Rate `yaml:"receiving"`
		CallbackHome model.Rate `yaml:"callbackHome"`
		SMS          model.Rate `yaml:"sms"`
	} `yaml:"opcoTariffs"`
}

func (d *seedDocument) toSeed() (*Seed, error) {
	seed := &Seed{}
	owner := make(map[int64]int64)
	countryNames := make(map[int64]string)

	for _, c := range d.Countries {
		cat, ok := model.ParseCategory(c.Category)
		if !ok {
			return nil, fmt.Errorf("seed country %d: unknown category %q", c.ID, c.Category)
		}
		country := model.Country{ID: c.ID, Name: c.Name, Category: cat}
		for _, pid := range c.Partners {
			country.Partners = append(country.Partners, model.PartnerRef{ID: pid})
			owner[pid] = c.ID
		}
		countryNames[c.ID] = c.Name
		seed.Countries = append(seed.Countries, country)
	}

	partnerNames := make(map[int64]string)
	for _, p := range d.Partners {
		partner := model.Partner{
			ID:          p.ID,
			Name:        p.Name,
			Country:     model.CountryRef{ID: owner[p.ID]},
			Mechanism:   model.Mechanism(p.Mechanism),
			NetworkType: model.NetworkType(p.NetworkType),
			MCC:         model.FlexString(p.MCC),
			MNC:         model.FlexString(p.MNC),
			RDC:         model.FlexString(p.RDC),
		}
		partner.Normalize()
		partnerNames[p.ID] = p.Name
		seed.Partners = append(seed.Partners, partner)
	}

	for _, t := range d.Tariffs {
		if _, ok := partnerNames[t.Partner]; !ok {
			return nil, fmt.Errorf("seed tariff %d: unknown partner %d", t.ID, t.Partner)
		}
		seed.Tariffs = append(seed.Tariffs, model.Tariff{
			ID:             t.ID,
			Partner:        model.PartnerRef{ID: t.Partner},
			Country:        model.CountryRef{ID: t.Country},
			PartnerName:    partnerNames[t.Partner],
			CountryName:    countryNames[t.Country],
			LocalCalls:     t.Local,
			ReceivingCalls: t.Receiving,
			CallBackHome:   t.CallBackHome,
			SendingSMS:     t.SMS,
		})
	}

	for _, t := range d.OpcoTariffs {
		name, ok := countryNames[t.Country]
		if !ok {
			return nil, fmt.Errorf("seed opco tariff %d: unknown country %d", t.ID, t.Country)
		}
		seed.OpcoTariffs = append(seed.OpcoTariffs, model.OpcoTariff{
			ID:             t.ID,
			Country:        model.CountryRef{ID: t.Country},
			CountryName:    name,
			LocalCalls:     t.Local,
			ReceivingCalls: t.Receiving,
			CallbackHome:   t.CallbackHome,
			SMS:            t.SMS,
		})
	}
	return seed, nil
}
