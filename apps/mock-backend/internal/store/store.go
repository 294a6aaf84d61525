// Package store はmock-backendのインメモリデータストアを提供する。
// パートナー・国・料金表の参照整合性はここで維持する。
package store

import (
	"fmt"
	"slices"
	"sync"

	"github.com/oyaguma3/roaming-admin/pkg/apperr"
	"github.com/oyaguma3/roaming-admin/pkg/model"
)

// Store はインメモリのデータストア。
type Store struct {
	mu          sync.RWMutex
	partners    []model.Partner
	countries   []model.Country
	tariffs     []model.Tariff
	opcoTariffs []model.OpcoTariff
	nextID      map[string]int64
}

// コレクション名（ID採番用）
const (
	partnersKey    = "partners"
	countriesKey   = "countries"
	tariffsKey     = "tariffs"
	opcoTariffsKey = "opco-tariffs"
)

// New はシードデータから新しいStoreを生成する。
func New(seed *Seed) *Store {
	s := &Store{nextID: map[string]int64{}}
	if seed == nil {
		seed = &Seed{}
	}
	s.countries = slices.Clone(seed.Countries)
	s.partners = slices.Clone(seed.Partners)
	s.tariffs = slices.Clone(seed.Tariffs)
	s.opcoTariffs = slices.Clone(seed.OpcoTariffs)

	for _, c := range s.countries {
		s.bump(countriesKey, c.ID)
	}
	for _, p := range s.partners {
		s.bump(partnersKey, p.ID)
	}
	for _, t := range s.tariffs {
		s.bump(tariffsKey, t.ID)
	}
	for _, t := range s.opcoTariffs {
		s.bump(opcoTariffsKey, t.ID)
	}
	return s
}

func (s *Store) bump(key string, id int64) {
	if id >= s.nextID[key] {
		s.nextID[key] = id + 1
	}
}

func (s *Store) allocate(key string) int64 {
	if s.nextID[key] == 0 {
		s.nextID[key] = 1
	}
	id := s.nextID[key]
	s.nextID[key]++
	return id
}

func notFound(resource string, id int64) error {
	return fmt.Errorf("%w: %s %d", apperr.ErrNotFound, resource, id)
}

// --- partners ---

// ListPartners は全パートナーを返す。
func (s *Store) ListPartners() []model.Partner {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.partners)
}

// GetPartner はパートナーを取得する。
func (s *Store) GetPartner(id int64) (model.Partner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.partnerIndex(id)
	if i < 0 {
		return model.Partner{}, notFound("partner", id)
	}
	return s.partners[i], nil
}

// CreatePartner はパートナーを登録し、所属国のパートナー一覧に追加する。
func (s *Store) CreatePartner(p model.Partner) (model.Partner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ci := s.countryIndex(p.Country.ID)
	if ci < 0 {
		return model.Partner{}, fmt.Errorf("%w: country %d", apperr.ErrCountryUnresolved, p.Country.ID)
	}
	p.Normalize()
	p.ID = s.allocate(partnersKey)
	s.partners = append(s.partners, p)
	s.countries[ci].Partners = append(s.countries[ci].Partners, model.PartnerRef{ID: p.ID})
	return p, nil
}

// UpdatePartner はパートナーを更新する。所属国が変わった場合は国側の一覧も付け替える。
func (s *Store) UpdatePartner(id int64, p model.Partner) (model.Partner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.partnerIndex(id)
	if i < 0 {
		return model.Partner{}, notFound("partner", id)
	}
	ci := s.countryIndex(p.Country.ID)
	if ci < 0 {
		return model.Partner{}, fmt.Errorf("%w: country %d", apperr.ErrCountryUnresolved, p.Country.ID)
	}

	p.ID = id
	p.Normalize()
	s.detachPartner(id)
	s.countries[ci].Partners = append(s.countries[ci].Partners, model.PartnerRef{ID: id})
	s.partners[i] = p

	for j := range s.tariffs {
		if s.tariffs[j].Partner.ID == id {
			s.tariffs[j].PartnerName = p.Name
		}
	}
	return p, nil
}

// DeletePartner はパートナーを削除する。料金表が紐づく場合はErrConflict。
func (s *Store) DeletePartner(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.partnerIndex(id)
	if i < 0 {
		return notFound("partner", id)
	}
	for _, t := range s.tariffs {
		if t.Partner.ID == id {
			return fmt.Errorf("%w: partner %d has tariffs", apperr.ErrConflict, id)
		}
	}
	s.partners = slices.Delete(s.partners, i, i+1)
	s.detachPartner(id)
	return nil
}

func (s *Store) partnerIndex(id int64) int {
	return slices.IndexFunc(s.partners, func(p model.Partner) bool { return p.ID == id })
}

// detachPartner は全ての国のパートナー一覧からidを取り除く。
func (s *Store) detachPartner(id int64) {
	for i := range s.countries {
		s.countries[i].Partners = slices.DeleteFunc(s.countries[i].Partners, func(ref model.PartnerRef) bool {
			return ref.ID == id
		})
	}
}

// --- countries ---

// ListCountries は全ての国を返す。
func (s *Store) ListCountries() []model.Country {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Country, len(s.countries))
	for i, c := range s.countries {
		c.Partners = slices.Clone(c.Partners)
		out[i] = c
	}
	return out
}

// GetCountry は国を取得する。
func (s *Store) GetCountry(id int64) (model.Country, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.countryIndex(id)
	if i < 0 {
		return model.Country{}, notFound("country", id)
	}
	c := s.countries[i]
	c.Partners = slices.Clone(c.Partners)
	return c, nil
}

// CreateCountry は国を登録する。
func (s *Store) CreateCountry(in model.CountryInput) (model.Country, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := model.Country{
		ID:       s.allocate(countriesKey),
		Name:     in.Name,
		Category: in.Category,
	}
	s.countries = append(s.countries, c)
	return c, nil
}

// UpdateCountry は国名とカテゴリを更新する。所属パートナーは変更しない。
func (s *Store) UpdateCountry(id int64, in model.CountryInput) (model.Country, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.countryIndex(id)
	if i < 0 {
		return model.Country{}, notFound("country", id)
	}
	s.countries[i].Name = in.Name
	s.countries[i].Category = in.Category

	for j := range s.tariffs {
		if s.tariffs[j].Country.ID == id {
			s.tariffs[j].CountryName = in.Name
		}
	}
	for j := range s.opcoTariffs {
		if s.opcoTariffs[j].Country.ID == id {
			s.opcoTariffs[j].CountryName = in.Name
		}
	}
	c := s.countries[i]
	c.Partners = slices.Clone(c.Partners)
	return c, nil
}

// DeleteCountry は国を削除する。OPCO料金表が紐づく場合はErrConflict。
// 所属していたパートナーは残り、どの国にも属さない状態になる。
func (s *Store) DeleteCountry(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.countryIndex(id)
	if i < 0 {
		return notFound("country", id)
	}
	for _, t := range s.opcoTariffs {
		if t.Country.ID == id {
			return fmt.Errorf("%w: country %d has opco tariffs", apperr.ErrConflict, id)
		}
	}
	s.countries = slices.Delete(s.countries, i, i+1)
	return nil
}

func (s *Store) countryIndex(id int64) int {
	return slices.IndexFunc(s.countries, func(c model.Country) bool { return c.ID == id })
}

// --- tariffs ---

// ListTariffs は全てのパートナー料金表を返す。
func (s *Store) ListTariffs() []model.Tariff {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.tariffs)
}

// GetTariff はパートナー料金表を取得する。
func (s *Store) GetTariff(id int64) (model.Tariff, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := slices.IndexFunc(s.tariffs, func(x model.Tariff) bool { return x.ID == id })
	if i < 0 {
		return model.Tariff{}, notFound("tariff", id)
	}
	return s.tariffs[i], nil
}

// CreateTariff はパートナー料金表を登録する。パートナー名と国名はストアの値で埋める。
func (s *Store) CreateTariff(t model.Tariff) (model.Tariff, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fillTariff(&t); err != nil {
		return model.Tariff{}, err
	}
	t.ID = s.allocate(tariffsKey)
	s.tariffs = append(s.tariffs, t)
	return t, nil
}

// UpdateTariff はパートナー料金表を更新する。
func (s *Store) UpdateTariff(id int64, t model.Tariff) (model.Tariff, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.tariffs, func(x model.Tariff) bool { return x.ID == id })
	if i < 0 {
		return model.Tariff{}, notFound("tariff", id)
	}
	if err := s.fillTariff(&t); err != nil {
		return model.Tariff{}, err
	}
	t.ID = id
	s.tariffs[i] = t
	return t, nil
}

// DeleteTariff はパートナー料金表を削除する。
func (s *Store) DeleteTariff(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.tariffs, func(x model.Tariff) bool { return x.ID == id })
	if i < 0 {
		return notFound("tariff", id)
	}
	s.tariffs = slices.Delete(s.tariffs, i, i+1)
	return nil
}

func (s *Store) fillTariff(t *model.Tariff) error {
	pi := s.partnerIndex(t.Partner.ID)
	if pi < 0 {
		return fmt.Errorf("%w: partner %d", apperr.ErrPartnerUnresolved, t.Partner.ID)
	}
	ci := s.countryIndex(t.Country.ID)
	if ci < 0 {
		return fmt.Errorf("%w: country %d", apperr.ErrCountryUnresolved, t.Country.ID)
	}
	t.PartnerName = s.partners[pi].Name
	t.CountryName = s.countries[ci].Name
	return nil
}

// --- opco tariffs ---

// ListOpcoTariffs は全てのOPCO料金表を返す。
func (s *Store) ListOpcoTariffs() []model.OpcoTariff {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.opcoTariffs)
}

// GetOpcoTariff はOPCO料金表を取得する。
func (s *Store) GetOpcoTariff(id int64) (model.OpcoTariff, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := slices.IndexFunc(s.opcoTariffs, func(x model.OpcoTariff) bool { return x.ID == id })
	if i < 0 {
		return model.OpcoTariff{}, notFound("opco tariff", id)
	}
	return s.opcoTariffs[i], nil
}

// CreateOpcoTariff はOPCO料金表を登録する。
func (s *Store) CreateOpcoTariff(t model.OpcoTariff) (model.OpcoTariff, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ci := s.countryIndex(t.Country.ID)
	if ci < 0 {
		return model.OpcoTariff{}, fmt.Errorf("%w: country %d", apperr.ErrCountryUnresolved, t.Country.ID)
	}
	t.CountryName = s.countries[ci].Name
	t.ID = s.allocate(opcoTariffsKey)
	s.opcoTariffs = append(s.opcoTariffs, t)
	return t, nil
}

// UpdateOpcoTariff はOPCO料金表を更新する。
func (s *Store) UpdateOpcoTariff(id int64, t model.OpcoTariff) (model.OpcoTariff, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.opcoTariffs, func(x model.OpcoTariff) bool { return x.ID == id })
	if i < 0 {
		return model.OpcoTariff{}, notFound("opco tariff", id)
	}
	ci := s.countryIndex(t.Country.ID)
	if ci < 0 {
		return model.OpcoTariff{}, fmt.Errorf("%w: country %d", apperr.ErrCountryUnresolved, t.Country.ID)
	}
	t.ID = id
	t.CountryName = s.countries[ci].Name
	s.opcoTariffs[i] = t
	return t, nil
}

// DeleteOpcoTariff はOPCO料金表を削除する。
func (s *Store) DeleteOpcoTariff(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.opcoTariffs, func(x model.OpcoTariff) bool { return x.ID == id })
	if i < 0 {
		return notFound("opco tariff", id)
	}
	s.opcoTariffs = slices.Delete(s.opcoTariffs, i, i+1)
	return nil
}
