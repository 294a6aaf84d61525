package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/oyaguma3/roaming-admin/pkg/model"
)

// TariffCSVHeader はパートナー料金表CSVのヘッダー行
var TariffCSVHeader = []string{
	"tariff_id", "partner_id", "partner_name", "country_id", "country_name",
	"local_calls", "receiving_calls", "call_back_home", "sending_sms",
	"data_roaming", "mt", "international_calls", "satellite",
}

// WriteTariffCSV はパートナー料金表をCSV形式で書き込む。任意項目の未設定は空欄。
func WriteTariffCSV(w io.Writer, tariffs []model.Tariff) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(TariffCSVHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, t := range tariffs {
		record := []string{
			strconv.FormatInt(t.ID, 10),
			strconv.FormatInt(t.Partner.ID, 10),
			t.PartnerName,
			strconv.FormatInt(t.Country.ID, 10),
			t.CountryName,
			t.LocalCalls.String(),
			t.ReceivingCalls.String(),
			t.CallBackHome.String(),
			t.SendingSMS.String(),
			model.OptionalRateString(t.DataRoaming),
			model.OptionalRateString(t.MT),
			model.OptionalRateString(t.InternationalCalls),
			model.OptionalRateString(t.Satellite),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record for tariff %d: %w", t.ID, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// OpcoTariffCSVHeader はOPCO料金表CSVのヘッダー行
var OpcoTariffCSVHeader = []string{
	"opco_tariff_id", "country_id", "country_name",
	"local_calls", "receiving_calls", "callback_home", "sms",
	"row_min", "mtn_min", "satellite", "data", "international_calls",
}

// WriteOpcoTariffCSV はOPCO料金表をCSV形式で書き込む。
func WriteOpcoTariffCSV(w io.Writer, tariffs []model.OpcoTariff) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(OpcoTariffCSVHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, t := range tariffs {
		record := []string{
			strconv.FormatInt(t.ID, 10),
			strconv.FormatInt(t.Country.ID, 10),
			t.CountryName,
			t.LocalCalls.String(),
			t.ReceivingCalls.String(),
			t.CallbackHome.String(),
			t.SMS.String(),
			model.OptionalRateString(t.RowMin),
			model.OptionalRateString(t.MTNMin),
			model.OptionalRateString(t.Satellite),
			model.OptionalRateString(t.Data),
			model.OptionalRateString(t.InternationalCalls),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record for opco tariff %d: %w", t.ID, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
