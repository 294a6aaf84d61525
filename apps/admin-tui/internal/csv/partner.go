// Package csv は一覧データのCSVエクスポートを提供する。
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/oyaguma3/roaming-admin/pkg/model"
)

// PartnerCSVHeader はパートナー一覧CSVのヘッダー行
var PartnerCSVHeader = []string{"id", "partner_name", "country_name", "category", "network_type", "rdc"}

// WritePartnerCSV は所属国と突き合わせたパートナー一覧をCSV形式で書き込む。
func WritePartnerCSV(w io.Writer, rows []model.MergedPartner) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(PartnerCSVHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			strconv.FormatInt(row.ID, 10),
			row.PartnerName,
			row.CountryName,
			row.Category,
			string(row.NetworkType),
			row.RDC.String(),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record for partner %d: %w", row.ID, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
