package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/oyaguma3/roaming-admin/pkg/model"
)

// CountryCSVHeader は国一覧CSVのヘッダー行
var CountryCSVHeader = []string{"id", "country_name", "category", "partner_count"}

// WriteCountryCSV は国一覧をCSV形式で書き込む。
func WriteCountryCSV(w io.Writer, countries []model.Country) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(CountryCSVHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, c := range countries {
		record := []string{
			strconv.FormatInt(c.ID, 10),
			c.Name,
			string(c.Category),
			strconv.Itoa(len(c.Partners)),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record for country %d: %w", c.ID, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
