package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/oyaguma3/roaming-admin/pkg/model"
)

// EmptyCell は値がないセルの表示
const EmptyCell = "-"

// Cell は空文字を "-" に置き換える。
func Cell(s string) string {
	if strings.TrimSpace(s) == "" {
		return EmptyCell
	}
	return s
}

// RDC はRDC（パーセンテージ）を "12.5%" 形式で返す。
func RDC(rdc model.FlexString) string {
	if rdc == "" {
		return EmptyCell
	}
	return rdc.String() + "%"
}

// Count は件数を "3 partners" のように単複を合わせて返す。
func Count(n int, singular string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", singular)
	}
	return fmt.Sprintf("%d %ss", n, singular)
}

// ExportFileName はエクスポートファイル名を "partners-20260110-090000.csv" 形式で返す。
func ExportFileName(resource string, now time.Time) string {
	return fmt.Sprintf("%s-%s.csv", resource, now.Format("20060102-150405"))
}
