package holiday

import "fmt"

// Type classifies a Thai public holiday for calendar rendering.
type Type string

const (
	TypePublic    Type = "public"
	TypeRoyal     Type = "royal"
	TypeReligious Type = "religious"
	TypeSpecial   Type = "special"
)

type Holiday struct {
	Date   string `json:"date"`
	Name   string `json:"name"`
	NameEn string `json:"name_en"`
	Type   Type   `json:"type"`
}

// holidays2025 is the curated Thai holiday calendar for 2025.
var holidays2025 = []Holiday{
	{Date: "2025-01-01", Name: "วันขึ้นปีใหม่", NameEn: "New Year's Day", Type: TypePublic},
	{Date: "2025-02-12", Name: "วันตรุษจีน", NameEn: "Chinese New Year", Type: TypeSpecial},
	{Date: "2025-02-26", Name: "วันมาฆบูชา", NameEn: "Makha Bucha Day", Type: TypeReligious},
	{Date: "2025-04-06", Name: "วันจักรี", NameEn: "Chakri Day", Type: TypeRoyal},
	{Date: "2025-04-13", Name: "วันสงกรานต์", NameEn: "Songkran Festival", Type: TypePublic},
	{Date: "2025-04-14", Name: "วันสงกรานต์", NameEn: "Songkran Festival", Type: TypePublic},
	{Date: "2025-04-15", Name: "วันสงกรานต์", NameEn: "Songkran Festival", Type: TypePublic},
	{Date: "2025-05-01", Name: "วันแรงงานแห่งชาติ", NameEn: "National Labour Day", Type: TypePublic},
	{Date: "2025-05-05", Name: "วันฉัตรมงคล", NameEn: "Coronation Day", Type: TypeRoyal},
	{Date: "2025-05-11", Name: "วันวิสาขบูชา", NameEn: "Visakha Bucha Day", Type: TypeReligious},
	{Date: "2025-06-03", Name: "วันเฉลิมพระชนมพรรษาสมเด็จพระนางเจ้าสุทิดา", NameEn: "Queen Suthida's Birthday", Type: TypeRoyal},
	{Date: "2025-07-08", Name: "วันอาสาฬหบูชา", NameEn: "Asanha Bucha Day", Type: TypeReligious},
	{Date: "2025-07-09", Name: "วันเข้าพรรษา", NameEn: "Buddhist Lent Day", Type: TypeReligious},
	{Date: "2025-07-28", Name: "วันเฉลิมพระชนมพรรษาพระบาทสมเด็จพระเจ้าอยู่หัว", NameEn: "King's Birthday", Type: TypeRoyal},
	{Date: "2025-08-12", Name: "วันเฉลิมพระชนมพรรษาสมเด็จพระนางเจ้าสิริกิติ์", NameEn: "Queen Mother's Birthday", Type: TypeRoyal},
	{Date: "2025-10-13", Name: "วันคล้ายวันสวรรคตพระบาทสมเด็จพระบรมชนกาธิเบศร", NameEn: "King Bhumibol Memorial Day", Type: TypeRoyal},
	{Date: "2025-10-23", Name: "วันปิยมหาราช", NameEn: "Chulalongkorn Day", Type: TypeRoyal},
	{Date: "2025-12-05", Name: "วันคล้ายวันพระราชสมภพพระบาทสมเด็จพระบรมชนกาธิเบศร", NameEn: "King Bhumibol's Birthday", Type: TypeRoyal},
	{Date: "2025-12-10", Name: "วันรัฐธรรมนูญ", NameEn: "Constitution Day", Type: TypePublic},
	{Date: "2025-12-31", Name: "วันสิ้นปี", NameEn: "New Year's Eve", Type: TypePublic},
}

// ForYear returns the holiday calendar for a year. Years without a curated
// list fall back to the fixed-date national holidays.
func ForYear(year int) []Holiday {
	if year == 2025 {
		out := make([]Holiday, len(holidays2025))
		copy(out, holidays2025)
		return out
	}

	return []Holiday{
		{Date: fmt.Sprintf("%04d-01-01", year), Name: "วันขึ้นปีใหม่", NameEn: "New Year's Day", Type: TypePublic},
		{Date: fmt.Sprintf("%04d-05-01", year), Name: "วันแรงงานแห่งชาติ", NameEn: "National Labour Day", Type: TypePublic},
		{Date: fmt.Sprintf("%04d-12-05", year), Name: "วันคล้ายวันพระราชสมภพพระบาทสมเด็จพระบรมชนกาธิเบศร", NameEn: "King Bhumibol's Birthday", Type: TypeRoyal},
		{Date: fmt.Sprintf("%04d-12-10", year), Name: "วันรัฐธรรมนูญ", NameEn: "Constitution Day", Type: TypePublic},
		{Date: fmt.Sprintf("%04d-12-31", year), Name: "วันสิ้นปี", NameEn: "New Year's Eve", Type: TypePublic},
	}
}

// Lookup returns the holiday on a given YYYY-MM-DD date, if any.
func Lookup(date string) (Holiday, bool) {
	if len(date) < 4 {
		return Holiday{}, false
	}
	var year int
	if _, err := fmt.Sscanf(date[:4], "%d", &year); err != nil {
		return Holiday{}, false
	}
	for _, h := range ForYear(year) {
		if h.Date == date {
			return h, true
		}
	}
	return Holiday{}, false
}
