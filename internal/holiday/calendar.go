package holiday

import (
	"fmt"
	"time"
)

// Official is a public holiday that has not been persisted yet.
type Official struct {
	Name        string
	Description string
	Date        time.Time
}

type fixedDay struct {
	month       time.Month
	day         int
	name        string
	description string
}

var fixedDays = []fixedDay{
	{time.January, 1, "Yılbaşı", "Yılbaşı Tatili"},
	{time.April, 23, "Ulusal Egemenlik ve Çocuk Bayramı", "23 Nisan Ulusal Egemenlik ve Çocuk Bayramı"},
	{time.May, 1, "Emek ve Dayanışma Günü", "1 Mayıs Emek ve Dayanışma Günü"},
	{time.May, 19, "Atatürk'ü Anma, Gençlik ve Spor Bayramı", "19 Mayıs Atatürk'ü Anma, Gençlik ve Spor Bayramı"},
	{time.July, 15, "Demokrasi ve Milli Birlik Günü", "15 Temmuz Demokrasi ve Milli Birlik Günü"},
	{time.August, 30, "Zafer Bayramı", "30 Ağustos Zafer Bayramı"},
	{time.October, 29, "Cumhuriyet Bayramı", "29 Ekim Cumhuriyet Bayramı"},
}

type feastStarts struct {
	ramazan time.Time
	kurban  time.Time
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Religious feast dates follow the lunar calendar and are published yearly.
var religiousFeasts = map[int]feastStarts{
	2020: {day(2020, time.May, 24), day(2020, time.July, 31)},
	2021: {day(2021, time.May, 13), day(2021, time.July, 20)},
	2022: {day(2022, time.May, 2), day(2022, time.July, 9)},
	2023: {day(2023, time.April, 21), day(2023, time.June, 28)},
	2024: {day(2024, time.April, 10), day(2024, time.June, 16)},
	2025: {day(2025, time.March, 30), day(2025, time.June, 6)},
	2026: {day(2026, time.March, 20), day(2026, time.May, 26)},
	2027: {day(2027, time.March, 9), day(2027, time.May, 16)},
	2028: {day(2028, time.February, 26), day(2028, time.May, 4)},
	2029: {day(2029, time.February, 14), day(2029, time.April, 23)},
	2030: {day(2030, time.February, 4), day(2030, time.April, 13)},
}

const (
	ramazanDays = 3
	kurbanDays  = 4
)

// OfficialHolidays lists the public holidays of year. Years without known
// feast dates get the fixed national days only.
func OfficialHolidays(year int) []Official {
	out := make([]Official, 0, len(fixedDays)+ramazanDays+kurbanDays)
	for _, f := range fixedDays {
		out = append(out, Official{
			Name:        f.name,
			Description: f.description,
			Date:        day(year, f.month, f.day),
		})
	}

	feasts, ok := religiousFeasts[year]
	if !ok {
		return out
	}
	for i := 0; i < ramazanDays; i++ {
		out = append(out, Official{
			Name:        fmt.Sprintf("Ramazan Bayramı (%d. Gün)", i+1),
			Description: "Ramazan Bayramı",
			Date:        feasts.ramazan.AddDate(0, 0, i),
		})
	}
	for i := 0; i < kurbanDays; i++ {
		out = append(out, Official{
			Name:        fmt.Sprintf("Kurban Bayramı (%d. Gün)", i+1),
			Description: "Kurban Bayramı",
			Date:        feasts.kurban.AddDate(0, 0, i),
		})
	}
	return out
}
