package schedule

import "time"

// DateLayout - формат дат, в котором записи расписания хранятся и передаются
// между слоями ("2024-09-03").
const DateLayout = "2006-01-02"

// RemapWeekday переводит нумерацию time.Weekday (0=воскресенье) в ISO-нумерацию
// 1..7, где 7 - воскресенье. Шаблоны хранят день недели именно в ISO-виде.
func RemapWeekday(w time.Weekday) int {
	if w == time.Sunday {
		return 7
	}
	return int(w)
}

// ISOWeekday возвращает ISO-день недели (1..7) для даты в формате YYYY-MM-DD.
func ISOWeekday(date string) (int, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return 0, err
	}
	return RemapWeekday(t.Weekday()), nil
}
