package bookingwindow

import (
	"time"

	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
)

// Пакет bookingwindow реализует календарную арифметику окна бронирования:
// рабочие дни (понедельник-пятница), горизонт "сегодня + 14 календарных
// дней" и навигацию по датам в пределах окна.
//
// Все функции чистые: "сегодня" передается параметром, чтобы логику можно
// было тестировать на фиксированных датах.

// IsWeekend проверяет, что дата приходится на субботу или воскресенье
func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// NextBusinessDay возвращает следующий рабочий день строго после date
func NextBusinessDay(date time.Time) time.Time {
	d := domain.DateOnly(date).AddDate(0, 0, 1)
	for IsWeekend(d) {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// PreviousBusinessDay возвращает предыдущий рабочий день строго до date
func PreviousBusinessDay(date time.Time) time.Time {
	d := domain.DateOnly(date).AddDate(0, 0, -1)
	for IsWeekend(d) {
		d = d.AddDate(0, 0, -1)
	}
	return d
}

// CeilToBusinessDay возвращает саму дату, если это рабочий день,
// иначе ближайший понедельник после неё
func CeilToBusinessDay(date time.Time) time.Time {
	d := domain.DateOnly(date)
	for IsWeekend(d) {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// BusinessDaysFrom собирает count рабочих дней вперед, начиная со start
// (start включается, если сам является рабочим днем).
// Цикл ограничен жестким потолком итераций: даже если логика пропуска
// выходных перестанет продвигать дату, функция завершится.
func BusinessDaysFrom(start time.Time, count int) []time.Time {
	if count <= 0 {
		return []time.Time{}
	}

	days := make([]time.Time, 0, count)
	d := domain.DateOnly(start)

	// +7 покрывает стартовые выходные при малых count
	maxIterations := count*domain.BusinessDayIterationFactor + 7

	for i := 0; i < maxIterations && len(days) < count; i++ {
		if !IsWeekend(d) {
			days = append(days, d)
		}
		d = d.AddDate(0, 0, 1)
	}

	return days
}

// WindowEnd возвращает последний календарный день окна бронирования
func WindowEnd(today time.Time) time.Time {
	return domain.DateOnly(today).AddDate(0, 0, domain.BookingWindowDays)
}

// IsWithinBookingWindow проверяет, что дата попадает в допустимое окно:
// не в прошлом и не дальше, чем today + BookingWindowDays.
// Выходные не бронируются никогда.
func IsWithinBookingWindow(date, today time.Time) bool {
	d := domain.DateOnly(date)
	t := domain.DateOnly(today)

	if IsWeekend(d) {
		return false
	}
	if d.Before(t) {
		return false
	}

	normalized := CeilToBusinessDay(d)
	return !normalized.Before(t) && !normalized.After(WindowEnd(t))
}

// DefaultViewDate дата по умолчанию для дневного вида.
// Если сегодня выходной, вид открывается на ближайшем понедельнике.
func DefaultViewDate(today time.Time) time.Time {
	return CeilToBusinessDay(domain.DateOnly(today))
}

// CanStepBack проверяет, что от current можно шагнуть на предыдущий
// рабочий день, не выйдя из окна. Предикат обязан вызываться до StepBack.
func CanStepBack(current, today time.Time) bool {
	prev := PreviousBusinessDay(current)
	return !prev.Before(DefaultViewDate(today))
}

// CanStepForward проверяет, что от current можно шагнуть на следующий
// рабочий день, не выйдя из окна. Предикат обязан вызываться до StepForward.
func CanStepForward(current, today time.Time) bool {
	next := NextBusinessDay(current)
	return !next.After(WindowEnd(today))
}

// StepBack возвращает предыдущий рабочий день, если шаг допустим,
// иначе current без изменений
func StepBack(current, today time.Time) time.Time {
	if !CanStepBack(current, today) {
		return domain.DateOnly(current)
	}
	return PreviousBusinessDay(current)
}

// StepForward возвращает следующий рабочий день, если шаг допустим,
// иначе current без изменений
func StepForward(current, today time.Time) time.Time {
	if !CanStepForward(current, today) {
		return domain.DateOnly(current)
	}
	return NextBusinessDay(current)
}

// CurrentWeek возвращает рабочие дни (понедельник-пятница) текущей
// реальной недели. Недельный вид всегда привязан к неделе "сегодня",
// а не к неделе просматриваемого бронирования, и пересчитывается
// при каждом переключении вида.
func CurrentWeek(today time.Time) []time.Time {
	t := domain.DateOnly(today)

	// Откатываемся к понедельнику текущей недели
	offset := (int(t.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	monday := t.AddDate(0, 0, -offset)

	return BusinessDaysFrom(monday, 5)
}
