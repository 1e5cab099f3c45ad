package domain

import "time"

const (
	dateLayout  = "02.01.2006"
	clockLayout = "15:04"
)

// TransitMoment момент наблюдения с точностью до минуты в часовом поясе локации
type TransitMoment struct {
	Year     int
	Month    int
	Day      int
	Hour     int
	Minute   int
	Timezone string
	Time     time.Time
}

// NewTransitMoment отбрасывает секунды: внешний расчёт принимает время с точностью до минуты
func NewTransitMoment(t time.Time) TransitMoment {
	t = t.Truncate(time.Minute)

	return TransitMoment{
		Year:     t.Year(),
		Month:    int(t.Month()),
		Day:      t.Day(),
		Hour:     t.Hour(),
		Minute:   t.Minute(),
		Timezone: t.Location().String(),
		Time:     t,
	}
}

// Date дата в формате DD.MM.YYYY
func (m TransitMoment) Date() string {
	return m.Time.Format(dateLayout)
}

// Clock время в формате HH:MM
func (m TransitMoment) Clock() string {
	return m.Time.Format(clockLayout)
}

// Key уникальный ключ минуты (с учётом смещения пояса)
func (m TransitMoment) Key() string {
	return m.Time.Format(time.RFC3339)
}

// TransitReport итог расчёта транзитов на текущий момент
type TransitReport struct {
	Moment       TransitMoment
	Planets      []PlanetPosition
	MajorAspects []Aspect
	MoonPhase    LunarPhase
}
