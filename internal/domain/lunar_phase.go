package domain

import "math"

const lunationSteps = 28

// LunarPhase фаза Луны
type LunarPhase struct {
	Name           string  `json:"name"`
	Phase          int     `json:"phase"`           // номер шага лунного цикла, 1-28
	DegreesBetween float64 `json:"degrees_between"` // угол Луна-Солнце, 0-360
}

// NewLunarPhase считает фазу по углу между Луной и Солнцем
func NewLunarPhase(degreesBetween float64) LunarPhase {
	deg := math.Mod(degreesBetween, 360)
	if deg < 0 {
		deg += 360
	}

	phase := int(deg/(360.0/lunationSteps)) + 1
	if phase > lunationSteps {
		phase = lunationSteps
	}

	return LunarPhase{
		Name:           LunarPhaseName(phase),
		Phase:          phase,
		DegreesBetween: deg,
	}
}

// LunarPhaseFromLongitudes фаза по абсолютным долготам Луны и Солнца
func LunarPhaseFromLongitudes(moonAbs, sunAbs float64) LunarPhase {
	return NewLunarPhase(moonAbs - sunAbs)
}

// LunarPhaseName название фазы по номеру шага
func LunarPhaseName(phase int) string {
	switch {
	case phase <= 1:
		return "New Moon"
	case phase < 7:
		return "Waxing Crescent"
	case phase <= 9:
		return "First Quarter"
	case phase < 14:
		return "Waxing Gibbous"
	case phase == 14:
		return "Full Moon"
	case phase < 20:
		return "Waning Gibbous"
	case phase == 20:
		return "Last Quarter"
	default:
		return "Waning Crescent"
	}
}
