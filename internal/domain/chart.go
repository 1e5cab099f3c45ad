package domain

import "math"

// MajorAspectOrb аспекты с орбом меньше порога считаются значимыми
const MajorAspectOrb = 3.0

// PlanetPosition положение планеты в знаке
type PlanetPosition struct {
	Name        string  `json:"name"`
	Sign        string  `json:"sign"`
	Position    float64 `json:"position"` // градус внутри знака, 0-30
	AbsPosition float64 `json:"abs_position"`
	Retrograde  bool    `json:"retrograde"`
}

// Aspect угловое соотношение двух планет
type Aspect struct {
	Planet1 string  `json:"planet1"`
	Planet2 string  `json:"planet2"`
	Type    string  `json:"type"`
	Orb     float64 `json:"orb"`
}

func (a Aspect) IsMajor() bool {
	return a.Orb < MajorAspectOrb
}

// Chart карта в том виде, в каком её вернул внешний расчёт
type Chart struct {
	Planets    []PlanetPosition `json:"planets"`
	Aspects    []Aspect         `json:"aspects"`
	LunarPhase LunarPhase       `json:"lunar_phase"`
}

// Planet ищет планету по имени
func (c *Chart) Planet(name string) (PlanetPosition, bool) {
	for _, p := range c.Planets {
		if p.Name == name {
			return p, true
		}
	}
	return PlanetPosition{}, false
}

// Round2 округляет до двух знаков после запятой
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
