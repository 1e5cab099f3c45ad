package transitsController

import (
	"bytes"
	"encoding/json"

	"github.com/admin/tg-bots/astro-transits/internal/domain"
)

type TransitsResponse struct {
	Success      bool         `json:"success"`
	Date         string       `json:"date"`
	Time         string       `json:"time"`
	Planets      Planets      `json:"planets"`
	MajorAspects []AspectDTO  `json:"major_aspects"`
	MoonPhase    MoonPhaseDTO `json:"moon_phase"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type PlanetDTO struct {
	Sign       string  `json:"sign"`
	Position   float64 `json:"position"`
	Retrograde bool    `json:"retrograde"`
}

type AspectDTO struct {
	Planet1 string  `json:"planet1"`
	Planet2 string  `json:"planet2"`
	Aspect  string  `json:"aspect"`
	Orb     float64 `json:"orb"`
}

type MoonPhaseDTO struct {
	PhaseName string `json:"phase_name"`
}

type namedPlanet struct {
	name   string
	planet PlanetDTO
}

// Planets JSON-объект имя -> позиция, ключи идут в порядке расчёта
type Planets []namedPlanet

// Set добавляет планету; повторное имя перезаписывает значение на прежнем месте
func (p *Planets) Set(name string, planet PlanetDTO) {
	for i := range *p {
		if (*p)[i].name == name {
			(*p)[i].planet = planet
			return
		}
	}
	*p = append(*p, namedPlanet{name: name, planet: planet})
}

func (p Planets) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, np := range p {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(np.name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(np.planet)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func toResponse(report *domain.TransitReport) TransitsResponse {
	resp := TransitsResponse{
		Success:      true,
		Date:         report.Moment.Date(),
		Time:         report.Moment.Clock(),
		Planets:      make(Planets, 0, len(report.Planets)),
		MajorAspects: make([]AspectDTO, 0, len(report.MajorAspects)),
		MoonPhase:    MoonPhaseDTO{PhaseName: report.MoonPhase.Name},
	}

	for _, p := range report.Planets {
		resp.Planets.Set(p.Name, PlanetDTO{
			Sign:       p.Sign,
			Position:   p.Position,
			Retrograde: p.Retrograde,
		})
	}

	for _, a := range report.MajorAspects {
		resp.MajorAspects = append(resp.MajorAspects, AspectDTO{
			Planet1: a.Planet1,
			Planet2: a.Planet2,
			Aspect:  a.Type,
			Orb:     a.Orb,
		})
	}

	return resp
}
