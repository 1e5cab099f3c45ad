package astroApi

// BirthData дата, время и место, на которые строится карта
type BirthData struct {
	Year        int     `json:"year"`
	Month       int     `json:"month"`
	Day         int     `json:"day"`
	Hour        int     `json:"hour"`
	Minute      int     `json:"minute"`
	Second      int     `json:"second,omitempty"`
	City        string  `json:"city"`
	CountryCode string  `json:"country_code"`
	Latitude    float64 `json:"latitude,omitempty"`
	Longitude   float64 `json:"longitude,omitempty"`
	Timezone    string  `json:"timezone,omitempty"`
}

// Person представляет субъекта карты
type Person struct {
	Name      string    `json:"name"`
	BirthData BirthData `json:"birth_data"`
}

// ChartOptions представляет опции для расчета карты
type ChartOptions struct {
	HouseSystem  string   `json:"house_system"`  // "P" для Плацидуса
	ZodiacType   string   `json:"zodiac_type"`   // "Tropic" для тропического
	ActivePoints []string `json:"active_points"` // ["Sun", "Moon", ...]
	Precision    int      `json:"precision"`
}

// ChartRequest представляет запрос на расчет карты
type ChartRequest struct {
	Subject Person       `json:"subject"`
	Options ChartOptions `json:"options"`
}

// ChartResponse представляет ответ API
type ChartResponse struct {
	Status    string     `json:"status"`
	Code      int        `json:"code,omitempty"`
	Message   string     `json:"message,omitempty"`
	RequestID string     `json:"request_id,omitempty"`
	Data      *ChartData `json:"data,omitempty"`
	RawJSON   string     `json:"-"` // Оригинальный JSON ответ для логов
}

// ChartData данные карты
type ChartData struct {
	Planets    []PlanetPosition `json:"planets,omitempty"`
	Aspects    []Aspect         `json:"aspects,omitempty"`
	LunarPhase *LunarPhase      `json:"lunar_phase,omitempty"`
}

// PlanetPosition позиция планеты, Degree - градус внутри знака
type PlanetPosition struct {
	Name       string  `json:"name"`
	Sign       string  `json:"sign"`
	Degree     float64 `json:"degree"`
	AbsPos     float64 `json:"abs_pos"`
	House      int     `json:"house,omitempty"`
	Retrograde bool    `json:"retrograde"`
}

// Aspect аспект между планетами
type Aspect struct {
	Planet1 string  `json:"planet1"`
	Planet2 string  `json:"planet2"`
	Aspect  string  `json:"aspect"`
	Orb     float64 `json:"orb"`
}

// LunarPhase фаза Луны
type LunarPhase struct {
	MoonPhase      int      `json:"moon_phase"`
	MoonPhaseName  string   `json:"moon_phase_name"`
	DegreesBetween *float64 `json:"degrees_between_s_m,omitempty"`
}
