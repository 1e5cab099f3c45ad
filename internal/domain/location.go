package domain

// Location точка наблюдения, для которой строится транзитная карта
type Location struct {
	City      string  `json:"city"`
	Nation    string  `json:"nation"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
}

// Moscow единственная поддерживаемая точка наблюдения
var Moscow = Location{
	City:      "Moscow",
	Nation:    "RU",
	Latitude:  55.7558,
	Longitude: 37.6173,
	Timezone:  "Europe/Moscow",
}
