package external

// Response shapes of the OpenWeatherMap APIs. Required fields are pointers
// tagged "required" so legitimate zero values still pass validation.

type owmCoord struct {
	Lat *float64 `json:"lat" validate:"required"`
	Lon *float64 `json:"lon" validate:"required"`
}

type owmCondition struct {
	ID          *int    `json:"id"`
	Main        *string `json:"main" validate:"required"`
	Description *string `json:"description" validate:"required"`
	Icon        *string `json:"icon"`
}

type owmGeoLocation struct {
	Name       *string           `json:"name" validate:"required"`
	Lat        *float64          `json:"lat" validate:"required"`
	Lon        *float64          `json:"lon" validate:"required"`
	Country    string            `json:"country"`
	LocalNames map[string]string `json:"local_names"`
	State      string            `json:"state"`
}

type owmCurrentResponse struct {
	Name  *string   `json:"name" validate:"required"`
	Coord *owmCoord `json:"coord"`
	Main  *struct {
		Temp      *float64 `json:"temp" validate:"required"`
		FeelsLike *float64 `json:"feels_like" validate:"required"`
		Humidity  *float64 `json:"humidity" validate:"required"`
	} `json:"main" validate:"required"`
	Weather []owmCondition `json:"weather" validate:"required,min=1,dive"`
	Wind    *struct {
		Speed *float64 `json:"speed" validate:"required"`
	} `json:"wind" validate:"required"`
	Sys *struct {
		Country string `json:"country"`
	} `json:"sys"`
}

type owmForecastMain struct {
	Temp        *float64 `json:"temp" validate:"required"`
	FeelsLike   *float64 `json:"feels_like" validate:"required"`
	Humidity    *float64 `json:"humidity" validate:"required"`
	TempMin     *float64 `json:"temp_min"`
	TempMax     *float64 `json:"temp_max"`
	Pressure    *float64 `json:"pressure"`
	SeaLevel    *float64 `json:"sea_level"`
	GroundLevel *float64 `json:"grnd_level"`
}

type owmForecastPoint struct {
	Dt      *int64           `json:"dt" validate:"required"`
	Main    *owmForecastMain `json:"main" validate:"required"`
	Weather []owmCondition   `json:"weather" validate:"dive"`
	Wind    *struct {
		Speed *float64 `json:"speed" validate:"required"`
		Deg   *float64 `json:"deg"`
		Gust  *float64 `json:"gust"`
	} `json:"wind" validate:"required"`
	Clouds *struct {
		All *float64 `json:"all"`
	} `json:"clouds"`
	Visibility *float64 `json:"visibility"`
	Pop        *float64 `json:"pop"`
	Rain       *struct {
		ThreeHours *float64 `json:"3h"`
	} `json:"rain"`
	Sys *struct {
		Pod string `json:"pod"`
	} `json:"sys"`
	DtTxt string `json:"dt_txt"`
}

type owmForecastResponse struct {
	List []owmForecastPoint `json:"list" validate:"required,dive"`
	City *struct {
		ID         int64     `json:"id"`
		Name       *string   `json:"name" validate:"required"`
		Coord      *owmCoord `json:"coord" validate:"required"`
		Country    string    `json:"country"`
		Population int64     `json:"population"`
		Timezone   int       `json:"timezone"`
		Sunrise    int64     `json:"sunrise"`
		Sunset     int64     `json:"sunset"`
	} `json:"city" validate:"required"`
}

type translatorResponse struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
	Data    *struct {
		Result *struct {
			TransResult []struct {
				Dst *string `json:"dst" validate:"required"`
			} `json:"trans_result" validate:"dive"`
		} `json:"result"`
	} `json:"data"`
}
