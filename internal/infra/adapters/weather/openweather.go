// File: internal/infra/adapters/weather/openweather.go
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"telegram-weather-bot/internal/config"
	"telegram-weather-bot/internal/domain"
	"telegram-weather-bot/internal/domain/model"
	"telegram-weather-bot/internal/domain/ports/adapter"
	"telegram-weather-bot/internal/infra/metrics"
)

// Compile-time assurance this adapter satisfies the port
var _ adapter.WeatherProviderAdapter = (*OpenWeatherAdapter)(nil)

// OpenWeatherAdapter implements adapter.WeatherProviderAdapter against the
// OpenWeather "current weather" and "5 day / 3 hour" endpoints.
// No retries and no caching here; both are the operator's concern.
type OpenWeatherAdapter struct {
	apiKey string
	base   string // e.g. https://api.openweathermap.org/data/2.5
	units  string
	client *http.Client
}

func NewOpenWeatherAdapter(cfg config.WeatherConfig) (*OpenWeatherAdapter, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: openweather api key empty", domain.ErrInvalidArgument)
	}
	base := cfg.BaseURL
	if base == "" {
		base = "https://api.openweathermap.org/data/2.5"
	}
	units := cfg.Units
	if units == "" {
		units = "metric"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 12 * time.Second
	}
	return &OpenWeatherAdapter{
		apiKey: cfg.APIKey,
		base:   base,
		units:  units,
		client: &http.Client{Timeout: timeout},
	}, nil
}

// ---- wire DTOs ----

type conditionDTO struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}

type mainDTO struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Pressure  int     `json:"pressure"`
	Humidity  int     `json:"humidity"`
}

type windDTO struct {
	Speed float64 `json:"speed"`
}

type currentDTO struct {
	Name  string `json:"name"`
	Coord struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coord"`
	Weather []conditionDTO `json:"weather"`
	Main    mainDTO        `json:"main"`
	Wind    windDTO        `json:"wind"`
	Sys     struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
	Timezone int `json:"timezone"` // seconds east of UTC
}

type forecastDTO struct {
	City struct {
		Name     string `json:"name"`
		Country  string `json:"country"`
		Timezone int    `json:"timezone"`
	} `json:"city"`
	List []struct {
		Dt      int64          `json:"dt"`
		Main    mainDTO        `json:"main"`
		Weather []conditionDTO `json:"weather"`
		Wind    windDTO        `json:"wind"`
	} `json:"list"`
}

// ---- port implementation ----

func (o *OpenWeatherAdapter) CurrentByCity(ctx context.Context, city string) (*model.CurrentWeather, error) {
	if city == "" {
		return nil, fmt.Errorf("%w: empty city", domain.ErrInvalidArgument)
	}
	q := url.Values{"q": {city}}
	var dto currentDTO
	if err := o.get(ctx, "weather", q, &dto); err != nil {
		return nil, err
	}
	return toCurrent(&dto), nil
}

func (o *OpenWeatherAdapter) CurrentByCoords(ctx context.Context, coord model.Coordinates) (*model.CurrentWeather, error) {
	q := coordValues(coord)
	var dto currentDTO
	if err := o.get(ctx, "weather", q, &dto); err != nil {
		return nil, err
	}
	return toCurrent(&dto), nil
}

func (o *OpenWeatherAdapter) ForecastByCoords(ctx context.Context, coord model.Coordinates) (*model.Forecast, error) {
	q := coordValues(coord)
	q.Set("cnt", strconv.Itoa(model.MaxForecastEntries)) // ~next 36 hours
	var dto forecastDTO
	if err := o.get(ctx, "forecast", q, &dto); err != nil {
		return nil, err
	}
	return toForecast(&dto), nil
}

// get performs one provider call and decodes the body into out.
// 404 means the place is unknown; any other non-2xx means the provider
// is unavailable from the bot's point of view.
func (o *OpenWeatherAdapter) get(ctx context.Context, endpoint string, q url.Values, out any) error {
	q.Set("appid", o.apiKey)
	q.Set("units", o.units)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.base+"/"+endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	start := time.Now()
	resp, err := o.client.Do(req)
	latency := int(time.Since(start).Milliseconds())
	if err != nil {
		metrics.ObserveProviderCall(endpoint, "unavailable", latency)
		return fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		metrics.ObserveProviderCall(endpoint, "not_found", latency)
		return domain.ErrCityNotFound
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		metrics.ObserveProviderCall(endpoint, "unavailable", latency)
		return fmt.Errorf("%w: http %d", domain.ErrProviderUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		metrics.ObserveProviderCall(endpoint, "bad_response", latency)
		return fmt.Errorf("%w: %v", domain.ErrBadResponse, err)
	}
	metrics.ObserveProviderCall(endpoint, "ok", latency)
	return nil
}

func coordValues(c model.Coordinates) url.Values {
	return url.Values{
		"lat": {strconv.FormatFloat(c.Latitude, 'f', -1, 64)},
		"lon": {strconv.FormatFloat(c.Longitude, 'f', -1, 64)},
	}
}

// ---- DTO -> domain ----

func toCurrent(dto *currentDTO) *model.CurrentWeather {
	cw := &model.CurrentWeather{
		City:        dto.Name,
		Country:     dto.Sys.Country,
		Coord:       model.Coordinates{Latitude: dto.Coord.Lat, Longitude: dto.Coord.Lon},
		TempC:       dto.Main.Temp,
		FeelsLikeC:  dto.Main.FeelsLike,
		Humidity:    dto.Main.Humidity,
		PressureHPa: dto.Main.Pressure,
		WindSpeedMS: dto.Wind.Speed,
		TZOffset:    time.Duration(dto.Timezone) * time.Second,
	}
	if len(dto.Weather) > 0 {
		cw.Condition = dto.Weather[0].Main
		cw.Description = dto.Weather[0].Description
	}
	if dto.Sys.Sunrise > 0 {
		cw.Sunrise = time.Unix(dto.Sys.Sunrise, 0)
	}
	if dto.Sys.Sunset > 0 {
		cw.Sunset = time.Unix(dto.Sys.Sunset, 0)
	}
	return cw
}

func toForecast(dto *forecastDTO) *model.Forecast {
	f := &model.Forecast{
		City:     dto.City.Name,
		Country:  dto.City.Country,
		TZOffset: time.Duration(dto.City.Timezone) * time.Second,
	}
	list := dto.List
	if len(list) > model.MaxForecastEntries {
		list = list[:model.MaxForecastEntries]
	}
	for _, it := range list {
		e := model.ForecastEntry{
			At:          time.Unix(it.Dt, 0),
			TempC:       it.Main.Temp,
			WindSpeedMS: it.Wind.Speed,
		}
		if len(it.Weather) > 0 {
			e.Condition = it.Weather[0].Main
			e.Description = it.Weather[0].Description
		}
		f.Entries = append(f.Entries, e)
	}
	return f
}
