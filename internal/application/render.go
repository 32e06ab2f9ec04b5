// File: internal/application/render.go
package application

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"telegram-weather-bot/internal/domain/model"
)

// Pure rendering of weather models into the Markdown replies. Deterministic:
// the same report always yields the same text.

const timeLayout = "Mon 02 Jan 15:04"

// iconFor picks an emoji for a provider condition group.
func iconFor(condition string) string {
	c := strings.ToLower(condition)
	switch {
	case strings.Contains(c, "thunder"):
		return "⛈️"
	case strings.Contains(c, "drizzle"):
		return "🌦️"
	case strings.Contains(c, "rain"):
		return "🌧️"
	case strings.Contains(c, "snow"):
		return "❄️"
	case strings.Contains(c, "clear"):
		return "☀️"
	case strings.Contains(c, "cloud"):
		return "☁️"
	case strings.Contains(c, "mist"), strings.Contains(c, "fog"),
		strings.Contains(c, "haze"), strings.Contains(c, "smoke"):
		return "🌫️"
	default:
		return "🌡️"
	}
}

// localTime renders ts in the place's own UTC offset.
func localTime(ts time.Time, offset time.Duration) string {
	return ts.In(time.FixedZone("", int(offset/time.Second))).Format(timeLayout)
}

// titleWords capitalizes each word of a provider description
// ("light rain" -> "Light Rain").
func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// speed renders wind speed without trailing zeros ("3.5", "4").
func speed(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func placeName(city, country, fallback string) string {
	if city == "" {
		city = fallback
	}
	if country != "" {
		return city + ", " + country
	}
	return city
}

// RenderCurrent renders the current-conditions reply.
func RenderCurrent(cw *model.CurrentWeather) string {
	sunrise, sunset := "N/A", "N/A"
	if !cw.Sunrise.IsZero() {
		sunrise = localTime(cw.Sunrise, cw.TZOffset)
	}
	if !cw.Sunset.IsZero() {
		sunset = localTime(cw.Sunset, cw.TZOffset)
	}

	lines := []string{
		fmt.Sprintf("%s *Current weather in %s*", iconFor(cw.Condition), placeName(cw.City, cw.Country, "Your location")),
		fmt.Sprintf("• %s", titleWords(cw.Description)),
		fmt.Sprintf("• Temp: %.1f°C (feels %.1f°C)", cw.TempC, cw.FeelsLikeC),
		fmt.Sprintf("• Humidity: %d%%  • Pressure: %d hPa", cw.Humidity, cw.PressureHPa),
		fmt.Sprintf("• Wind: %s m/s", speed(cw.WindSpeedMS)),
		fmt.Sprintf("• Sunrise: %s  • Sunset: %s", sunrise, sunset),
	}
	return strings.Join(lines, "\n")
}

// RenderForecast renders the 36-hour forecast reply, one bullet per
// 3-hour slot, at most model.MaxForecastEntries lines.
func RenderForecast(f *model.Forecast) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📅 *Next 36 hours for %s*", placeName(f.City, f.Country, "location")))

	entries := f.Entries
	if len(entries) > model.MaxForecastEntries {
		entries = entries[:model.MaxForecastEntries]
	}
	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("\n• %s – %s %s, %.0f°C, wind %s m/s",
			localTime(e.At, f.TZOffset), iconFor(e.Condition), titleWords(e.Description), e.TempC, speed(e.WindSpeedMS)))
	}
	return sb.String()
}
