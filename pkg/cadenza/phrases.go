package cadenza

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/cadenza-ai/cadenza/pkg/cadenza/weather"
)

// The reply layer. Skills return one randomly chosen phrasing so repeated
// questions don't sound canned.

func pick(r *rand.Rand, phrases []string) string {
	if len(phrases) == 1 {
		return phrases[0]
	}
	return phrases[r.Intn(len(phrases))]
}

func currentWeatherReply(rep *weather.Report, r *rand.Rand) string {
	name := rep.Location.Name
	condition := rep.Current.Condition.Text
	tempC := rep.Current.TempC
	feelsC := rep.Current.FeelsLikeC
	windKPH := rep.Current.WindKPH
	windDir := rep.Current.WindDir
	humidity := rep.Current.Humidity

	day := []string{
		fmt.Sprintf("Currently in %s it's %.1f°C and %s with winds running up to %.1f km/h.",
			name, tempC, condition, windKPH),
		fmt.Sprintf("Right now in %s it's %.1f°C and %s but because of the humidity it feels like %.1f°C.",
			name, tempC, condition, feelsC),
		fmt.Sprintf("It is currently %s in %s with %.1f°C and winds running up to %.1f km/h.",
			condition, name, tempC, windKPH),
		fmt.Sprintf("Weather in %s is %.1f°C with %s conditions and winds blowing in %s direction.",
			name, tempC, condition, windDir),
		fmt.Sprintf("The weather today in %s is %s with %.1f°C.", name, condition, tempC),
	}
	night := []string{
		fmt.Sprintf("Tonight the weather is %s in %s with winds blowing in %s direction at %.1f km/h. Temperature is %.1f°C.",
			condition, name, windDir, windKPH, tempC),
		fmt.Sprintf("Tonight the weather is %s in %s with %.1f°C but due to %d%% humidity it feels like %.1f°C.",
			condition, name, tempC, humidity, feelsC),
		fmt.Sprintf("The weather tonight in %s is %s with %.1f°C.", name, condition, tempC),
		fmt.Sprintf("Right now in %s it's %.1f°C and %s but due to humidity it feels like %.1f°C.",
			name, tempC, condition, feelsC),
	}

	if rep.Day() {
		return pick(r, day)
	}
	return pick(r, night)
}

func forecastWeatherReply(rep *weather.Report, hours, mins *int, r *rand.Rand) string {
	name := rep.Location.Name
	maxC, minC, avgC, maxWindKPH, condition, ok := rep.ForecastDay()
	if !ok {
		return fmt.Sprintf("I couldn't get a forecast for %s.", name)
	}

	if hours != nil {
		return pick(r, []string{
			fmt.Sprintf("Well, the weather for %s in the next %d hours is forecasted to be %s with a maximum of %.1f°C and minimum of %.1f°C.",
				name, *hours, condition, maxC, minC),
			fmt.Sprintf("The climate for %s in the next %d hours is predicted to be %.1f°C and with %s.",
				name, *hours, avgC, condition),
			fmt.Sprintf("In %s it is forecasted to be about %.1f°C with %s in the next %d hours.",
				name, avgC, condition, *hours),
		})
	}
	if mins != nil {
		return pick(r, []string{
			fmt.Sprintf("Well, the weather for %s in the next %d minutes is forecasted to be %s with a maximum of %.1f°C and minimum of %.1f°C.",
				name, *mins, condition, maxC, minC),
			fmt.Sprintf("The climate for %s in the next %d minutes is predicted to be %.1f°C and with %s.",
				name, *mins, avgC, condition),
		})
	}

	day := []string{
		fmt.Sprintf("Today, it will be %s with a maximum temperature of %.1f°C and minimum of %.1f°C.",
			condition, maxC, minC),
		fmt.Sprintf("The temperature in %s is predicted to be %.1f°C and with %s.", name, avgC, condition),
		fmt.Sprintf("There will be winds blowing up to %.1f km/h and temperature would be anywhere between %.1f°C and %.1f°C.",
			maxWindKPH, maxC, minC),
		fmt.Sprintf("It is forecasted to be about %.1f°C with %s in %s.", avgC, condition, name),
	}
	night := []string{
		fmt.Sprintf("Tonight, the weather in %s is predicted to be %s with a maximum temperature of %.1f°C and minimum of %.1f°C.",
			name, condition, maxC, minC),
		fmt.Sprintf("Well, tonight it is forecasted to be %.1f°C with %s in %s.", avgC, condition, name),
	}

	if rep.Day() {
		return pick(r, day)
	}
	return pick(r, night)
}

func greetingReply(title string, now time.Time, r *rand.Rand) string {
	hour := now.Hour()
	switch {
	case hour >= 5 && hour < 12:
		return pick(r, []string{fmt.Sprintf("Good Morning, %s.", title), "Good Morning!"})
	case hour >= 12 && hour < 17:
		return pick(r, []string{fmt.Sprintf("Good Afternoon, %s.", title), "Good Afternoon!"})
	case hour >= 17 && hour < 22:
		return pick(r, []string{fmt.Sprintf("Good Evening, %s.", title), "Good Evening!"})
	default:
		return fmt.Sprintf("Hello, %s!", title)
	}
}

func fileNotFoundReply(name string) string {
	return fmt.Sprintf("Sorry, I couldn't find '%s' in the directory.", name)
}

func comboNotFoundReply(title string) string {
	return fmt.Sprintf("Sorry, %s. I couldn't find any combination of the search parameters.", title)
}

func playingReply(name, artist string) string {
	if artist != "" {
		return fmt.Sprintf("Playing %s by %s.", name, artist)
	}
	return fmt.Sprintf("Playing %s.", name)
}

func skillFailedReply(title string) string {
	return fmt.Sprintf("Sorry, %s. Something went wrong while doing that.", title)
}
