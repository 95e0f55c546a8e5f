package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Layout
	message.SetString(lang, "title.overview", "%s | Overview")
	message.SetString(lang, "title.not_found", "%s | Page not found")
	message.SetString(lang, "nav.overview", "Overview")
	message.SetString(lang, "nav.about", "About")
	message.SetString(lang, "nav.logo_alt", "%s logo")

	// Controls
	message.SetString(lang, "overview.state.label", "State")
	message.SetString(lang, "overview.state.all", "All states")
	message.SetString(lang, "overview.date.label", "Date")
	message.SetString(lang, "overview.date.start", "Start date")
	message.SetString(lang, "overview.date.end", "End date")

	// Stat tiles
	message.SetString(lang, "overview.stat.cases.title", "Total Number of Cases")
	message.SetString(lang, "overview.stat.cases.subtitle", "The total number of cases recorded")
	message.SetString(lang, "overview.stat.deaths.title", "Total Number of Deaths")
	message.SetString(lang, "overview.stat.deaths.subtitle", "The total number of deaths recorded")
	message.SetString(lang, "overview.stat.tests.title", "Total Number of Tests")
	message.SetString(lang, "overview.stat.tests.subtitle", "The total number of tests administered")
	message.SetString(lang, "overview.stat.positives.title", "Total Number of Positive Tests")
	message.SetString(lang, "overview.stat.positives.subtitle", "The total number of positive test results reported")
	message.SetString(lang, "overview.stat.recovered.title", "Total Number of People Recovered")
	message.SetString(lang, "overview.stat.recovered.subtitle", "The total number of people recovered")

	// Charts
	message.SetString(lang, "overview.chart.time_series.title", "Number of cases over time, per state")
	message.SetString(lang, "overview.chart.time_series.subtitle", "This shows the number of cases that have been reported over time. You can highlight areas to drill in to. You can also remove states from the chart by clicking them in the legend. Double click a state to isolate it.")
	message.SetString(lang, "overview.chart.vaccs_vs_hosps.title", "The number of Vaccinations vs the Number of Hospitalisations")
	message.SetString(lang, "chart.trace.vaccinations", "Vaccinations")
	message.SetString(lang, "chart.trace.hospitalisations", "Hospitalisations")

	// Not found
	message.SetString(lang, "not_found.heading", "404! Page Doesn't exist")
	message.SetString(lang, "not_found.back", "Back to the overview")

	// Errors
	message.SetString(lang, "error.update_failed", "The dashboard could not be updated.")
	message.SetString(lang, "error.invalid_input", "The dashboard controls sent an unexpected value.")
	message.SetString(lang, "error.not_found", "Nothing lives at this address.")
}
