package dashboard

import (
	"time"

	"github.com/louisbranch/covidau/internal/platform/branding"
)

// AssetSettings locates static assets referenced by the layout.
type AssetSettings struct {
	LogoPath string
}

// DataSettings bounds the selectable date range.
type DataSettings struct {
	// MinDate is the earliest date offered by the date range control.
	MinDate time.Time
}

// Settings is the static presentation configuration.
type Settings struct {
	Assets  AssetSettings
	Palette branding.Palette
	Data    DataSettings
}

// DefaultMinDate is the first day of the upstream dataset.
var DefaultMinDate = time.Date(2020, time.January, 25, 0, 0, 0, 0, time.UTC)

// DefaultSettings returns the dashboard's built-in configuration.
func DefaultSettings() Settings {
	return Settings{
		Assets:  AssetSettings{LogoPath: branding.LogoPath},
		Palette: branding.DefaultPalette(),
		Data:    DataSettings{MinDate: DefaultMinDate},
	}
}

func (s Settings) withDefaults() Settings {
	def := DefaultSettings()
	if s.Assets.LogoPath == "" {
		s.Assets.LogoPath = def.Assets.LogoPath
	}
	if s.Palette == (branding.Palette{}) {
		s.Palette = def.Palette
	}
	if s.Data.MinDate.IsZero() {
		s.Data.MinDate = def.Data.MinDate
	}
	return s
}
