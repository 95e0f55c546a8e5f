// Package branding holds the dashboard's static visual identity: its name,
// colour palette, and logo asset path.
package branding

// AppName is the product name used in page titles and the nav bar.
const AppName = "COVID-19 Australia"

// LogoPath is the URL path of the logo asset served from the assets mount.
const LogoPath = "/assets/logo.svg"

// Palette is the fixed set of named colours used by stat tiles and chrome.
type Palette struct {
	LightGray string
	DarkGray  string
	Blue      string
	Green     string
	Red       string
	Pink      string
	Orange    string
	Aqua      string
}

// DefaultPalette returns the dashboard colours.
func DefaultPalette() Palette {
	return Palette{
		LightGray: "#ECECF1",
		DarkGray:  "#474747",
		Blue:      "#445DED",
		Green:     "#7ED321",
		Red:       "#F5718F",
		Pink:      "#D67FD2",
		Orange:    "#FDB39F",
		Aqua:      "#64CFB7",
	}
}
