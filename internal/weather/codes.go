package weather

// Theme is a display theme tag derived from a WMO weather code.
type Theme string

const (
	ThemeDefault Theme = "default"
	ThemeClear   Theme = "clear"
	ThemeCloudy  Theme = "cloudy"
	ThemeFog     Theme = "fog"
	ThemeDrizzle Theme = "drizzle"
	ThemeRain    Theme = "rain"
	ThemeSnow    Theme = "snow"
	ThemeShowers Theme = "showers"
	ThemeStorm   Theme = "storm"
)

// Condition describes a WMO weather code for display.
type Condition struct {
	Code        int    `json:"code"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Theme       Theme  `json:"theme"`
}

const unknownDescription = "Conditions météo inconnues"

// WMO weather interpretation codes (https://open-meteo.com/en/docs)
var conditions = map[int]Condition{
	0:  {Description: "Ciel clair", Icon: "sun", Theme: ThemeClear},
	1:  {Description: "Partiellement clair", Icon: "cloud-sun", Theme: ThemeClear},
	2:  {Description: "Partiellement nuageux", Icon: "cloud-sun", Theme: ThemeCloudy},
	3:  {Description: "Nuageux", Icon: "cloud", Theme: ThemeCloudy},
	45: {Description: "Brouillard", Icon: "smog", Theme: ThemeFog},
	48: {Description: "Brouillard givrant", Icon: "smog", Theme: ThemeFog},
	51: {Description: "Bruine légère", Icon: "cloud-showers-water", Theme: ThemeDrizzle},
	53: {Description: "Bruine modérée", Icon: "cloud-showers-water", Theme: ThemeDrizzle},
	55: {Description: "Bruine dense", Icon: "cloud-showers-water", Theme: ThemeDrizzle},
	61: {Description: "Pluie légère", Icon: "cloud-rain", Theme: ThemeRain},
	63: {Description: "Pluie modérée", Icon: "cloud-rain", Theme: ThemeRain},
	65: {Description: "Pluie forte", Icon: "cloud-rain", Theme: ThemeRain},
	71: {Description: "Neige légère", Icon: "snowflake", Theme: ThemeSnow},
	73: {Description: "Neige modérée", Icon: "snowflake", Theme: ThemeSnow},
	75: {Description: "Neige forte", Icon: "snowflake", Theme: ThemeSnow},
	77: {Description: "Grains de neige", Icon: "snowflake", Theme: ThemeSnow},
	80: {Description: "Averses légères", Icon: "cloud-showers-heavy", Theme: ThemeShowers},
	81: {Description: "Averses modérées", Icon: "cloud-showers-heavy", Theme: ThemeShowers},
	82: {Description: "Averses fortes", Icon: "cloud-showers-heavy", Theme: ThemeShowers},
	95: {Description: "Orages", Icon: "bolt", Theme: ThemeStorm},
	96: {Description: "Orages avec grêle", Icon: "bolt", Theme: ThemeStorm},
	99: {Description: "Orages fort avec grêle", Icon: "bolt", Theme: ThemeStorm},
}

// Describe returns the display condition for a weather code. Unknown codes
// get a generic description and the default theme.
func Describe(code int) Condition {
	c, ok := conditions[code]
	if !ok {
		return Condition{Code: code, Description: unknownDescription, Icon: "question", Theme: ThemeDefault}
	}
	c.Code = code
	return c
}

// ThemeFor maps a weather code to its theme tag.
func ThemeFor(code int) Theme {
	return Describe(code).Theme
}
