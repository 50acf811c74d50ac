package weather

// Describe maps a WMO weather interpretation code to a short description.
// Unknown codes map to "unknown weather" rather than an error: a greeting
// with a vague sky beats no greeting.
func Describe(code int) string {
	switch {
	case code == 0:
		return "clear sky"
	case code >= 1 && code <= 3:
		return "partly cloudy"
	case code == 45 || code == 48:
		return "fog"
	case code >= 51 && code <= 57:
		return "drizzle"
	case code >= 61 && code <= 67:
		return "rain"
	case code >= 71 && code <= 77:
		return "snow"
	case code >= 80 && code <= 82:
		return "showers"
	case code == 95 || code == 96 || code == 99:
		return "thunderstorm"
	default:
		return "unknown weather"
	}
}
