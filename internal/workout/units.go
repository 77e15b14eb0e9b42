package workout

import "fmt"

// Unit conversion constants
const (
	MetersPerMile = 1609.34
	MetersPerKm   = 1000.0
)

// MetersToKm converts meters to kilometers
func MetersToKm(meters float64) float64 {
	return meters / MetersPerKm
}

// MetersToMiles converts meters to miles
func MetersToMiles(meters float64) float64 {
	return meters / MetersPerMile
}

// SpeedToPacePerKm converts speed in m/s to pace in minutes per kilometer
func SpeedToPacePerKm(speedMPS float64) float64 {
	if speedMPS <= 0 {
		return 0
	}
	return (MetersPerKm / speedMPS) / 60.0
}

// SpeedToPacePerMile converts speed in m/s to pace in minutes per mile
func SpeedToPacePerMile(speedMPS float64) float64 {
	if speedMPS <= 0 {
		return 0
	}
	return (MetersPerMile / speedMPS) / 60.0
}

// PacePerKmToSpeed converts pace in minutes per kilometer to speed in m/s
func PacePerKmToSpeed(paceMinPerKm float64) float64 {
	if paceMinPerKm <= 0 {
		return 0
	}
	return MetersPerKm / (paceMinPerKm * 60.0)
}

// PacePerMileToSpeed converts pace in minutes per mile to speed in m/s
func PacePerMileToSpeed(paceMinPerMile float64) float64 {
	if paceMinPerMile <= 0 {
		return 0
	}
	return MetersPerMile / (paceMinPerMile * 60.0)
}

// FormatPace formats a speed as a pace string like "4:40 /km" or "7:30 /mi"
func FormatPace(speedMPS float64, imperial bool) string {
	if speedMPS <= 0 {
		return "0:00"
	}

	var pace float64
	unit := "/km"
	if imperial {
		pace = SpeedToPacePerMile(speedMPS)
		unit = "/mi"
	} else {
		pace = SpeedToPacePerKm(speedMPS)
	}

	mins := int(pace)
	secs := int((pace - float64(mins)) * 60)
	return fmt.Sprintf("%d:%02d %s", mins, secs, unit)
}

// FormatDistance formats a distance in meters as "8.00 km" or "4.97 mi"
func FormatDistance(meters float64, imperial bool) string {
	if imperial {
		return fmt.Sprintf("%.2f mi", MetersToMiles(meters))
	}
	return fmt.Sprintf("%.2f km", MetersToKm(meters))
}

// FormatDuration formats seconds as H:MM:SS, or MM:SS under an hour
func FormatDuration(seconds float64) string {
	total := int(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60

	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
