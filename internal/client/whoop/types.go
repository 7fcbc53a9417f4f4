package whoop

import "github.com/calery/whoopilot/internal/date"

type UserProfile struct {
	UserID    int64  `json:"user_id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Recovery carries the 0-100 physiological readiness score for a day. Score
// is nil when WHOOP has not scored the day (still calibrating, no wearable
// data).
type Recovery struct {
	Date             date.Date `json:"date"`
	Score            *float64  `json:"score"`
	RestingHeartRate *float64  `json:"resting_heart_rate,omitempty"`
	HRVRmssdMilli    *float64  `json:"hrv_rmssd_milli,omitempty"`
}

type Sleep struct {
	Date                       date.Date `json:"date"`
	Score                      *float64  `json:"score"`
	TotalInBedTimeMilli        *int64    `json:"total_in_bed_time_milli,omitempty"`
	SleepPerformancePercentage *float64  `json:"sleep_performance_percentage,omitempty"`
	Nap                        bool      `json:"nap,omitempty"`
}

type Workout struct {
	Date             date.Date `json:"date"`
	SportName        string    `json:"sport_name,omitempty"`
	Strain           *float64  `json:"strain,omitempty"`
	AverageHeartRate *int      `json:"average_heart_rate,omitempty"`
	Kilojoule        *float64  `json:"kilojoule,omitempty"`
}

type Cycle struct {
	Date             date.Date `json:"date"`
	Strain           *float64  `json:"strain,omitempty"`
	AverageHeartRate *int      `json:"average_heart_rate,omitempty"`
	Kilojoule        *float64  `json:"kilojoule,omitempty"`
}

// MetricsSummary is returned as-is; the vendor doesn't document a stable
// schema for it.
type MetricsSummary map[string]any
