package workout

import "strings"

// ClassifyRun infers a run type from a Strava activity type and name.
// Athletes tend to label quality sessions ("Tempo Tuesday", "5k race"),
// so name keywords are checked first; anything unlabeled is an easy run.
func ClassifyRun(activityType, name string) RunType {
	lower := strings.ToLower(name)

	switch {
	case strings.Contains(lower, "tempo"):
		return RunTempo
	case strings.Contains(lower, "interval"),
		strings.Contains(lower, "speed"),
		strings.Contains(lower, "track"):
		return RunIntervals
	case strings.Contains(lower, "hill"):
		return RunHillRepeats
	case strings.Contains(lower, "long"):
		return RunLong
	case strings.Contains(lower, "recovery"):
		return RunRecovery
	case strings.Contains(lower, "progression"):
		return RunProgression
	case strings.Contains(lower, "race"):
		return RunRace
	}

	return RunEasy
}
