package workout

// RunType categorizes a run by its training purpose
type RunType string

const (
	RunEasy        RunType = "easy"
	RunRecovery    RunType = "recovery"
	RunLong        RunType = "long"
	RunTempo       RunType = "tempo"
	RunIntervals   RunType = "intervals"
	RunHillRepeats RunType = "hill_repeats"
	RunProgression RunType = "progression"
	RunRace        RunType = "race"
	RunRest        RunType = "rest"
)

// runTypes is the closed set of valid run types
var runTypes = map[RunType]bool{
	RunEasy:        true,
	RunRecovery:    true,
	RunLong:        true,
	RunTempo:       true,
	RunIntervals:   true,
	RunHillRepeats: true,
	RunProgression: true,
	RunRace:        true,
	RunRest:        true,
}

// Valid reports whether t is one of the known run types
func (t RunType) Valid() bool {
	return runTypes[t]
}

// IsQualityEffort reports whether t is a sustained high-intensity type
// (tempo, race, intervals) usable for threshold pace estimation
func (t RunType) IsQualityEffort() bool {
	return t == RunTempo || t == RunRace || t == RunIntervals
}
