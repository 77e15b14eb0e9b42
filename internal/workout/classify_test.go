package workout

import "testing"

func TestClassifyRun(t *testing.T) {
	tests := []struct {
		name         string
		activityName string
		want         RunType
	}{
		{"tempo keyword", "Tempo Tuesday", RunTempo},
		{"interval keyword", "6x800 Intervals", RunIntervals},
		{"speed keyword", "Speed work", RunIntervals},
		{"track keyword", "Track session", RunIntervals},
		{"hill keyword", "Hill repeats", RunHillRepeats},
		{"long keyword", "Sunday Long Run", RunLong},
		{"recovery keyword", "Recovery shakeout", RunRecovery},
		{"progression keyword", "Progression run", RunProgression},
		{"race keyword", "Parkrun race effort", RunRace},
		{"case insensitive", "TEMPO INTERVALS", RunTempo},
		{"unlabeled defaults to easy", "Morning Run", RunEasy},
		{"empty name", "", RunEasy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyRun("Run", tt.activityName); got != tt.want {
				t.Errorf("ClassifyRun(%q) = %q, want %q", tt.activityName, got, tt.want)
			}
		})
	}
}
