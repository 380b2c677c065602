package progression

const (
	// RewardSmall is granted for actions that only print or launch a background tool.
	RewardSmall = 5
	// RewardMedium is granted for searches and actions that hand off the terminal.
	RewardMedium = 10

	baseThreshold  = 25
	thresholdSteps = 10
)

// Progression tracks a character's level and the XP earned toward the next one.
type Progression struct {
	Level int `json:"level"`
	XP    int `json:"xp"`
}

// New returns a level 1 progression with no XP.
func New() Progression {
	return Progression{Level: 1}
}

// ExperienceToNextLevel returns the XP needed to advance past level.
// Levels below 1 are treated as level 1.
func ExperienceToNextLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return baseThreshold + thresholdSteps*(level-1)
}

// Threshold is the XP needed to leave the current level.
func (p *Progression) Threshold() int {
	return ExperienceToNextLevel(p.Level)
}

// GainXP adds amount to the current XP and applies every level-up it pays for.
// It returns the new level and true when at least one level was gained.
func (p *Progression) GainXP(amount int) (int, bool) {
	if amount <= 0 {
		return 0, false
	}
	if p.Level < 1 {
		p.Level = 1
	}

	p.XP += amount
	leveled := false
	for {
		threshold := p.Threshold()
		if p.XP < threshold {
			break
		}
		p.XP -= threshold
		p.Level++
		leveled = true
	}

	if leveled {
		return p.Level, true
	}
	return 0, false
}
