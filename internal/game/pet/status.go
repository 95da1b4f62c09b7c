package pet

import "time"

const (
	// hungerDecayPerHour and moodDecayPerHour are the well-being decay
	// rates applied by UpdateStatus.
	hungerDecayPerHour = 2
	moodDecayPerHour   = 1
)

// UpdateStatus applies hunger and mood decay for the wall-clock time elapsed
// since LastUpdated. Decay is integer-truncated per-hour and only applied
// once at least one full hour has passed, so repeated calls within the same
// hour are idempotent.
//
// Postcondition: Hunger and Mood stay in [0, 100]; LastUpdated advances to
// now iff decay was applied.
func (p *Pet) UpdateStatus(now time.Time) {
	hours := now.Sub(p.LastUpdated).Hours()
	if hours < 1 {
		return
	}
	p.Hunger = clamp(p.Hunger-int(hours)*hungerDecayPerHour, 0, MaxHunger)
	p.Mood = clamp(p.Mood-int(hours)*moodDecayPerHour, 0, MaxMood)
	p.LastUpdated = now
}
