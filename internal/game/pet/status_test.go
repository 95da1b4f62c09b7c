package pet_test

import (
	"testing"
	"time"
)

func TestUpdateStatus_NoDecayWithinHour(t *testing.T) {
	p, _ := newTestPet(t, "embercub")
	p.UpdateStatus(testNow.Add(59 * time.Minute))

	if p.Hunger != 50 || p.Mood != 50 {
		t.Fatalf("hunger/mood = %d/%d, want unchanged 50/50", p.Hunger, p.Mood)
	}
	if !p.LastUpdated.Equal(testNow) {
		t.Fatal("LastUpdated advanced without decay")
	}
}

func TestUpdateStatus_DecayPerHour(t *testing.T) {
	p, _ := newTestPet(t, "embercub")
	p.UpdateStatus(testNow.Add(5 * time.Hour))

	if p.Hunger != 40 {
		t.Errorf("Hunger = %d, want 50 - 5*2 = 40", p.Hunger)
	}
	if p.Mood != 45 {
		t.Errorf("Mood = %d, want 50 - 5*1 = 45", p.Mood)
	}
}

// Fractional hours truncate: 2h30m decays as 2 hours.
func TestUpdateStatus_TruncatesPartialHours(t *testing.T) {
	p, _ := newTestPet(t, "embercub")
	p.UpdateStatus(testNow.Add(2*time.Hour + 30*time.Minute))

	if p.Hunger != 46 || p.Mood != 48 {
		t.Fatalf("hunger/mood = %d/%d, want 46/48", p.Hunger, p.Mood)
	}
}

func TestUpdateStatus_RepeatedCallsIdempotent(t *testing.T) {
	p, _ := newTestPet(t, "embercub")
	now := testNow.Add(3 * time.Hour)

	p.UpdateStatus(now)
	hunger, mood := p.Hunger, p.Mood

	// Second call at the same instant: less than an hour since LastUpdated.
	p.UpdateStatus(now)
	p.UpdateStatus(now.Add(30 * time.Minute))
	if p.Hunger != hunger || p.Mood != mood {
		t.Fatalf("repeated UpdateStatus decayed again: %d/%d vs %d/%d",
			p.Hunger, p.Mood, hunger, mood)
	}
}

func TestUpdateStatus_ClampsAtZero(t *testing.T) {
	p, _ := newTestPet(t, "embercub")
	p.UpdateStatus(testNow.Add(1000 * time.Hour))

	if p.Hunger != 0 || p.Mood != 0 {
		t.Fatalf("hunger/mood = %d/%d, want 0/0", p.Hunger, p.Mood)
	}
}
