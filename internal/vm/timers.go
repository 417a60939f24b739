package vm

// Timers holds the delay and sound counters that count down at TimerFrequency.
type Timers struct {
	Delay uint8
	Sound uint8
}

// tick decrements both timers by one without going below zero.
func (t *Timers) tick() {
	if t.Delay > 0 {
		t.Delay--
	}
	if t.Sound > 0 {
		t.Sound--
	}
}
