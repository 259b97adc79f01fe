package utils

import "time"

// Stats tracks how the board has evolved since it was last regenerated: step timing and population
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	LastStepDuration     time.Duration
	StartTime            time.Time
}

// NewStats starts the clock for a fresh board
func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one generation advance that took duration and left population cells alive
func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	s.LastStepDuration = duration
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Exponential moving average, recent generations weigh 10%
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Restart clears the counters when a new pattern replaces the board
func (s *Stats) Restart() {
	*s = Stats{StartTime: time.Now()}
}
