// ABOUTME: Performance records per-preview view/update call durations and derives latency statistics.
// ABOUTME: Stats computes percentiles from a sorted copy; Indicator classifies health in four bands.
package preview

import (
	"sort"
	"time"
)

// maxSamples caps the number of retained durations per sequence. Recording
// stops at the cap rather than evicting, keeping the instrumentation cost
// constant per call.
const maxSamples = 1_000_000

// SlowCallThreshold is the 120 FPS frame budget (8.33ms). Calls exceeding it
// count against the slow-call ratio.
const SlowCallThreshold = 8333 * time.Microsecond

// Performance tracks view and update function execution times for a preview.
type Performance struct {
	viewTimes   []time.Duration
	updateTimes []time.Duration
}

// ObserveView records one view call duration, unless the cap is reached.
func (p *Performance) ObserveView(d time.Duration) {
	if len(p.viewTimes) < maxSamples {
		p.viewTimes = append(p.viewTimes, d)
	}
}

// ObserveUpdate records one update call duration, unless the cap is reached.
func (p *Performance) ObserveUpdate(d time.Duration) {
	if len(p.updateTimes) < maxSamples {
		p.updateTimes = append(p.updateTimes, d)
	}
}

// RecordView times f as a view call, records the duration, and returns f's result.
func RecordView[T any](p *Performance, f func() T) T {
	start := time.Now()
	result := f()
	p.ObserveView(time.Since(start))
	return result
}

// RecordUpdate times f as an update call, records the duration, and returns f's result.
func RecordUpdate[T any](p *Performance, f func() T) T {
	start := time.Now()
	result := f()
	p.ObserveUpdate(time.Since(start))
	return result
}

// Reset clears all recorded samples.
func (p *Performance) Reset() {
	p.viewTimes = nil
	p.updateTimes = nil
}

// ViewCount returns the number of recorded view calls.
func (p *Performance) ViewCount() int {
	return len(p.viewTimes)
}

// UpdateCount returns the number of recorded update calls.
func (p *Performance) UpdateCount() int {
	return len(p.updateTimes)
}

// ViewStats computes statistics over the recorded view call durations.
func (p *Performance) ViewStats() Stats {
	return computeStats(p.viewTimes)
}

// UpdateStats computes statistics over the recorded update call durations.
func (p *Performance) UpdateStats() Stats {
	return computeStats(p.updateTimes)
}

// Overall combines the view and update indicators, returning the worse one.
func (p *Performance) Overall() Indicator {
	return p.ViewStats().Indicator().Combine(p.UpdateStats().Indicator())
}

// Stats holds derived statistics for one duration sequence. Duration fields
// are zero when Count is zero.
type Stats struct {
	// Count is the number of recorded measurements.
	Count int
	// Last is the most recent measurement.
	Last time.Duration
	// Avg is the mean of all measurements.
	Avg time.Duration
	// Min is the smallest measurement.
	Min time.Duration
	// Max is the largest measurement.
	Max time.Duration
	// P50, P90, P99 are percentiles of the sorted measurements.
	P50 time.Duration
	P90 time.Duration
	P99 time.Duration
	// SlowCalls is the number of measurements exceeding SlowCallThreshold.
	SlowCalls int
}

// computeStats derives Stats from a sample sequence, sorting a copy for the
// percentiles so the recording order is preserved.
func computeStats(times []time.Duration) Stats {
	if len(times) == 0 {
		return Stats{}
	}

	sorted := make([]time.Duration, len(times))
	copy(sorted, times)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var total time.Duration
	slow := 0
	for _, d := range times {
		total += d
		if d > SlowCallThreshold {
			slow++
		}
	}

	return Stats{
		Count:     len(times),
		Last:      times[len(times)-1],
		Avg:       total / time.Duration(len(times)),
		Min:       sorted[0],
		Max:       sorted[len(sorted)-1],
		P50:       percentile(sorted, 50),
		P90:       percentile(sorted, 90),
		P99:       percentile(sorted, 99),
		SlowCalls: slow,
	}
}

// percentile returns the value at percentile p from a sorted slice, indexing
// at p*n/100 clamped to the last element.
func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	index := p * len(sorted) / 100
	if index > len(sorted)-1 {
		index = len(sorted) - 1
	}
	return sorted[index]
}

// Indicator classifies performance using p90 against the slow-call threshold,
// with the slow-call ratio as a secondary signal. P90 represents what most
// users will experience in practice.
func (s Stats) Indicator() Indicator {
	if s.Count == 0 {
		return IndicatorUnknown
	}

	slowPct := float64(s.SlowCalls) / float64(s.Count) * 100

	switch {
	case s.P90 <= 4*time.Millisecond && slowPct < 1:
		return IndicatorHealthy
	case s.P90 <= 8*time.Millisecond && slowPct < 5:
		return IndicatorDegraded
	default:
		return IndicatorSevere
	}
}

// Indicator is a coarse health classification for quick visual feedback.
type Indicator int

const (
	// IndicatorUnknown means no data has been recorded.
	IndicatorUnknown Indicator = iota
	// IndicatorHealthy means p90 is at or under 4ms with under 1% slow calls.
	IndicatorHealthy
	// IndicatorDegraded means p90 is at or under 8ms with under 5% slow calls.
	IndicatorDegraded
	// IndicatorSevere means p90 is over 8ms or at least 5% of calls are slow.
	IndicatorSevere
)

// String returns the indicator's display name.
func (i Indicator) String() string {
	switch i {
	case IndicatorHealthy:
		return "Healthy"
	case IndicatorDegraded:
		return "Degraded"
	case IndicatorSevere:
		return "Severe"
	default:
		return "Unknown"
	}
}

// Combine returns the worse of two indicators, in the severity order
// Severe > Degraded > Healthy > Unknown.
func (i Indicator) Combine(other Indicator) Indicator {
	switch {
	case i == IndicatorSevere || other == IndicatorSevere:
		return IndicatorSevere
	case i == IndicatorDegraded || other == IndicatorDegraded:
		return IndicatorDegraded
	case i == IndicatorHealthy || other == IndicatorHealthy:
		return IndicatorHealthy
	default:
		return IndicatorUnknown
	}
}
