package models

// CircuitBreakerState is the state of the breaker guarding the sheet source.
// The numeric value is what the circuit_breaker_state gauge reports.
type CircuitBreakerState int

func (s CircuitBreakerState) String() string {
	switch s {
	case 0:
		return "closed"
	case 1:
		return "open"
	case 2:
		return "half_open"
	}
	return "unknown"
}

// SourceHealth is what the health endpoint reports about the sheet source
type SourceHealth struct {
	State               CircuitBreakerState
	ConsecutiveFailures int
}
