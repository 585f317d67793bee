package engine

import "fmt"

// ConfigError is a fatal setup-time error: no race begins.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string { return fmt.Sprintf("engine: config error: %s", e.Reason) }

// RaceError is a race-level abort, carrying the error code recorded on the
// RaceResult. The resolver never retries: any RaceError aborts the race.
type RaceError struct {
	Code ErrorCode
	Msg  string
}

func (e *RaceError) Error() string { return fmt.Sprintf("engine: %s: %s", e.Code, e.Msg) }

// ContractViolation signals an ability breaking its contract (publishing an
// unknown event variant, mutating Finished directly, etc). This is a
// programmer error and is never swallowed.
type ContractViolation struct {
	Msg string
}

func (e *ContractViolation) Error() string { return fmt.Sprintf("engine: ability contract violation: %s", e.Msg) }
