package domain

// Outcome classifies the result of running one command.
type Outcome int

const (
	// OutcomeSucceeded means the command exited with status 0.
	OutcomeSucceeded Outcome = iota
	// OutcomeFailed means the command ran and exited with a non-zero status.
	OutcomeFailed
	// OutcomeNotFound means the executable could not be located or launched.
	OutcomeNotFound
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeFailed:
		return "failed"
	case OutcomeNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Attempt records the execution of one candidate command.
type Attempt struct {
	Command  Command
	Outcome  Outcome
	ExitCode int
	// Err is nil when the attempt succeeded.
	Err error
}

// Succeeded reports whether the attempt succeeded.
func (a Attempt) Succeeded() bool {
	return a.Outcome == OutcomeSucceeded
}

// Verdict is the overall result of a stage.
type Verdict int

const (
	// VerdictSuccess means one candidate succeeded.
	VerdictSuccess Verdict = iota
	// VerdictExhausted means every candidate failed.
	VerdictExhausted
)

// String returns the verdict name.
func (v Verdict) String() string {
	if v == VerdictSuccess {
		return "success"
	}
	return "exhausted"
}

// StageResult is the outcome of running a candidate list.
type StageResult struct {
	Stage    string
	Verdict  Verdict
	Attempts []Attempt
}

// Winner returns the successful attempt, if any.
func (r StageResult) Winner() (Attempt, bool) {
	if r.Verdict != VerdictSuccess || len(r.Attempts) == 0 {
		return Attempt{}, false
	}
	return r.Attempts[len(r.Attempts)-1], true
}
