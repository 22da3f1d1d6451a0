package session

// Phase is the viewer-local stage of play. Transitions are strictly forward:
// DISCOVERY -> DELIBERATION -> RESULT, with a direct jump to RESULT when the
// viewer already submitted a verdict for the active case.
type Phase string

const (
	PhaseDiscovery    Phase = "DISCOVERY"
	PhaseDeliberation Phase = "DELIBERATION"
	PhaseResult       Phase = "RESULT"

	// PhaseNoCase is a display state outside the three-phase machine, shown
	// when no case exists for today.
	PhaseNoCase Phase = "NO_CASE"
)
