package models

// Winner names the side that won a hunt.
type Winner string

const (
	WinnerHunters Winner = "HUNTERS"
	WinnerGhost   Winner = "GHOST"
)

// ExitReason records why a hunter left the house.
type ExitReason string

const (
	ExitFear     ExitReason = "FEAR"
	ExitBoredom  ExitReason = "BOREDOM"
	ExitEvidence ExitReason = "EVIDENCE"
	// ExitNone marks a hunter that was still in the house when the run ended.
	ExitNone ExitReason = "NONE"
)

// HunterSummary is the final state of one hunter.
type HunterSummary struct {
	ID        string       `yaml:"id"`
	Name      string       `yaml:"name"`
	Equipment EvidenceKind `yaml:"equipment"`
	Fear      int          `yaml:"fear"`
	Boredom   int          `yaml:"boredom"`
	Exit      ExitReason   `yaml:"exit"`
	Room      string       `yaml:"room,omitempty"` // set only when Exit is NONE
}

// Report is the outcome of a finished hunt.
type Report struct {
	ID            string          `yaml:"id"`
	Seed          uint64          `yaml:"seed"`
	Winner        Winner          `yaml:"winner"`
	ActualGhost   GhostClass      `yaml:"actual_ghost"`
	MatchedGhost  GhostClass      `yaml:"matched_ghost"`
	Distinct      int             `yaml:"distinct_evidence"`
	Evidence      []EvidenceKind  `yaml:"evidence"`
	FearExits     []string        `yaml:"fear_exits"`
	BoredomExits  []string        `yaml:"boredom_exits"`
	EvidenceExits []string        `yaml:"evidence_exits"`
	Hunters       []HunterSummary `yaml:"hunters"`
	Narration     string          `yaml:"narration,omitempty"`
}

// Sufficient reports whether the collected evidence names a ghost class.
func (r *Report) Sufficient(threshold int) bool {
	return r.Distinct >= threshold
}

// Verdict is "Correct" when the evidence identified the actual ghost.
func (r *Report) Verdict() string {
	if r.MatchedGhost == r.ActualGhost {
		return "Correct"
	}
	return "Incorrect"
}
