package models

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// EvidenceKind is one of the four detectable ghost-activity signatures.
type EvidenceKind int

const (
	EMF EvidenceKind = iota
	Temperature
	Fingerprints
	Sound
)

// EvidenceKinds lists every evidence kind in declaration order.
var EvidenceKinds = []EvidenceKind{EMF, Temperature, Fingerprints, Sound}

func (k EvidenceKind) String() string {
	switch k {
	case EMF:
		return "EMF"
	case Temperature:
		return "TEMPERATURE"
	case Fingerprints:
		return "FINGERPRINTS"
	case Sound:
		return "SOUND"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether k is one of the four evidence kinds.
func (k EvidenceKind) Valid() bool {
	return k >= EMF && k <= Sound
}

// ParseEvidenceKind accepts the names produced by String, case-insensitively.
func ParseEvidenceKind(s string) (EvidenceKind, error) {
	for _, k := range EvidenceKinds {
		if strings.EqualFold(strings.TrimSpace(s), k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown evidence kind %q", s)
}

func (k EvidenceKind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

func (k *EvidenceKind) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseEvidenceKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// GhostClass is one of the four ghost archetypes, or GhostUnknown when
// evidence cannot identify one.
type GhostClass int

const (
	Poltergeist GhostClass = iota
	Banshee
	Bullies
	Phantom
	GhostUnknown
)

// GhostClasses lists the concrete classes in matching order.
var GhostClasses = []GhostClass{Poltergeist, Banshee, Bullies, Phantom}

var classEvidence = map[GhostClass][3]EvidenceKind{
	Poltergeist: {EMF, Temperature, Fingerprints},
	Banshee:     {EMF, Temperature, Sound},
	Bullies:     {EMF, Fingerprints, Sound},
	Phantom:     {Temperature, Fingerprints, Sound},
}

func (c GhostClass) String() string {
	switch c {
	case Poltergeist:
		return "Poltergeist"
	case Banshee:
		return "Banshee"
	case Bullies:
		return "Bullies"
	case Phantom:
		return "Phantom"
	default:
		return "Unknown"
	}
}

// ParseGhostClass accepts the names produced by String, case-insensitively.
func ParseGhostClass(s string) (GhostClass, error) {
	for c := Poltergeist; c <= GhostUnknown; c++ {
		if strings.EqualFold(strings.TrimSpace(s), c.String()) {
			return c, nil
		}
	}
	return GhostUnknown, fmt.Errorf("unknown ghost class %q", s)
}

func (c GhostClass) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

func (c *GhostClass) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseGhostClass(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Evidence returns the three evidence kinds a ghost of class c can leave.
// It returns nil for GhostUnknown.
func (c GhostClass) Evidence() []EvidenceKind {
	kinds, ok := classEvidence[c]
	if !ok {
		return nil
	}
	return kinds[:]
}

// DistinctKinds counts each evidence kind in log once.
func DistinctKinds(log []EvidenceKind) int {
	var seen [4]bool
	n := 0
	for _, k := range log {
		if !k.Valid() || seen[k] {
			continue
		}
		seen[k] = true
		n++
	}
	return n
}

// MatchGhost maps the set of evidence kinds present in log to the ghost class
// whose three kinds are all present. Classes are tried in GhostClasses order,
// so a log holding all four kinds reports Poltergeist.
func MatchGhost(log []EvidenceKind) GhostClass {
	var present [4]bool
	for _, k := range log {
		if k.Valid() {
			present[k] = true
		}
	}
	for _, c := range GhostClasses {
		kinds := classEvidence[c]
		if present[kinds[0]] && present[kinds[1]] && present[kinds[2]] {
			return c
		}
	}
	return GhostUnknown
}
