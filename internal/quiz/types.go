package quiz

import (
	"fmt"
	"strings"
)

// TypeID identifies one of the eight continuity types.
type TypeID string

const (
	Commander   TypeID = "commander"
	Analyzer    TypeID = "analyzer"
	Implementer TypeID = "implementer"
	Creator     TypeID = "creator"
	Coordinator TypeID = "coordinator"
	Stabilizer  TypeID = "stabilizer"
	Finisher    TypeID = "finisher"
	Catalyst    TypeID = "catalyst"
)

// TypeOrder is the definition order of the types. Name scanning and
// tie-breaking both walk this slice front to back.
var TypeOrder = []TypeID{
	Commander,
	Analyzer,
	Implementer,
	Creator,
	Coordinator,
	Stabilizer,
	Finisher,
	Catalyst,
}

// NumTypes is the number of defined continuity types.
const NumTypes = 8

// TypeProfile is the static descriptive record for one type.
type TypeProfile struct {
	ID           TypeID   `json:"id"`
	Name         string   `json:"name"`       // English name, e.g. "Commander"
	LocalName    string   `json:"local_name"` // Japanese label, e.g. 指揮官型
	Description  string   `json:"description"`
	Strengths    []string `json:"strengths"`
	Roles        []string `json:"recommended_roles"`
	GrowthPoints []string `json:"growth_points"`
	FourPillars  string   `json:"four_pillars"`
	FiveElements string   `json:"five_elements"`
}

// Aliases returns every name the type may be referred to by in free text,
// English name first.
func (p *TypeProfile) Aliases() []string {
	return []string{p.Name, p.LocalName}
}

// String returns "Name (LocalName)".
func (p *TypeProfile) String() string {
	return fmt.Sprintf("%s (%s)", p.Name, p.LocalName)
}

// profiles is the package-level registry keyed by ID.
var profiles map[TypeID]*TypeProfile

func init() {
	if len(seedProfiles) != NumTypes || len(TypeOrder) != NumTypes {
		panic("quiz: type table size mismatch")
	}
	profiles = make(map[TypeID]*TypeProfile, len(seedProfiles))
	for i := range seedProfiles {
		p := &seedProfiles[i]
		if p.ID != TypeOrder[i] {
			panic(fmt.Sprintf("quiz: profile %d is %q, want %q", i, p.ID, TypeOrder[i]))
		}
		profiles[p.ID] = p
	}
}

// Profile returns the profile for id, or nil if id is not a defined type.
func Profile(id TypeID) *TypeProfile {
	return profiles[id]
}

// Profiles returns all profiles in definition order.
func Profiles() []*TypeProfile {
	out := make([]*TypeProfile, 0, len(TypeOrder))
	for _, id := range TypeOrder {
		out = append(out, profiles[id])
	}
	return out
}

// Valid reports whether id is one of the defined types.
func (id TypeID) Valid() bool {
	_, ok := profiles[id]
	return ok
}

// LookupType resolves a type by ID, English name or local name. Matching
// on ID and English name is case-insensitive.
func LookupType(name string) (*TypeProfile, bool) {
	name = strings.TrimSpace(name)
	for _, id := range TypeOrder {
		p := profiles[id]
		if strings.EqualFold(string(p.ID), name) || strings.EqualFold(p.Name, name) || p.LocalName == name {
			return p, true
		}
	}
	return nil, false
}
