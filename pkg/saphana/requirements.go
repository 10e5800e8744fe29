package saphana

import (
	"slices"
)

// PatchRequirement is the minimal service pack, revision and patch level a
// SAP HANA 2 installation needs on a target release.
type PatchRequirement struct {
	ServicePack int
	Revision    int
	PatchLevel  int
}

// RequirementSet is a list of alternative requirements; meeting any one of
// them is enough.
type RequirementSet []PatchRequirement

// Requirements pairs a requirement set with its human readable form.
type Requirements struct {
	Set     RequirementSet
	Minimal string
}

//nolint:gochecknoglobals
var (
	RHEL86Requirements = Requirements{
		Set: RequirementSet{
			{ServicePack: 5, Revision: 59, PatchLevel: 2},
		},
		Minimal: "HANA 2.0 SPS05 rev 59.02 or later",
	}

	RHEL90Requirements = Requirements{
		Set: RequirementSet{
			{ServicePack: 5, Revision: 59, PatchLevel: 4},
			{ServicePack: 6, Revision: 63, PatchLevel: 0},
		},
		Minimal: "HANA 2.0 SPS05 rev 59.04 or later, or SPS06 rev 63 or later",
	}
)

// SelectRequirements returns the requirements for the upgrade target: the
// RHEL 8.6 table when the target is 8.6, the RHEL 9.0 table otherwise.
func SelectRequirements(target TargetVersion) Requirements {
	if target.MatchesTargetVersion("8.6") {
		return RHEL86Requirements
	}

	return RHEL90Requirements
}

// Acceptable reports whether candidate satisfies the set.
//
// A service pack older than every listed one is rejected and a service pack
// newer than every listed one is accepted. Otherwise the candidate must reach
// the revision and patch level of a requirement with the same service pack.
func (s RequirementSet) Acceptable(candidate RevisionNumber) bool {
	if len(s) == 0 {
		return false
	}

	lowest := slices.MinFunc(s, byServicePack).ServicePack
	highest := slices.MaxFunc(s, byServicePack).ServicePack

	switch {
	case candidate.ServicePack < lowest:
		return false
	case candidate.ServicePack > highest:
		return true
	}

	for _, req := range s {
		if candidate.ServicePack != req.ServicePack {
			continue
		}
		if candidate.Revision < req.Revision {
			continue
		}
		if candidate.Revision == req.Revision && candidate.PatchLevel < req.PatchLevel {
			continue
		}

		return true
	}

	return false
}

func byServicePack(a PatchRequirement, b PatchRequirement) int {
	return a.ServicePack - b.ServicePack
}
