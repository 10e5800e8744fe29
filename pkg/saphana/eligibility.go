package saphana

import (
	"github.com/sirupsen/logrus"
)

// RequiredMajorVersion is the only SAP HANA major version that can be
// upgraded.
const RequiredMajorVersion = 2

// LegacyRelease is the release string of SAP HANA 1 installations.
const LegacyRelease = "1.00"

// Classification is the result of evaluating an instance against a
// requirement set.
type Classification int

const (
	Eligible Classification = iota
	MajorMismatch
	BelowMinimum
)

func (c Classification) String() string {
	switch c {
	case Eligible:
		return "Eligible"
	case MajorMismatch:
		return "MajorMismatch"
	case BelowMinimum:
		return "BelowMinimum"
	default:
		return "Unknown"
	}
}

// IsLegacyMajor1 reports whether the instance is SAP HANA 1. The release must
// be exactly "1.00"; a missing release is not legacy.
//
// This is an exact string match and differs from the major check in Classify:
// a release of "1.5" is not legacy but is a major mismatch.
func IsLegacyMajor1(instance Instance) bool {
	release, ok := instance.Manifest.Lookup(ManifestKeyRelease)

	return ok && release == LegacyRelease
}

// Classify evaluates a SAP HANA instance against set. Malformed manifest
// values are logged and classify the instance as not eligible.
func Classify(instance Instance, set RequirementSet, log logrus.FieldLogger) Classification {
	l := log.WithField("instance", instance.Name)

	raw := instance.Manifest.Get(ManifestKeyRelease, DefaultRelease)

	release, err := ParseRelease(raw)
	if err != nil {
		l.WithError(err).Warn("Failed to parse manifest release field")

		return MajorMismatch
	}

	if release.Major != RequiredMajorVersion {
		l.Infof("Unsupported major version %s", release.Raw)

		return MajorMismatch
	}

	rev, err := ParseRevisionNumber(
		instance.Manifest.Get(ManifestKeyRevNumber, DefaultRevNumber),
		instance.Manifest.Get(ManifestKeyRevPatchLevel, DefaultRevPatchLevel),
	)
	if err != nil {
		l.WithError(err).Warn("Invalid rev-number field in manifest")

		return BelowMinimum
	}

	if !set.Acceptable(rev) {
		l.Debugf("%s does not meet the minimal requirements", rev)

		return BelowMinimum
	}

	return Eligible
}
