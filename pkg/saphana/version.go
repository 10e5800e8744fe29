package saphana

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrInvalidRelease        = errors.New("invalid release")
	ErrInvalidRevisionNumber = errors.New("invalid revision number")
)

// ReleaseVersion is the parsed manifest release field, e.g. "2.00".
type ReleaseVersion struct {
	Major int
	Raw   string
}

// RevisionNumber identifies a SAP HANA build by service pack, revision and
// patch level. "059" with patch level "02" is SPS05 revision 59.02.
type RevisionNumber struct {
	ServicePack int
	Revision    int
	PatchLevel  int
}

func (r RevisionNumber) String() string {
	return fmt.Sprintf("SPS%02d rev %d.%02d", r.ServicePack, r.Revision, r.PatchLevel)
}

// ParseRelease parses a dotted release string. Only the major component is
// interpreted.
func ParseRelease(raw string) (ReleaseVersion, error) {
	head, _, _ := strings.Cut(raw, ".")
	if head == "" {
		return ReleaseVersion{}, fmt.Errorf("%w %q: empty major version", ErrInvalidRelease, raw)
	}

	major, err := strconv.Atoi(head)
	if err != nil {
		return ReleaseVersion{}, fmt.Errorf("%w %q: %w", ErrInvalidRelease, raw, err)
	}

	return ReleaseVersion{Major: major, Raw: raw}, nil
}

// ParseRevisionNumber parses a rev-number manifest value together with its
// rev-patchlevel. The rev-number must be more than two decimal digits; the
// first two digits are the service pack.
func ParseRevisionNumber(raw string, patchLevel string) (RevisionNumber, error) {
	if len(raw) <= 2 || !isDigits(raw) {
		return RevisionNumber{}, fmt.Errorf("%w %q", ErrInvalidRevisionNumber, raw)
	}

	sp, err := atoiTrimZeros(raw[0:2])
	if err != nil {
		return RevisionNumber{}, fmt.Errorf("%w %q: %w", ErrInvalidRevisionNumber, raw, err)
	}

	rev, err := atoiTrimZeros(raw)
	if err != nil {
		return RevisionNumber{}, fmt.Errorf("%w %q: %w", ErrInvalidRevisionNumber, raw, err)
	}

	return RevisionNumber{
		ServicePack: sp,
		Revision:    rev,
		PatchLevel:  ParsePatchLevel(patchLevel),
	}, nil
}

// ParsePatchLevel parses a rev-patchlevel value. Missing or malformed values
// yield 0.
func ParsePatchLevel(raw string) int {
	pl, err := atoiTrimZeros(raw)
	if err != nil {
		return 0
	}

	return pl
}

// atoiTrimZeros parses a decimal value. Digit-only values too large for an int
// saturate at math.MaxInt so they still order above every table entry.
func atoiTrimZeros(s string) (int, error) {
	s = strings.TrimLeft(s, "0")
	if s == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(s)
	if errors.Is(err, strconv.ErrRange) && isDigits(s) {
		return math.MaxInt, nil
	}

	return n, err
}

func isDigits(s string) bool {
	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
