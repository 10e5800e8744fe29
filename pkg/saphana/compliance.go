package saphana

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/lburgazzoli/ipu-lint/pkg/report"
	"github.com/lburgazzoli/ipu-lint/pkg/util/answers"
	"github.com/lburgazzoli/ipu-lint/pkg/util/arch"
)

// Flavour is the upgrade flavour the SAP HANA checks apply to.
const Flavour = "saphana"

// TargetVersion answers questions about the release being upgraded to.
type TargetVersion interface {
	MatchesTargetVersion(exprs ...string) bool
	TargetMajorVersion() string
}

// Architecture answers questions about the host architecture.
type Architecture interface {
	MatchesArchitecture(names ...string) bool
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Answer(ctx context.Context, q answers.Question) (bool, error)
}

// ConfirmUpgradeQuestion asks whether the upgrade may proceed on a target
// release whose SAP HANA requirements are not known.
//
//nolint:gochecknoglobals
var ConfirmUpgradeQuestion = answers.Question{
	Scope:       "confirm_upgrade_for_saphana_version",
	Key:         "confirm",
	Label:       "Do you want the upgrade proceed for the currently installed SAP HANA 2.0 version?",
	Description: "Enter True, otherwise the upgrade process will be interrupted.",
	Reason:      uncheckedVersionNotice,
}

// supportedArchitectures lists the architectures SAP HANA upgrades are
// supported on, by target major version. Majors not listed support x86_64 only.
//
//nolint:gochecknoglobals
var supportedArchitectures = map[string][]string{
	"8": {arch.X86_64},
	"9": {arch.X86_64, arch.PPC64LE},
}

// uncheckedTargets are the target version ranges the requirement tables do
// not cover. Each entry is a conjunction.
//
//nolint:gochecknoglobals
var uncheckedTargets = [][]string{
	{">= 8.8", "< 9"},
	{">= 9.2"},
}

// SupportedArchitectures returns the architectures supported for a target
// major version.
func SupportedArchitectures(targetMajor string) []string {
	if names, ok := supportedArchitectures[targetMajor]; ok {
		return names
	}

	return []string{arch.X86_64}
}

// Collaborators are the external dependencies of an Evaluator.
type Collaborators struct {
	Version   TargetVersion
	Arch      Architecture
	Confirmer Confirmer
	Sink      report.Sink
	Log       logrus.FieldLogger
}

// Evaluator decides whether the installed SAP HANA instances allow the
// upgrade, emitting a report for every problem found.
type Evaluator struct {
	version   TargetVersion
	arch      Architecture
	confirmer Confirmer
	sink      report.Sink
	log       logrus.FieldLogger
}

// NewEvaluator creates an Evaluator. Version, Arch and Sink are required.
func NewEvaluator(c Collaborators) *Evaluator {
	log := c.Log
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}

	return &Evaluator{
		version:   c.Version,
		arch:      c.Arch,
		confirmer: c.Confirmer,
		sink:      c.Sink,
		log:       log,
	}
}

// Outcome describes how an evaluation ended. Findings are delivered to the
// sink, not through the outcome.
type Outcome struct {
	// Skipped is true when the checks did not apply to the system.
	Skipped bool
	// Reason explains a skipped or stopped evaluation.
	Reason string
}

// InfoSource provides the collected SAP HANA facts. A nil Info means no facts
// were collected.
type InfoSource interface {
	SapHanaInfo(ctx context.Context) (*Info, error)
}

type staticInfo struct {
	info *Info
}

func (s staticInfo) SapHanaInfo(_ context.Context) (*Info, error) {
	return s.info, nil
}

// Evaluate runs the SAP HANA checks once for the given upgrade flavour and
// facts. Evaluation stops early only when the flavour is not saphana, the
// architecture is unsupported or there are no facts; otherwise every
// applicable inhibitor is emitted.
func (e *Evaluator) Evaluate(ctx context.Context, flavour string, info *Info) Outcome {
	outcome, _ := e.EvaluateSource(ctx, flavour, staticInfo{info: info})

	return outcome
}

// EvaluateSource is Evaluate with the facts read from src. The facts are read
// only after the architecture gate passed, so an unsupported platform is
// reported whatever state the facts are in. A nil src means no facts.
func (e *Evaluator) EvaluateSource(ctx context.Context, flavour string, src InfoSource) (Outcome, error) {
	if flavour != Flavour {
		return Outcome{Skipped: true, Reason: "upgrade flavour is not " + Flavour}, nil
	}

	r := &run{Evaluator: e, ctx: ctx}

	if !r.platformSupported() {
		return Outcome{Reason: "unsupported architecture for the target release"}, nil
	}

	var info *Info

	if src != nil {
		i, err := src.SapHanaInfo(ctx)
		if err != nil {
			return Outcome{}, fmt.Errorf("loading SAP HANA facts: %w", err)
		}

		info = i
	}

	if info == nil {
		return Outcome{Skipped: true, Reason: "no SAP HANA facts collected"}, nil
	}

	r.checkRunning(info)
	r.checkLegacyVersion(info)
	r.checkMinimalVersion(info)
	r.checkUncheckedTarget()

	return Outcome{}, nil
}

// run holds the state of a single evaluation.
type run struct {
	*Evaluator

	ctx context.Context

	confirmAsked bool
	confirmed    bool
}

func (r *run) platformSupported() bool {
	major := r.version.TargetMajorVersion()

	if r.arch.MatchesArchitecture(SupportedArchitectures(major)...) {
		return true
	}

	r.sink.Emit(unsupportedPlatformReport(major))

	return false
}

func (r *run) checkRunning(info *Info) {
	if info.Running {
		r.sink.Emit(runningReport())
	}
}

func (r *run) checkLegacyVersion(info *Info) {
	found := Aggregate(nil)

	for _, i := range info.Instances {
		if IsLegacyMajor1(i) {
			found.Add(i)
		}
	}

	if found.Len() > 0 {
		r.sink.Emit(legacyVersionReport(found))
	}
}

func (r *run) checkMinimalVersion(info *Info) {
	reqs := SelectRequirements(r.version)
	found := Aggregate(nil)

	for _, i := range info.Instances {
		if IsLegacyMajor1(i) {
			continue
		}

		if Classify(i, reqs.Set, r.log) != Eligible {
			found.Add(i)
		}
	}

	if found.Len() > 0 {
		r.sink.Emit(updateRequiredReport(found, reqs.Minimal))
	}
}

func (r *run) checkUncheckedTarget() {
	unchecked := false

	for _, exprs := range uncheckedTargets {
		if r.version.MatchesTargetVersion(exprs...) {
			unchecked = true

			break
		}
	}

	if !unchecked || r.upgradeConfirmed() {
		return
	}

	r.sink.Emit(versionUncheckedReport(ConfirmUpgradeQuestion))
	r.sink.Emit(versionCheckedReport())
}

// upgradeConfirmed asks the confirmation question at most once per run.
// Errors and missing answers count as a refusal.
func (r *run) upgradeConfirmed() bool {
	if r.confirmAsked {
		return r.confirmed
	}

	r.confirmAsked = true

	if r.confirmer == nil {
		return false
	}

	answer, err := r.confirmer.Answer(r.ctx, ConfirmUpgradeQuestion)

	switch {
	case errors.Is(err, answers.ErrUnanswered):
		r.log.Debugf("No answer for %s", ConfirmUpgradeQuestion)
	case err != nil:
		r.log.WithError(err).Warnf("Failed to get answer for %s", ConfirmUpgradeQuestion)
	default:
		r.confirmed = answer
	}

	return r.confirmed
}
