package saphana_test

import (
	"io/fs"
	"path/filepath"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/mock"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/lburgazzoli/ipu-lint/pkg/facts"
	"github.com/lburgazzoli/ipu-lint/pkg/lint/check"
	"github.com/lburgazzoli/ipu-lint/pkg/lint/check/result"
	checksaphana "github.com/lburgazzoli/ipu-lint/pkg/lint/checks/application/saphana"
	"github.com/lburgazzoli/ipu-lint/pkg/saphana"
	"github.com/lburgazzoli/ipu-lint/pkg/util/answers"
	"github.com/lburgazzoli/ipu-lint/pkg/util/arch"
	mocks "github.com/lburgazzoli/ipu-lint/pkg/util/test/mocks/saphana"
	"github.com/lburgazzoli/ipu-lint/pkg/util/version"

	. "github.com/onsi/gomega"
	. "github.com/onsi/gomega/gstruct"
)

func newTarget(t *testing.T, flavour string, targetVersion string, hostArch string, info *saphana.Info) check.Target {
	t.Helper()

	g := NewWithT(t)

	tv, err := version.NewTarget(targetVersion)
	g.Expect(err).ToNot(HaveOccurred())

	host, err := arch.NewHost(hostArch)
	g.Expect(err).ToNot(HaveOccurred())

	log, _ := logtest.NewNullLogger()

	target := check.Target{
		Flavour: flavour,
		Version: tv,
		Arch:    host,
		Log:     log,
	}

	if info != nil {
		target.Facts = &facts.Static{Document: facts.Document{SapHana: info}}
	}

	return target
}

func instance(name string, number string, release string, rev string, patch string) saphana.Instance {
	return saphana.Instance{
		Name:           name,
		Path:           "/hana/shared/" + name,
		Admin:          "hdbadm",
		InstanceNumber: number,
		Manifest: saphana.Manifest{
			{Key: saphana.ManifestKeyRelease, Value: release},
			{Key: saphana.ManifestKeyRevNumber, Value: rev},
			{Key: saphana.ManifestKeyRevPatchLevel, Value: patch},
		},
	}
}

func condition(dr *result.DiagnosticResult) metav1.Condition {
	return dr.Status.Conditions[0].Condition
}

func TestCompatibilityCheck_Metadata(t *testing.T) {
	g := NewWithT(t)

	c := checksaphana.NewCompatibilityCheck()

	g.Expect(c.ID()).To(Equal("application.saphana.compatibility"))
	g.Expect(c.Group()).To(Equal(check.GroupApplication))
	g.Expect(c.CheckKind()).To(Equal("saphana"))
	g.Expect(c.CheckType()).To(Equal(string(check.CheckTypeCompatibility)))
}

func TestCompatibilityCheck_CanApply(t *testing.T) {
	g := NewWithT(t)

	c := checksaphana.NewCompatibilityCheck()

	g.Expect(c.CanApply(t.Context(), newTarget(t, saphana.Flavour, "8.6", "x86_64", nil))).To(BeTrue())
	g.Expect(c.CanApply(t.Context(), check.Target{Flavour: saphana.Flavour})).To(BeFalse())
}

func TestCompatibilityCheck_DefaultFlavourIsSkipped(t *testing.T) {
	g := NewWithT(t)

	target := newTarget(t, "default", "8.6", "x86_64", &saphana.Info{Running: true})

	dr, err := checksaphana.NewCompatibilityCheck().Validate(t.Context(), target)

	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(dr.Reports).To(BeEmpty())
	g.Expect(dr.Status.Conditions).To(HaveLen(1))
	g.Expect(condition(dr)).To(MatchFields(IgnoreExtras, Fields{
		"Type":    Equal(check.ConditionTypeValidated),
		"Status":  Equal(metav1.ConditionTrue),
		"Reason":  Equal(check.ReasonCheckSkipped),
		"Message": ContainSubstring("upgrade flavour is not saphana"),
	}))
	g.Expect(dr.Annotations).To(HaveKeyWithValue(check.AnnotationCheckFlavour, "default"))
	g.Expect(dr.Annotations).To(HaveKeyWithValue(check.AnnotationCheckTargetVersion, "8.6"))
}

func TestCompatibilityCheck_NoFactsIsSkipped(t *testing.T) {
	g := NewWithT(t)

	target := newTarget(t, saphana.Flavour, "8.6", "x86_64", nil)

	dr, err := checksaphana.NewCompatibilityCheck().Validate(t.Context(), target)

	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(dr.Reports).To(BeEmpty())
	g.Expect(condition(dr).Reason).To(Equal(check.ReasonCheckSkipped))
	g.Expect(dr.IsFailing()).To(BeFalse())
}

func TestCompatibilityCheck_EligibleInstances(t *testing.T) {
	g := NewWithT(t)

	target := newTarget(t, saphana.Flavour, "8.6", "x86_64", &saphana.Info{
		Instances: []saphana.Instance{
			instance("HDB", "00", "2.00", "063", "00"),
			instance("HDB", "01", "2.00", "059", "02"),
		},
	})

	dr, err := checksaphana.NewCompatibilityCheck().Validate(t.Context(), target)

	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(dr.Reports).To(BeEmpty())
	g.Expect(condition(dr)).To(MatchFields(IgnoreExtras, Fields{
		"Type":   Equal(check.ConditionTypeCompatible),
		"Status": Equal(metav1.ConditionTrue),
		"Reason": Equal(check.ReasonRequirementsMet),
	}))
	g.Expect(dr.Annotations).To(HaveKeyWithValue(check.AnnotationReportCount, "0"))
	g.Expect(dr.Annotations).To(HaveKeyWithValue(check.AnnotationInhibitorCount, "0"))
}

func TestCompatibilityCheck_InhibitingFindings(t *testing.T) {
	g := NewWithT(t)

	target := newTarget(t, saphana.Flavour, "8.6", "x86_64", &saphana.Info{
		Running: true,
		Instances: []saphana.Instance{
			instance("HDB", "00", "1.00", "122", "00"),
			instance("HDB", "01", "2.00", "040", "00"),
		},
	})

	dr, err := checksaphana.NewCompatibilityCheck().Validate(t.Context(), target)

	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(dr.Reports).To(HaveLen(3))
	g.Expect(dr.Reports[0].Title).To(Equal(saphana.TitleRunning))
	g.Expect(dr.Reports[1].Title).To(Equal(saphana.TitleLegacyVersion))
	g.Expect(dr.Reports[2].Title).To(Equal(saphana.TitleUpdateRequired))
	g.Expect(condition(dr)).To(MatchFields(IgnoreExtras, Fields{
		"Type":    Equal(check.ConditionTypeCompatible),
		"Status":  Equal(metav1.ConditionFalse),
		"Reason":  Equal(check.ReasonUpgradeInhibited),
		"Message": Equal("Found 3 inhibiting finding(s)"),
	}))
	g.Expect(dr.GetImpact()).To(Equal(result.ImpactBlocking))
	g.Expect(dr.Annotations).To(HaveKeyWithValue(check.AnnotationInhibitorCount, "3"))
}

func TestCompatibilityCheck_UnsupportedArchitecture(t *testing.T) {
	g := NewWithT(t)

	target := newTarget(t, saphana.Flavour, "9.0", "s390x", &saphana.Info{Running: true})

	dr, err := checksaphana.NewCompatibilityCheck().Validate(t.Context(), target)

	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(dr.Reports).To(HaveLen(1))
	g.Expect(dr.Reports[0].Title).To(Equal(saphana.UnsupportedPlatformTitle("9")))
	g.Expect(condition(dr)).To(MatchFields(IgnoreExtras, Fields{
		"Type":   Equal(check.ConditionTypeSupported),
		"Status": Equal(metav1.ConditionFalse),
		"Reason": Equal(check.ReasonArchitectureUnsupported),
	}))
}

func TestCompatibilityCheck_ConfirmedUncheckedTarget(t *testing.T) {
	g := NewWithT(t)

	confirmer := mocks.NewMockConfirmer()
	confirmer.On("Answer", mock.Anything, saphana.ConfirmUpgradeQuestion).Return(true, nil).Once()

	target := newTarget(t, saphana.Flavour, "9.2", "ppc64le", &saphana.Info{
		Instances: []saphana.Instance{instance("HDB", "00", "2.00", "070", "00")},
	})
	target.Answers = confirmer

	dr, err := checksaphana.NewCompatibilityCheck().Validate(t.Context(), target)

	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(dr.Reports).To(BeEmpty())
	g.Expect(condition(dr).Reason).To(Equal(check.ReasonRequirementsMet))

	confirmer.AssertExpectations(t)
}

func TestCompatibilityCheck_UnansweredUncheckedTarget(t *testing.T) {
	g := NewWithT(t)

	target := newTarget(t, saphana.Flavour, "8.10", "x86_64", &saphana.Info{
		Instances: []saphana.Instance{instance("HDB", "00", "2.00", "070", "00")},
	})
	target.Answers = answers.Chain{}

	dr, err := checksaphana.NewCompatibilityCheck().Validate(t.Context(), target)

	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(dr.Reports).To(HaveLen(2))
	g.Expect(dr.Reports[0].Title).To(Equal(saphana.TitleVersionUnchecked))
	g.Expect(dr.Reports[0].IsInhibitor()).To(BeTrue())
	g.Expect(dr.Reports[1].Title).To(Equal(saphana.TitleVersionChecked))
	g.Expect(dr.Reports[1].IsInhibitor()).To(BeFalse())
	g.Expect(dr.Annotations).To(HaveKeyWithValue(check.AnnotationInhibitorCount, "1"))
}

func TestCompatibilityCheck_FactsError(t *testing.T) {
	g := NewWithT(t)

	target := newTarget(t, saphana.Flavour, "8.6", "x86_64", nil)
	target.Facts = facts.NewFileSource(filepath.Join(t.TempDir(), "missing.yaml"))

	dr, err := checksaphana.NewCompatibilityCheck().Validate(t.Context(), target)

	g.Expect(err).To(MatchError(fs.ErrNotExist))
	g.Expect(err.Error()).To(HavePrefix("loading SAP HANA facts"))
	g.Expect(dr).To(BeNil())
}

func TestCompatibilityCheck_UnsupportedArchitectureWithMissingFacts(t *testing.T) {
	g := NewWithT(t)

	target := newTarget(t, saphana.Flavour, "9.0", "s390x", nil)
	target.Facts = facts.NewFileSource(filepath.Join(t.TempDir(), "missing.yaml"))

	dr, err := checksaphana.NewCompatibilityCheck().Validate(t.Context(), target)

	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(dr.Reports).To(HaveLen(1))
	g.Expect(dr.Reports[0].Title).To(Equal(saphana.UnsupportedPlatformTitle("9")))
	g.Expect(dr.Reports[0].IsInhibitor()).To(BeTrue())
	g.Expect(dr.GetImpact()).To(Equal(result.ImpactBlocking))
	g.Expect(condition(dr)).To(MatchFields(IgnoreExtras, Fields{
		"Type":   Equal(check.ConditionTypeSupported),
		"Status": Equal(metav1.ConditionFalse),
	}))
}
