package report

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/lburgazzoli/ipu-lint/pkg/util"
)

// Severity is the urgency attached to a report.
type Severity string

const (
	SeverityInfo   Severity = "info"
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Validate checks if the severity is valid.
func (s Severity) Validate() error {
	switch s {
	case SeverityInfo, SeverityLow, SeverityMedium, SeverityHigh:
		return nil
	default:
		return fmt.Errorf("invalid severity: %s", s)
	}
}

// Group classifies a report. A report in GroupInhibitor blocks the upgrade.
type Group string

const (
	GroupSanity    Group = "sanity"
	GroupInhibitor Group = "inhibitor"
)

// Audience is the kind of reader a report is written for.
type Audience string

const AudienceSysadmin Audience = "sysadmin"

// ExternalLink points the reader to further documentation.
type ExternalLink struct {
	URL   string `json:"url"   yaml:"url"`
	Title string `json:"title" yaml:"title"`
}

// Report is a single finding produced by a check.
type Report struct {
	// Key is derived from the title so the same finding has the same key across runs.
	Key           string         `json:"key"                     yaml:"key"`
	Title         string         `json:"title"                   yaml:"title"`
	Summary       string         `json:"summary"                 yaml:"summary"`
	Severity      Severity       `json:"severity"                yaml:"severity"`
	Groups        []Group        `json:"groups"                  yaml:"groups"`
	Remediation   string         `json:"remediation,omitempty"   yaml:"remediation,omitempty"`
	ExternalLinks []ExternalLink `json:"externalLinks,omitempty" yaml:"externalLinks,omitempty"`
	Audience      Audience       `json:"audience"                yaml:"audience"`
}

// keyNamespace scopes report keys generated by this tool.
//
//nolint:gochecknoglobals
var keyNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/lburgazzoli/ipu-lint/report"))

// Option configures a Report under construction.
type Option = util.Option[Report]

// WithSeverity sets the report severity.
func WithSeverity(severity Severity) Option {
	return util.FunctionalOption[Report](func(r *Report) {
		r.Severity = severity
	})
}

// WithGroups adds classification groups, ignoring duplicates.
func WithGroups(groups ...Group) Option {
	return util.FunctionalOption[Report](func(r *Report) {
		for _, g := range groups {
			if !slices.Contains(r.Groups, g) {
				r.Groups = append(r.Groups, g)
			}
		}
	})
}

// AsInhibitor marks the report as blocking the upgrade.
func AsInhibitor() Option {
	return WithGroups(GroupInhibitor)
}

// WithRemediation sets the remediation hint.
func WithRemediation(hint string) Option {
	return util.FunctionalOption[Report](func(r *Report) {
		r.Remediation = hint
	})
}

// WithExternalLink appends a documentation link.
func WithExternalLink(url string, title string) Option {
	return util.FunctionalOption[Report](func(r *Report) {
		r.ExternalLinks = append(r.ExternalLinks, ExternalLink{URL: url, Title: title})
	})
}

// WithAudience overrides the default sysadmin audience.
func WithAudience(audience Audience) Option {
	return util.FunctionalOption[Report](func(r *Report) {
		r.Audience = audience
	})
}

// New builds a report. Every report is in the sanity group, addressed to
// sysadmins and has info severity unless options say otherwise.
func New(title string, summary string, opts ...Option) Report {
	r := Report{
		Title:    title,
		Summary:  summary,
		Severity: SeverityInfo,
		Groups:   []Group{GroupSanity},
		Audience: AudienceSysadmin,
	}

	util.ApplyOptions(&r, opts...)

	r.Key = uuid.NewSHA1(keyNamespace, []byte(title)).String()

	return r
}

// IsInhibitor returns true if the report blocks the upgrade.
func (r *Report) IsInhibitor() bool {
	return slices.Contains(r.Groups, GroupInhibitor)
}

// Validate checks that the report carries the mandatory fields.
func (r *Report) Validate() error {
	if r.Title == "" {
		return errors.New("report title must not be empty")
	}
	if r.Summary == "" {
		return fmt.Errorf("report %q has an empty summary", r.Title)
	}
	if err := r.Severity.Validate(); err != nil {
		return fmt.Errorf("report %q: %w", r.Title, err)
	}

	return nil
}

// Sink accepts reports emitted by a check.
type Sink interface {
	Emit(r Report)
}

// Collector is an in-memory Sink that keeps reports in emission order.
type Collector struct {
	reports []Report
}

// NewCollector creates an empty Collector.
func NewCollector() *Collector {
	return &Collector{
		reports: make([]Report, 0),
	}
}

// Emit records r.
func (c *Collector) Emit(r Report) {
	c.reports = append(c.reports, r)
}

// Reports returns a copy of the collected reports.
func (c *Collector) Reports() []Report {
	return slices.Clone(c.reports)
}

// Inhibitors returns how many collected reports block the upgrade.
func (c *Collector) Inhibitors() int {
	count := 0

	for i := range c.reports {
		if c.reports[i].IsInhibitor() {
			count++
		}
	}

	return count
}
