// Package cff defines the CITATION.cff document model and its YAML
// serialization adapter.
//
// The document struct is plain data with explicit defaults; everything
// comment-related (the template header, FIXME advisories) lives in the
// yaml.Node adapter so callers never touch serialization details.
package cff

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Document is a CITATION.cff file in memory. Field order matches the
// serialized key order.
type Document struct {
	CFFVersion     string      `yaml:"cff-version"`
	Message        string      `yaml:"message"`
	Title          string      `yaml:"title"`
	DOI            string      `yaml:"doi"`
	Authors        []Author    `yaml:"authors"`
	Version        string      `yaml:"version"`
	DateReleased   Date        `yaml:"date-released"`
	RepositoryCode string      `yaml:"repository-code"`
	License        string      `yaml:"license"`
	References     []Reference `yaml:"references,omitempty"`
}

// Author is a single CFF author entry. Optional parts are omitted from
// the output when empty.
type Author struct {
	GivenNames   string `yaml:"given-names"`
	FamilyNames  string `yaml:"family-names"`
	NameParticle string `yaml:"name-particle,omitempty"`
	NameSuffix   string `yaml:"name-suffix,omitempty"`
	Affiliation  string `yaml:"affiliation,omitempty"`
	ORCID        string `yaml:"orcid,omitempty"`
}

// Reference types emitted by the converter.
const (
	ReferenceSoftware = "software"
	ReferenceGeneric  = "generic"
)

// Reference is a work cited by the software being described. References
// are created once during conversion and never mutated afterwards.
type Reference struct {
	Type    string   `yaml:"type"`
	DOI     string   `yaml:"doi"`
	Title   string   `yaml:"title"`
	Authors []Author `yaml:"authors"`
	Notes   string   `yaml:"notes,omitempty"`
}

// New returns a document with the fixed CFF template defaults filled in.
func New() *Document {
	return &Document{
		CFFVersion: "1.0.3",
		Message:    "If you use this software, please cite it as below.",
	}
}

// Date is a calendar date serialized as YYYY-MM-DD.
type Date struct {
	time.Time
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format("2006-01-02")
}

// MarshalYAML emits the date as a plain YYYY-MM-DD scalar. The timestamp
// tag keeps the encoder from quoting it like an ordinary string.
func (d Date) MarshalYAML() (interface{}, error) {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!timestamp",
		Value: d.String(),
	}, nil
}

// UnmarshalYAML accepts a YYYY-MM-DD scalar.
func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseDate(value.Value)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
