package convert

import (
	"context"
	"errors"
	"testing"

	"github.com/matsen/doi2cff/internal/cff"
	"github.com/matsen/doi2cff/internal/csl"
	"github.com/matsen/doi2cff/internal/zenodo"
)

// fakeZenodo serves canned records keyed by normalized DOI.
type fakeZenodo struct {
	records map[string]*zenodo.Record
	calls   []string
}

func (f *fakeZenodo) GetRecord(ctx context.Context, doi string) (*zenodo.Record, error) {
	doi = zenodo.NormalizeDOI(doi)
	f.calls = append(f.calls, doi)
	record, ok := f.records[doi]
	if !ok {
		return nil, zenodo.ErrNotFound
	}
	return record, nil
}

// fakeCSL serves canned CSL-JSON records keyed by DOI.
type fakeCSL struct {
	records map[string]*csl.Record
	calls   []string
}

func (f *fakeCSL) GetRecord(ctx context.Context, doi string) (*csl.Record, error) {
	f.calls = append(f.calls, doi)
	record, ok := f.records[doi]
	if !ok {
		return nil, csl.ErrNotFound
	}
	return record, nil
}

func softwareRecord(doi, title string, creators []zenodo.Creator) *zenodo.Record {
	return &zenodo.Record{
		DOI: doi,
		Metadata: zenodo.Metadata{
			ResourceType: zenodo.ResourceType{Type: "software"},
			Title:        title,
			Creators:     creators,
		},
	}
}

func TestResolveSkipsNonCitableRelations(t *testing.T) {
	idents := []zenodo.RelatedIdentifier{
		{Identifier: "https://github.com/org/tool/tree/v2.0.0", Relation: zenodo.RelationIsSupplementTo, Scheme: "url"},
		{Identifier: "10.5281/zenodo.1000", Relation: zenodo.RelationIsPartOf, Scheme: zenodo.SchemeDOI},
		{Identifier: "10.5281/zenodo.1001", Relation: zenodo.RelationIsReferencedBy, Scheme: zenodo.SchemeDOI},
		{Identifier: "10.5281/zenodo.1002", Relation: "isNewVersionOf", Scheme: zenodo.SchemeDOI},
		{Identifier: "https://example.org/paper", Relation: zenodo.RelationCites, Scheme: "url"},
	}

	zfake := &fakeZenodo{}
	cfake := &fakeCSL{}
	resolver := &Resolver{Zenodo: zfake, CSL: cfake}

	refs, err := resolver.Resolve(context.Background(), idents)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(refs) != 0 {
		t.Errorf("Resolve returned %d references, want 0: %+v", len(refs), refs)
	}
	if len(zfake.calls) != 0 || len(cfake.calls) != 0 {
		t.Errorf("skipped identifiers should not be fetched (zenodo %v, csl %v)", zfake.calls, cfake.calls)
	}
}

func TestResolveCompiles(t *testing.T) {
	zfake := &fakeZenodo{records: map[string]*zenodo.Record{
		"10.5281/zenodo.555": softwareRecord("10.5281/zenodo.555", "Compiled Library",
			[]zenodo.Creator{{Name: "Public, Jane"}}),
	}}
	resolver := &Resolver{Zenodo: zfake, CSL: &fakeCSL{}}

	refs, err := resolver.Resolve(context.Background(), []zenodo.RelatedIdentifier{
		{Identifier: "10.5281/zenodo.555", Relation: zenodo.RelationCompiles, Scheme: zenodo.SchemeDOI},
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(refs) != 1 {
		t.Fatalf("len(refs) = %d, want 1", len(refs))
	}

	ref := refs[0]
	if ref.Type != cff.ReferenceSoftware {
		t.Errorf("Type = %q, want %q", ref.Type, cff.ReferenceSoftware)
	}
	if ref.DOI != "10.5281/zenodo.555" {
		t.Errorf("DOI = %q", ref.DOI)
	}
	if ref.Title != "Compiled Library" {
		t.Errorf("Title = %q", ref.Title)
	}
	if ref.Notes != "is compiled/created by this citation" {
		t.Errorf("Notes = %q", ref.Notes)
	}
	if len(ref.Authors) != 1 || ref.Authors[0].FamilyNames != "Public" {
		t.Errorf("Authors = %+v", ref.Authors)
	}
}

func TestResolveCitesZenodoDOI(t *testing.T) {
	zfake := &fakeZenodo{records: map[string]*zenodo.Record{
		"10.5281/zenodo.777": softwareRecord("10.5281/zenodo.777", "Cited Dataset Tool",
			[]zenodo.Creator{{Name: "Doe, John"}}),
	}}
	cfake := &fakeCSL{}
	resolver := &Resolver{Zenodo: zfake, CSL: cfake}

	refs, err := resolver.Resolve(context.Background(), []zenodo.RelatedIdentifier{
		{Identifier: "10.5281/zenodo.777", Relation: zenodo.RelationCites, Scheme: zenodo.SchemeDOI},
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(refs) != 1 {
		t.Fatalf("len(refs) = %d, want 1", len(refs))
	}
	if refs[0].Type != cff.ReferenceGeneric {
		t.Errorf("Type = %q, want %q", refs[0].Type, cff.ReferenceGeneric)
	}
	if refs[0].Notes != "" {
		t.Errorf("Notes = %q, want empty", refs[0].Notes)
	}
	if len(cfake.calls) != 0 {
		t.Errorf("Zenodo DOI should not hit the CSL fetcher: %v", cfake.calls)
	}
}

func TestResolveReferencesExternalDOI(t *testing.T) {
	cfake := &fakeCSL{records: map[string]*csl.Record{
		"10.1000/xyz123": {
			Title:  "An External Paper",
			Author: []csl.Author{{Given: "Jane", Family: "Public"}},
		},
	}}
	resolver := &Resolver{Zenodo: &fakeZenodo{}, CSL: cfake}

	refs, err := resolver.Resolve(context.Background(), []zenodo.RelatedIdentifier{
		{Identifier: "10.1000/xyz123", Relation: zenodo.RelationReferences, Scheme: zenodo.SchemeDOI},
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(refs) != 1 {
		t.Fatalf("len(refs) = %d, want 1", len(refs))
	}

	ref := refs[0]
	if ref.Type != cff.ReferenceGeneric {
		t.Errorf("Type = %q, want %q", ref.Type, cff.ReferenceGeneric)
	}
	if ref.Title != "An External Paper" {
		t.Errorf("Title = %q", ref.Title)
	}
	if len(ref.Authors) != 1 || ref.Authors[0].GivenNames != "Jane" {
		t.Errorf("Authors = %+v", ref.Authors)
	}
}

func TestResolvePreservesOrder(t *testing.T) {
	zfake := &fakeZenodo{records: map[string]*zenodo.Record{
		"10.5281/zenodo.1": softwareRecord("10.5281/zenodo.1", "First", nil),
		"10.5281/zenodo.2": softwareRecord("10.5281/zenodo.2", "Second", nil),
	}}
	cfake := &fakeCSL{records: map[string]*csl.Record{
		"10.1000/middle": {Title: "Middle", Author: []csl.Author{{Literal: "Jane Public"}}},
	}}
	resolver := &Resolver{Zenodo: zfake, CSL: cfake}

	refs, err := resolver.Resolve(context.Background(), []zenodo.RelatedIdentifier{
		{Identifier: "10.5281/zenodo.1", Relation: zenodo.RelationCompiles, Scheme: zenodo.SchemeDOI},
		{Identifier: "https://github.com/org/tool/tree/v1.0.0", Relation: zenodo.RelationIsSupplementTo, Scheme: "url"},
		{Identifier: "10.1000/middle", Relation: zenodo.RelationCites, Scheme: zenodo.SchemeDOI},
		{Identifier: "10.5281/zenodo.2", Relation: zenodo.RelationReferences, Scheme: zenodo.SchemeDOI},
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	var titles []string
	for _, ref := range refs {
		titles = append(titles, ref.Title)
	}
	want := []string{"First", "Middle", "Second"}
	if len(titles) != len(want) {
		t.Fatalf("titles = %v, want %v", titles, want)
	}
	for i := range want {
		if titles[i] != want[i] {
			t.Errorf("titles[%d] = %q, want %q", i, titles[i], want[i])
		}
	}
}

func TestResolveFetchFailureAborts(t *testing.T) {
	resolver := &Resolver{Zenodo: &fakeZenodo{}, CSL: &fakeCSL{}}

	_, err := resolver.Resolve(context.Background(), []zenodo.RelatedIdentifier{
		{Identifier: "10.5281/zenodo.404", Relation: zenodo.RelationCompiles, Scheme: zenodo.SchemeDOI},
	})
	if !errors.Is(err, zenodo.ErrNotFound) {
		t.Errorf("Resolve error = %v, want ErrNotFound", err)
	}
}
