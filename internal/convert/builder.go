package convert

import (
	"context"
	"fmt"
	"strings"

	"github.com/matsen/doi2cff/internal/cff"
	"github.com/matsen/doi2cff/internal/zenodo"
)

// Builder assembles and refreshes CITATION.cff documents from Zenodo
// software records.
type Builder struct {
	Zenodo RecordFetcher
	CSL    CitationFetcher
}

// NewBuilder creates a Builder using the given fetchers.
func NewBuilder(zenodoFetcher RecordFetcher, cslFetcher CitationFetcher) *Builder {
	return &Builder{Zenodo: zenodoFetcher, CSL: cslFetcher}
}

// Init builds a fresh document for the Zenodo DOI of a GitHub release.
// The DOI must carry the Zenodo prefix and resolve to a software record.
func (b *Builder) Init(ctx context.Context, doi string) (*cff.Document, error) {
	if !zenodo.IsZenodoDOI(doi) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDOI, doi)
	}

	record, err := b.Zenodo.GetRecord(ctx, doi)
	if err != nil {
		return nil, err
	}
	if !record.IsSoftware() {
		return nil, fmt.Errorf("%w: resource type is %q", ErrUnsupportedDOI, record.Metadata.ResourceType.Type)
	}

	tagURL, err := record.TagURL()
	if err != nil {
		return nil, err
	}

	version, released, err := releaseFields(record, tagURL)
	if err != nil {
		return nil, err
	}

	doc := cff.New()
	doc.Title = record.Metadata.Title
	doc.DOI = record.DOI
	doc.Version = version
	doc.DateReleased = released
	doc.RepositoryCode = TagURLToRepo(tagURL)
	doc.License = record.Metadata.License.ID

	doc.Authors, err = MapZenodoAuthors(record.Metadata.Creators)
	if err != nil {
		return nil, err
	}

	resolver := &Resolver{Zenodo: b.Zenodo, CSL: b.CSL}
	doc.References, err = resolver.Resolve(ctx, record.Metadata.RelatedIdentifiers)
	if err != nil {
		return nil, err
	}

	return doc, nil
}

// Update fetches the record for a new release and rewrites exactly the
// doi, version and date-released entries of an existing serialized
// document, leaving everything else untouched.
func (b *Builder) Update(ctx context.Context, doi string, data []byte) ([]byte, error) {
	record, err := b.Zenodo.GetRecord(ctx, doi)
	if err != nil {
		return nil, err
	}

	tagURL, err := record.TagURL()
	if err != nil {
		return nil, err
	}

	version, released, err := releaseFields(record, tagURL)
	if err != nil {
		return nil, err
	}

	return cff.UpdateRelease(data, record.DOI, version, released)
}

// releaseFields derives the version and release date of a record. The
// record's explicit version wins, minus a leading "v"; records without
// one fall back to the version embedded in the tag URL.
func releaseFields(record *zenodo.Record, tagURL string) (string, cff.Date, error) {
	version := strings.TrimPrefix(record.Metadata.Version, "v")
	if version == "" {
		version = TagURLToVersion(tagURL)
	}

	released, err := cff.ParseDate(record.Metadata.PublicationDate)
	if err != nil {
		return "", cff.Date{}, fmt.Errorf("record publication date: %w", err)
	}
	return version, released, nil
}
