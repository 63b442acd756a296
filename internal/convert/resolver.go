package convert

import (
	"context"
	"fmt"

	"github.com/matsen/doi2cff/internal/cff"
	"github.com/matsen/doi2cff/internal/csl"
	"github.com/matsen/doi2cff/internal/zenodo"
)

// RecordFetcher fetches Zenodo deposition records by DOI or DOI URL.
// *zenodo.Client satisfies it; tests substitute fakes.
type RecordFetcher interface {
	GetRecord(ctx context.Context, doi string) (*zenodo.Record, error)
}

// CitationFetcher fetches CSL-JSON bibliographic records by DOI.
// *csl.Client satisfies it.
type CitationFetcher interface {
	GetRecord(ctx context.Context, doi string) (*csl.Record, error)
}

// compiledNote marks software references produced from a "compiles"
// related identifier.
const compiledNote = "is compiled/created by this citation"

// Resolver turns a record's related identifiers into CFF references,
// fetching the targets on demand. Fetches happen sequentially in input
// order and are not memoized; any fetch failure aborts resolution.
type Resolver struct {
	Zenodo RecordFetcher
	CSL    CitationFetcher
}

// Resolve walks the related identifiers in order and returns references
// for the citable ones, omitting skipped entries.
func (r *Resolver) Resolve(ctx context.Context, idents []zenodo.RelatedIdentifier) ([]cff.Reference, error) {
	var refs []cff.Reference
	for _, rel := range idents {
		ref, ok, err := r.resolve(ctx, rel)
		if err != nil {
			return nil, fmt.Errorf("resolving related identifier %s: %w", rel.Identifier, err)
		}
		if ok {
			refs = append(refs, ref)
		}
	}
	return refs, nil
}

// resolve classifies one related identifier. The second return value is
// false for entries that are not citable references.
func (r *Resolver) resolve(ctx context.Context, rel zenodo.RelatedIdentifier) (cff.Reference, bool, error) {
	switch rel.Relation {
	// Links describing the record itself rather than works it cites.
	case zenodo.RelationIsSupplementTo, zenodo.RelationIsPartOf, zenodo.RelationIsReferencedBy:
		return cff.Reference{}, false, nil
	}

	if rel.Scheme != zenodo.SchemeDOI {
		return cff.Reference{}, false, nil
	}

	switch rel.Relation {
	case zenodo.RelationCompiles:
		record, err := r.Zenodo.GetRecord(ctx, rel.Identifier)
		if err != nil {
			return cff.Reference{}, false, err
		}
		authors, err := MapZenodoAuthors(record.Metadata.Creators)
		if err != nil {
			return cff.Reference{}, false, err
		}
		return cff.Reference{
			Type:    cff.ReferenceSoftware,
			DOI:     rel.Identifier,
			Title:   record.Metadata.Title,
			Authors: authors,
			Notes:   compiledNote,
		}, true, nil

	case zenodo.RelationCites, zenodo.RelationReferences:
		if zenodo.IsZenodoDOI(rel.Identifier) {
			record, err := r.Zenodo.GetRecord(ctx, rel.Identifier)
			if err != nil {
				return cff.Reference{}, false, err
			}
			authors, err := MapZenodoAuthors(record.Metadata.Creators)
			if err != nil {
				return cff.Reference{}, false, err
			}
			return cff.Reference{
				Type:    cff.ReferenceGeneric,
				DOI:     rel.Identifier,
				Title:   record.Metadata.Title,
				Authors: authors,
			}, true, nil
		}

		record, err := r.CSL.GetRecord(ctx, rel.Identifier)
		if err != nil {
			return cff.Reference{}, false, err
		}
		authors, err := MapCSLAuthors(record.Author)
		if err != nil {
			return cff.Reference{}, false, err
		}
		return cff.Reference{
			Type:    cff.ReferenceGeneric,
			DOI:     rel.Identifier,
			Title:   record.Title,
			Authors: authors,
		}, true, nil
	}

	return cff.Reference{}, false, nil
}
