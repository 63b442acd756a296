// Package zenodo provides a client for fetching software deposition
// records from the Zenodo REST API, plus helpers for working with
// Zenodo DOIs.
package zenodo

// Record is a Zenodo deposition record as returned by the records API.
// Only the fields the converter consumes are mapped.
type Record struct {
	DOI      string   `json:"doi"`
	Metadata Metadata `json:"metadata"`
}

// Metadata is the metadata block of a deposition record.
type Metadata struct {
	ResourceType       ResourceType        `json:"resource_type"`
	Title              string              `json:"title"`
	Version            string              `json:"version"`
	License            License             `json:"license"`
	PublicationDate    string              `json:"publication_date"`
	Creators           []Creator           `json:"creators"`
	RelatedIdentifiers []RelatedIdentifier `json:"related_identifiers"`
}

// ResourceType classifies a record (software, dataset, publication, ...).
type ResourceType struct {
	Type string `json:"type"`
}

// License identifies the license of the deposited work.
type License struct {
	ID string `json:"id"`
}

// Creator is one entry of a record's ordered creator list. Name is a
// single display string, typically "Family, Given" or "Given Family".
type Creator struct {
	Name        string `json:"name"`
	Affiliation string `json:"affiliation"`
	ORCID       string `json:"orcid"`
}

// RelatedIdentifier links a record to another resource.
type RelatedIdentifier struct {
	Identifier string `json:"identifier"`
	Relation   string `json:"relation"`
	Scheme     string `json:"scheme"`
}

// Relation tags used by the converter.
const (
	RelationIsSupplementTo = "isSupplementTo"
	RelationIsPartOf       = "isPartOf"
	RelationIsReferencedBy = "isReferencedBy"
	RelationCompiles       = "compiles"
	RelationCites          = "cites"
	RelationReferences     = "references"
)

// SchemeDOI is the identifier scheme for DOI-valued related identifiers.
const SchemeDOI = "doi"

// IsSoftware reports whether the record describes a software release.
func (r *Record) IsSoftware() bool {
	return r.Metadata.ResourceType.Type == "software"
}

// TagURL returns the identifier of the record's isSupplementTo related
// identifier, which for GitHub releases is the URL of the release tag.
// A software record is expected to carry exactly one such entry.
func (r *Record) TagURL() (string, error) {
	for _, rel := range r.Metadata.RelatedIdentifiers {
		if rel.Relation == RelationIsSupplementTo {
			return rel.Identifier, nil
		}
	}
	return "", ErrNoTagURL
}
