// Package convert maps Zenodo deposition records onto CITATION.cff
// documents: author normalization, related-identifier resolution and
// document assembly.
package convert

import (
	"fmt"

	"github.com/matsen/doi2cff/internal/cff"
	"github.com/matsen/doi2cff/internal/csl"
	"github.com/matsen/doi2cff/internal/humanname"
	"github.com/matsen/doi2cff/internal/zenodo"
)

// orcidURLPrefix turns a bare ORCID into the canonical URL form used by CFF.
const orcidURLPrefix = "https://orcid.org/"

// Creator is a normalized author entry from either a Zenodo record or a
// CSL-JSON record. Exactly one of the three name shapes is expected:
// structured (Given+Family), a Literal display name, or the archival
// single Name field.
type Creator struct {
	Name        string // archival display name, e.g. "Public, Jane Q."
	Given       string
	Family      string
	Literal     string
	Affiliation string
	ORCID       string // bare identifier, without URL prefix
}

// creatorShape is the resolved variant of a Creator.
type creatorShape int

const (
	shapeUnknown creatorShape = iota
	shapeStructured
	shapeLiteral
	shapeSimple
)

func (c Creator) shape() creatorShape {
	switch {
	case c.Given != "" && c.Family != "":
		return shapeStructured
	case c.Literal != "":
		return shapeLiteral
	case c.Name != "":
		return shapeSimple
	default:
		return shapeUnknown
	}
}

// CreatorFromZenodo views a Zenodo creator entry as a Creator.
func CreatorFromZenodo(z zenodo.Creator) Creator {
	return Creator{
		Name:        z.Name,
		Affiliation: z.Affiliation,
		ORCID:       z.ORCID,
	}
}

// CreatorFromCSL views a CSL-JSON author entry as a Creator.
func CreatorFromCSL(a csl.Author) Creator {
	return Creator{
		Given:   a.Given,
		Family:  a.Family,
		Literal: a.Literal,
	}
}

// MapAuthor converts a creator entry into a CFF author. Structured names
// are taken verbatim; literal and archival names go through the name
// parser, with the parsed middle name becoming the name particle.
func MapAuthor(c Creator) (cff.Author, error) {
	var author cff.Author

	switch c.shape() {
	case shapeStructured:
		author = cff.Author{GivenNames: c.Given, FamilyNames: c.Family}
	case shapeLiteral:
		author = authorFromName(humanname.Parse(c.Literal))
	case shapeSimple:
		author = authorFromName(humanname.Parse(c.Name))
	default:
		return cff.Author{}, fmt.Errorf("%w: %+v", ErrUnrecognizedAuthor, c)
	}

	author.Affiliation = c.Affiliation
	if c.ORCID != "" {
		author.ORCID = orcidURLPrefix + c.ORCID
	}
	return author, nil
}

func authorFromName(n humanname.Name) cff.Author {
	return cff.Author{
		GivenNames:   n.First,
		FamilyNames:  n.Last,
		NameParticle: n.Middle,
		NameSuffix:   n.Suffix,
	}
}

// MapZenodoAuthors converts a record's ordered creator list.
func MapZenodoAuthors(creators []zenodo.Creator) ([]cff.Author, error) {
	authors := make([]cff.Author, len(creators))
	for i, c := range creators {
		author, err := MapAuthor(CreatorFromZenodo(c))
		if err != nil {
			return nil, err
		}
		authors[i] = author
	}
	return authors, nil
}

// MapCSLAuthors converts a CSL-JSON author list.
func MapCSLAuthors(cslAuthors []csl.Author) ([]cff.Author, error) {
	authors := make([]cff.Author, len(cslAuthors))
	for i, a := range cslAuthors {
		author, err := MapAuthor(CreatorFromCSL(a))
		if err != nil {
			return nil, err
		}
		authors[i] = author
	}
	return authors, nil
}
