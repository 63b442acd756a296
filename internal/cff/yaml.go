package cff

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrInvalidDocument indicates the citation file is not a YAML mapping.
var ErrInvalidDocument = errors.New("citation file is not a YAML mapping")

// Comments attached to freshly generated documents. The FIXMEs are part
// of the CFF template and prompt manual review of fields the converter
// cannot fully trust.
const (
	headerComment = "YAML 1.2\n" +
		"Metadata for citation of this software according to the CFF format (https://citation-file-format.github.io/)"
	titleComment   = "FIXME title as repository name might not be the best name, please make human readable"
	authorsComment = "FIXME splitting of full names is error prone, please check if given/family name are correct"

	// genericAdvisory is attached to every reference of type "generic".
	genericAdvisory = "FIXME generic is too generic, see https://citation-file-format.github.io/1.0.3/specifications/#/reference-types for more specific types"
)

// Encode serializes a document, attaching the template header and the
// advisory comments on title, authors and generic references.
func Encode(doc *Document) ([]byte, error) {
	var node yaml.Node
	if err := node.Encode(doc); err != nil {
		return nil, fmt.Errorf("encoding citation document: %w", err)
	}

	node.HeadComment = headerComment
	if key, _ := findEntry(&node, "title"); key != nil {
		key.HeadComment = titleComment
	}
	if key, _ := findEntry(&node, "authors"); key != nil {
		key.HeadComment = authorsComment
	}
	annotateGenericReferences(&node)

	return marshalNode(&node)
}

// UpdateRelease rewrites the doi, version and date-released entries of a
// serialized document in place, preserving every other node and comment.
func UpdateRelease(data []byte, doi, version string, released Date) ([]byte, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing citation file: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 || root.Content[0].Kind != yaml.MappingNode {
		return nil, ErrInvalidDocument
	}

	mapping := root.Content[0]
	setEntry(mapping, "doi", scalarNode(doi, "!!str"))
	setEntry(mapping, "version", scalarNode(version, "!!str"))
	setEntry(mapping, "date-released", scalarNode(released.String(), "!!timestamp"))

	return marshalNode(&root)
}

func marshalNode(node *yaml.Node) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return nil, fmt.Errorf("serializing citation document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("serializing citation document: %w", err)
	}
	return buf.Bytes(), nil
}

// findEntry returns the key and value nodes for a mapping key, or nils
// if the key is absent.
func findEntry(mapping *yaml.Node, key string) (*yaml.Node, *yaml.Node) {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i], mapping.Content[i+1]
		}
	}
	return nil, nil
}

func scalarNode(value, tag string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

// setEntry replaces the value of a top-level key, keeping the existing
// key node (and its comments) and appending the entry if the document
// does not have it yet.
func setEntry(mapping *yaml.Node, key string, value *yaml.Node) {
	if _, v := findEntry(mapping, key); v != nil {
		comment := v.LineComment
		*v = *value
		v.LineComment = comment
		return
	}
	mapping.Content = append(mapping.Content, scalarNode(key, "!!str"), value)
}

// annotateGenericReferences puts the advisory comment on the type line of
// every reference entry whose type is "generic".
func annotateGenericReferences(mapping *yaml.Node) {
	_, refs := findEntry(mapping, "references")
	if refs == nil || refs.Kind != yaml.SequenceNode {
		return
	}
	for _, item := range refs.Content {
		if item.Kind != yaml.MappingNode {
			continue
		}
		typeKey, typeVal := findEntry(item, "type")
		if typeKey != nil && typeVal.Value == ReferenceGeneric {
			typeVal.LineComment = genericAdvisory
		}
	}
}
