/*
Package yaml provides methods to parse dataset column specifications,
also known as metadata, from YAML documents.
*/
package yaml

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

/*
Metadata describes the columns of a dataset: the ordered names of its
feature columns and the name of its label column. The feature order in
the metadata fixes the feature indexes used by fitted trees, so the same
metadata must be used to train a tree and to query it.
*/
type Metadata struct {
	Features []string `yaml:"features"`
	Label    string   `yaml:"label"`
}

/*
ReadMetadata takes a slice of bytes with a column specification in YML
and returns the parsed Metadata or an error. The YML is expected to be
an object with a features property holding the list of feature column
names and a label property holding the label column name.
*/
func ReadMetadata(md []byte) (*Metadata, error) {
	metadata := &Metadata{}
	err := yaml.Unmarshal(md, metadata)
	if err != nil {
		return nil, fmt.Errorf("parsing yml metadata: %v", err)
	}
	if len(metadata.Features) == 0 {
		return nil, fmt.Errorf("metadata declares no feature columns")
	}
	if metadata.Label == "" {
		return nil, fmt.Errorf("metadata declares no label column")
	}
	seen := make(map[string]bool)
	for _, f := range metadata.Features {
		if seen[f] {
			return nil, fmt.Errorf("metadata declares feature column %s more than once", f)
		}
		if f == metadata.Label {
			return nil, fmt.Errorf("metadata declares %s as both feature and label column", f)
		}
		seen[f] = true
	}
	return metadata, nil
}

/*
ReadMetadataFromFile takes a filepath string, reads its contents and
uses ReadMetadata to parse it and return the Metadata or an error. If
the file indicated by the filepath cannot be opened for reading an error
will be returned.
*/
func ReadMetadataFromFile(filepath string) (*Metadata, error) {
	md, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading metadata yml file %s: %v", filepath, err)
	}
	metadata, err := ReadMetadata(md)
	if err != nil {
		err = fmt.Errorf("parsing metadata yml file %s: %v", filepath, err)
	}
	return metadata, err
}
