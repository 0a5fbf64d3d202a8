// Seqnote - Sequence Annotation Mapping and Storage
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seqnote

package annotation

import "fmt"

// Kind selects the variant of a Feature.
type Kind int

const (
	KindPlain Kind = iota
	KindAnnotatable
	KindSource
	KindVariable
	KindSimpleVariable
)

var kindNames = map[Kind]string{
	KindPlain:          "feature",
	KindAnnotatable:    "annotatable_feature",
	KindSource:         "source",
	KindVariable:       "variable",
	KindSimpleVariable: "simple_variable",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown feature kind %q", s)
}
