// Seqnote - Sequence Annotation Mapping and Storage
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seqnote

package annotation

import (
	"fmt"

	"github.com/gobwas/glob"
)

// Annotatable is implemented by anything features can be attached to.
type Annotatable interface {
	Len() int
	Annotations() *Set
}

// Set is the insertion-ordered list of features attached to one owner.
//
// A nil *Set belongs to a feature kind that cannot host sub-features; it
// reads as empty and refuses attachment.
type Set struct {
	owner Annotatable
	items []*Feature
}

// NewSet returns an empty set owned by owner.
func NewSet(owner Annotatable) *Set {
	return &Set{owner: owner}
}

// Len returns the number of attached features.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// All returns the attached features in insertion order.
func (s *Set) All() []*Feature {
	if s == nil {
		return nil
	}
	out := make([]*Feature, len(s.items))
	copy(out, s.items)
	return out
}

// Attach registers features with the owner. Every feature must have the
// owner as parent and must not already be attached; otherwise nothing is
// attached and ErrOwnership is returned.
func (s *Set) Attach(features ...*Feature) error {
	if len(features) == 0 {
		return nil
	}
	if s == nil {
		return fmt.Errorf("parent of %s cannot host annotations: %w", features[0], ErrOwnership)
	}
	for _, f := range features {
		if f.parent != s.owner {
			return fmt.Errorf("%s does not belong here: %w", f, ErrOwnership)
		}
		if f.attached {
			return fmt.Errorf("%s already attached: %w", f, ErrOwnership)
		}
	}
	s.items = append(s.items, features...)
	for _, f := range features {
		f.attached = true
	}
	return nil
}

// Detach removes features from the owner. Every feature must have the
// owner as parent and be attached.
func (s *Set) Detach(features ...*Feature) error {
	if len(features) == 0 {
		return nil
	}
	if s == nil {
		return fmt.Errorf("%s does not live here: %w", features[0], ErrOwnership)
	}
	for _, f := range features {
		if f.parent != s.owner {
			return fmt.Errorf("%s does not live here: %w", f, ErrOwnership)
		}
		if !f.attached {
			return fmt.Errorf("%s is not attached: %w", f, ErrOwnership)
		}
	}
	for _, f := range features {
		for i, item := range s.items {
			if item == f {
				s.items = append(s.items[:i], s.items[i+1:]...)
				break
			}
		}
		f.attached = false
	}
	return nil
}

// Clear detaches every feature.
func (s *Set) Clear() {
	if s == nil {
		return
	}
	for _, f := range s.items {
		f.attached = false
	}
	s.items = nil
}

// Matching returns features whose type matches typePattern and, when
// namePattern is not empty, whose name matches namePattern. Patterns use
// shell wildcards (*, ?, [...]) and are case-sensitive. With recurse the
// sub-features of every feature are searched too, each parent preceding
// its own matches.
func (s *Set) Matching(typePattern, namePattern string, recurse bool) ([]*Feature, error) {
	typeGlob, err := glob.Compile(typePattern)
	if err != nil {
		return nil, fmt.Errorf("type pattern %q: %w", typePattern, err)
	}
	var nameGlob glob.Glob
	if namePattern != "" {
		if nameGlob, err = glob.Compile(namePattern); err != nil {
			return nil, fmt.Errorf("name pattern %q: %w", namePattern, err)
		}
	}
	return s.matching(typeGlob, nameGlob, recurse), nil
}

func (s *Set) matching(typeGlob, nameGlob glob.Glob, recurse bool) []*Feature {
	var out []*Feature
	for _, f := range s.All() {
		if typeGlob.Match(f.bioType) && (nameGlob == nil || nameGlob.Match(f.name)) {
			out = append(out, f)
		}
		if recurse {
			out = append(out, f.subs.matching(typeGlob, nameGlob, recurse)...)
		}
	}
	return out
}
