// Seqnote - Sequence Annotation Mapping and Storage
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seqnote

package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
	"net/url"
	"strings"

	"github.com/biogo/biogo/io/featio/gff"
	"github.com/biogo/biogo/seq"

	"github.com/tomtom215/seqnote/internal/store"
)

// GFF reads GFF features from r. Line-level parse errors are yielded and
// reading continues with the next line; any other read error ends the sequence.
func GFF(r io.Reader) iter.Seq2[store.GFFRecord, error] {
	return func(yield func(store.GFFRecord, error) bool) {
		reader := gff.NewReader(r)
		for {
			f, err := reader.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				if !yield(store.GFFRecord{}, fmt.Errorf("failed to read GFF: %w", err)) {
					return
				}
				var parseErr *csv.ParseError
				if !errors.As(err, &parseErr) {
					return
				}
				continue
			}

			gf, ok := f.(*gff.Feature)
			if !ok {
				continue
			}
			if !yield(FromFeature(gf), nil) {
				return
			}
		}
	}
}

// FromFeature converts a biogo GFF feature into a store record.
func FromFeature(f *gff.Feature) store.GFFRecord {
	return store.GFFRecord{
		SeqID:      f.SeqName,
		Source:     f.Source,
		Type:       f.Feature,
		Start:      f.FeatStart,
		End:        f.FeatEnd,
		Score:      f.FeatScore,
		Strand:     strandSymbol(f.FeatStrand),
		Phase:      phaseSymbol(f.FeatFrame),
		Attributes: attributes(f.FeatAttributes),
	}
}

func strandSymbol(s seq.Strand) string {
	switch s {
	case seq.Plus:
		return "+"
	case seq.Minus:
		return "-"
	default:
		return "."
	}
}

func phaseSymbol(f gff.Frame) string {
	switch f {
	case gff.Frame0:
		return "0"
	case gff.Frame1:
		return "1"
	case gff.Frame2:
		return "2"
	default:
		return "."
	}
}

// attributes flattens biogo attributes into a tag map. GFF3 attributes
// arrive as a single "key=value" tag with an empty value; GFF2 attributes
// arrive split, possibly quoted. Repeated tags keep the first value.
func attributes(attrs gff.Attributes) map[string]string {
	out := make(map[string]string, len(attrs))
	for _, a := range attrs {
		tag, value := a.Tag, a.Value
		if value == "" {
			if k, v, found := strings.Cut(tag, "="); found {
				tag, value = k, v
			}
		}
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		value = unescape(strings.Trim(strings.TrimSpace(value), `"`))
		if _, dup := out[tag]; !dup {
			out[tag] = value
		}
	}
	return out
}

// unescape decodes GFF3 percent-encoding, leaving malformed escapes as they are.
func unescape(v string) string {
	if !strings.Contains(v, "%") {
		return v
	}
	if decoded, err := url.PathUnescape(v); err == nil {
		return decoded
	}
	return v
}
