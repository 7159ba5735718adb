package dasm

import (
	"fmt"
	"strings"

	"realmz-dasm/internal/resfork"
)

// ResourceSource is the subset of *resfork.File the inventory reads.
type ResourceSource interface {
	Enumerate() []resfork.Ref
	Load(typ uint32, id int16) ([]byte, error)
}

// Resources renders an inventory of a resource fork, followed by the decoded
// contents of its text resources.
func Resources(name string, f ResourceSource) string {
	refs := f.Enumerate()
	var b strings.Builder
	fmt.Fprintf(&b, "==== RESOURCES %s count=%d\n", name, len(refs))

	var texts []resfork.Ref
	for _, r := range refs {
		data, err := f.Load(r.Type, r.ID)
		if err != nil {
			fmt.Fprintf(&b, "  %s error=%v\n", r, err)
			continue
		}
		fmt.Fprintf(&b, "  %s size=%d\n", r, len(data))
		switch r.Type {
		case resfork.TypeTEXT, resfork.TypeSTR, resfork.TypeSTRN:
			texts = append(texts, r)
		}
	}

	for _, r := range texts {
		data, _ := f.Load(r.Type, r.ID)
		fmt.Fprintf(&b, "==== %s\n", r)
		switch r.Type {
		case resfork.TypeTEXT:
			b.WriteString(resfork.DecodeText(data))
			b.WriteByte('\n')
		case resfork.TypeSTR:
			s, _ := resfork.DecodeString(data)
			fmt.Fprintf(&b, "  \"%s\"\n", quote(s))
		case resfork.TypeSTRN:
			for i, s := range resfork.DecodeStringList(data) {
				fmt.Fprintf(&b, "  %d> \"%s\"\n", i, quote(s))
			}
		}
	}
	return b.String()
}
