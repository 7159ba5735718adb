// Package opcode turns action point (command, argument) pairs into readable
// mnemonics.
//
// Most opcodes take their arguments indirectly: the argument is an index
// into the ecodes table, whose entry supplies up to five values. Opcodes
// with more than five arguments continue into the following entry.
package opcode

import (
	"fmt"
	"strconv"
	"strings"

	"realmz-dasm/internal/scenario"
)

// Engine disassembles opcodes against one scenario's ecodes and strings.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	Ecodes  []scenario.Ecodes
	Strings scenario.StringPool
}

// New returns an Engine over the given tables.
func New(ecodes []scenario.Ecodes, pool scenario.StringPool) *Engine {
	return &Engine{Ecodes: ecodes, Strings: pool}
}

func (d *Def) negativeName() string {
	if d.NegativeName == "" {
		return d.Name
	}
	return d.NegativeName
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Disassemble renders one (command, argument) pair. It never fails: bad
// ecodes indexes and unknown opcodes are rendered inline.
func (e *Engine) Disassemble(cmd, arg int16) string {
	c, a := int(cmd), int(arg)

	def, ok := table[abs(c)]
	if !ok {
		if idx := abs(a); idx < len(e.Ecodes) {
			ec := e.Ecodes[idx]
			return fmt.Sprintf("[%d %d [%d %d %d %d %d]]", c, a, ec[0], ec[1], ec[2], ec[3], ec[4])
		}
		return fmt.Sprintf("[%d %d]", c, a)
	}

	name := def.Name
	if c < 0 {
		name = def.negativeName()
	}
	if len(def.Args) == 0 {
		return name
	}

	var values []int
	if len(def.Args) == 1 && !def.ForceEcodes {
		values = []int{a}
	} else {
		if a < 0 {
			name = def.negativeName()
			a = -a
		}
		if a >= len(e.Ecodes) {
			return fmt.Sprintf("%-24s [bad ecode id %04X]", name, a)
		}
		if len(def.Args) > scenario.EcodesPerEntry && a >= len(e.Ecodes)-1 {
			return fmt.Sprintf("%-24s [bad 2-ecode id %04X]", name, a)
		}
		values = make([]int, len(def.Args))
		for i := range values {
			values[i] = int(e.Ecodes[a+i/scenario.EcodesPerEntry][i%scenario.EcodesPerEntry])
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-24s ", name)
	for i, v := range values {
		if i > 0 {
			b.WriteString(", ")
		}
		e.writeArg(&b, &def.Args[i], v)
	}
	return b.String()
}

func (e *Engine) writeArg(b *strings.Builder, desc *Arg, v int) {
	if desc.Name != "" {
		b.WriteString(desc.Name)
		b.WriteByte('=')
	}

	negated := false
	if v < 0 && desc.NegativeSuffix != "" {
		v = -v
		negated = true
	}

	if name, ok := desc.Values[v]; ok {
		b.WriteString(name)
	} else if desc.StringRef {
		b.WriteString(RenderStringRef(e.Strings, v))
	} else {
		b.WriteString(strconv.Itoa(v))
	}

	if negated {
		b.WriteString(", ")
		b.WriteString(desc.NegativeSuffix)
	}
}

// StringRef renders a tagged string reference against the engine's pool.
func (e *Engine) StringRef(ref scenario.StringRef) string {
	return RenderStringRef(e.Strings, ref.Signed())
}

// RenderStringRef renders a signed string pool reference. Zero is "0",
// out-of-range references are the bare number, anything else is the quoted
// string followed by the reference.
func RenderStringRef(pool scenario.StringPool, index int) string {
	if index == 0 {
		return "0"
	}
	i := abs(index)
	if i >= len(pool) {
		return strconv.Itoa(index)
	}
	return `"` + strings.ReplaceAll(pool[i], `"`, `\"`) + `"#` + strconv.Itoa(index)
}
