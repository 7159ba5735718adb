package dasm

import (
	"fmt"
	"strings"

	"realmz-dasm/internal/opcode"
	"realmz-dasm/internal/scenario"
)

// AP renders one action point with its non-blank opcode slots.
func AP(e *opcode.Engine, kind scenario.APKind, level, id int, ap scenario.AP) string {
	var b strings.Builder
	fmt.Fprintf(&b, "==== %s level=%d id=%d x=%d y=%d to_level=%d to_x=%d to_y=%d prob=%d\n",
		kind, level, id, ap.Location.X, ap.Location.Y, ap.ToLevel, ap.ToX, ap.ToY, ap.PercentChance)
	for n := 0; n < scenario.APSlots; n++ {
		if ap.SlotBlank(n) {
			continue
		}
		fmt.Fprintf(&b, "  %d> %s\n", n, e.Disassemble(ap.Commands[n], ap.Args[n]))
	}
	return b.String()
}

// LevelAPs renders every AP of one level, numbered from zero.
func LevelAPs(e *opcode.Engine, kind scenario.APKind, level int, aps []scenario.AP) string {
	var b strings.Builder
	for i, ap := range aps {
		b.WriteString(AP(e, kind, level, i, ap))
	}
	return b.String()
}

// AllAPs renders a per-level AP table.
func AllAPs(e *opcode.Engine, kind scenario.APKind, levels [][]scenario.AP) string {
	var b strings.Builder
	for level, aps := range levels {
		b.WriteString(LevelAPs(e, kind, level, aps))
	}
	return b.String()
}
