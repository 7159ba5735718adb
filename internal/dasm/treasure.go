// Package dasm renders decoded scenario tables as plain-text reports.
package dasm

import (
	"fmt"
	"strings"

	"realmz-dasm/internal/scenario"
)

func writeAmount(b *strings.Builder, name string, a scenario.Amount) {
	if a.IsZero() {
		return
	}
	fmt.Fprintf(b, "  %s=%s\n", name, a)
}

// Treasure renders one treasure record.
func Treasure(index int, t scenario.Treasure) string {
	var b strings.Builder
	fmt.Fprintf(&b, "===== TREASURE id=%d\n", index)
	writeAmount(&b, "victory_points", t.VictoryPoints)
	writeAmount(&b, "gold", t.Gold)
	writeAmount(&b, "gems", t.Gems)
	writeAmount(&b, "jewelry", t.Jewelry)
	for i, id := range t.ItemIDs {
		if id != 0 {
			fmt.Fprintf(&b, "  %d> %d\n", i, id)
		}
	}
	return b.String()
}

// Treasures renders every treasure in table order.
func Treasures(ts []scenario.Treasure) string {
	var b strings.Builder
	for i, t := range ts {
		b.WriteString(Treasure(i, t))
	}
	return b.String()
}
