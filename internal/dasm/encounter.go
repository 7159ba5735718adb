package dasm

import (
	"fmt"
	"strings"

	"realmz-dasm/internal/opcode"
	"realmz-dasm/internal/scenario"
)

func quote(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

// writeChoices renders the opcode grid of an encounter. Output stops at the
// first choice with no opcodes; blank slots inside a choice are skipped.
func writeChoices(b *strings.Builder, e *opcode.Engine, c *scenario.ChoiceBlock) {
	for choice := 0; choice < scenario.ChoiceCount; choice++ {
		if c.ChoiceBlank(choice) {
			break
		}
		for n := 0; n < scenario.ChoiceOpcodes; n++ {
			if c.SlotBlank(choice, n) {
				continue
			}
			cmd, arg := c.Slot(choice, n)
			fmt.Fprintf(b, "  result%d/%d> %s\n", choice+1, n, e.Disassemble(cmd, arg))
		}
	}
}

// SimpleEncounter renders one data_ed record.
func SimpleEncounter(e *opcode.Engine, index int, enc scenario.SimpleEncounter) string {
	var b strings.Builder
	fmt.Fprintf(&b, "===== SIMPLE ENCOUNTER id=%d\n", index)
	fmt.Fprintf(&b, "  can_backout=%d\n", enc.CanBackout)
	fmt.Fprintf(&b, "  max_times=%d\n", enc.MaxTimes)
	fmt.Fprintf(&b, "  prompt=%s\n", e.StringRef(enc.Prompt))
	for i, text := range enc.ChoiceText {
		if text == "" {
			continue
		}
		fmt.Fprintf(&b, "  choice%d: result=%d text=\"%s\"\n", i, enc.ResultIndex[i], quote(text))
	}
	writeChoices(&b, e, &enc.Choices)
	return b.String()
}

// AllSimpleEncounters renders every simple encounter in table order.
func AllSimpleEncounters(e *opcode.Engine, encs []scenario.SimpleEncounter) string {
	var b strings.Builder
	for i, enc := range encs {
		b.WriteString(SimpleEncounter(e, i, enc))
	}
	return b.String()
}

// ComplexEncounter renders one data_ed2 record.
func ComplexEncounter(e *opcode.Engine, index int, enc scenario.ComplexEncounter) string {
	var b strings.Builder
	fmt.Fprintf(&b, "===== COMPLEX ENCOUNTER id=%d\n", index)
	fmt.Fprintf(&b, "  can_backout=%d\n", enc.CanBackout)
	fmt.Fprintf(&b, "  max_times=%d\n", enc.MaxTimes)
	fmt.Fprintf(&b, "  prompt=%s\n", e.StringRef(enc.Prompt))

	for i, id := range enc.SpellCodes {
		if id != 0 {
			fmt.Fprintf(&b, "  spell: id=%d result=%d\n", id, enc.SpellResultCodes[i])
		}
	}
	for i, id := range enc.ItemCodes {
		if id != 0 {
			fmt.Fprintf(&b, "  item: id=%d result=%d\n", id, enc.ItemResultCodes[i])
		}
	}
	for i, text := range enc.ActionText {
		if text == "" {
			continue
		}
		fmt.Fprintf(&b, "  action: selected=%d text=\"%s\"\n", enc.ActionsSelected[i], quote(text))
	}
	fmt.Fprintf(&b, "  action_result=%d\n", enc.ActionResult)
	fmt.Fprintf(&b, "  rogue_encounter: present=%d id=%d reset=%d\n",
		enc.HasRogueEncounter, enc.RogueEncounterID, enc.RogueResetFlag)
	if enc.SpeakText != "" {
		fmt.Fprintf(&b, "  speak: result=%d text=\"%s\"\n", enc.SpeakResult, quote(enc.SpeakText))
	}

	writeChoices(&b, e, &enc.Choices)
	return b.String()
}

// AllComplexEncounters renders every complex encounter in table order.
func AllComplexEncounters(e *opcode.Engine, encs []scenario.ComplexEncounter) string {
	var b strings.Builder
	for i, enc := range encs {
		b.WriteString(ComplexEncounter(e, i, enc))
	}
	return b.String()
}

// RogueEncounter renders one data_td2 record.
func RogueEncounter(e *opcode.Engine, index int, enc scenario.RogueEncounter) string {
	var b strings.Builder
	fmt.Fprintf(&b, "===== ROGUE ENCOUNTER id=%d\n", index)
	fmt.Fprintf(&b, "  prompt: sound=%d, text=%s\n", enc.PromptSound, e.StringRef(enc.Prompt))

	for i, name := range scenario.RogueActionNames {
		if enc.ActionsAvailable[i] == 0 {
			continue
		}
		fmt.Fprintf(&b, "  action_%s: pct_mod=%d succ_result=%d fail_result=%d succ_str=%s fail_str=%s succ_snd=%d fail_snd=%d\n",
			name, enc.PercentModify[i], enc.SuccessResultCodes[i], enc.FailureResultCodes[i],
			e.StringRef(enc.SuccessStrings[i]), e.StringRef(enc.FailureStrings[i]),
			enc.SuccessSounds[i], enc.FailureSounds[i])
	}

	if enc.IsTrapped != 0 {
		fmt.Fprintf(&b, "  trap: rogue_only=%d spell=%d spell_power=%d damage_range=[%d,%d] sound=%d\n",
			enc.TrapAffectsRogueOnly, enc.TrapSpell, enc.TrapSpellPower,
			enc.TrapDamageLow, enc.TrapDamageHigh, enc.TrapSound)
	}

	fmt.Fprintf(&b, "  pct_per_level_to_open_lock=%d\n", enc.PercentPerLevelOpen)
	fmt.Fprintf(&b, "  pct_per_level_to_disable_trap=%d\n", enc.PercentPerLevelDisable)
	fmt.Fprintf(&b, "  num_lock_tumblers=%d\n", enc.LockTumblers)
	return b.String()
}

// AllRogueEncounters renders every rogue encounter in table order.
func AllRogueEncounters(e *opcode.Engine, encs []scenario.RogueEncounter) string {
	var b strings.Builder
	for i, enc := range encs {
		b.WriteString(RogueEncounter(e, i, enc))
	}
	return b.String()
}

// TimeEncounter renders one data_td3 record.
func TimeEncounter(index int, enc scenario.TimeEncounter) string {
	levelKind := "dungeon"
	if enc.OnLand() {
		levelKind = "land"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "===== TIME ENCOUNTER id=%d\n", index)
	fmt.Fprintf(&b, "  day=%d\n", enc.Day)
	fmt.Fprintf(&b, "  increment=%d\n", enc.Increment)
	fmt.Fprintf(&b, "  percent_chance=%d\n", enc.PercentChance)
	fmt.Fprintf(&b, "  xap_id=%d\n", enc.XAPID)
	fmt.Fprintf(&b, "  required_level: id=%d (%s)\n", enc.RequiredLevel, levelKind)
	fmt.Fprintf(&b, "  required_rect=%d\n", enc.RequiredRect)
	fmt.Fprintf(&b, "  required_pos=(%d,%d)\n", enc.RequiredX, enc.RequiredY)
	fmt.Fprintf(&b, "  required_item_id=%d\n", enc.RequiredItemID)
	fmt.Fprintf(&b, "  required_quest=%d\n", enc.RequiredQuest)
	return b.String()
}

// AllTimeEncounters renders every time encounter in table order.
func AllTimeEncounters(encs []scenario.TimeEncounter) string {
	var b strings.Builder
	for i, enc := range encs {
		b.WriteString(TimeEncounter(i, enc))
	}
	return b.String()
}
