package scenario

import "realmz-dasm/internal/record"

const (
	RogueActions       = 8
	RogueEncounterSize = 118
)

// RogueActionNames labels the eight rogue encounter action slots.
var RogueActionNames = [RogueActions]string{
	"acrobatic_act", "detect_trap", "disable_trap", "action3",
	"force_lock", "action5", "pick_lock", "action7",
}

// RogueEncounter is one data_td2 record.
type RogueEncounter struct {
	ActionsAvailable     [RogueActions]int8
	TrapAffectsRogueOnly int8
	IsTrapped            int8
	PercentModify        [RogueActions]int8
	SuccessResultCodes   [RogueActions]int8
	FailureResultCodes   [RogueActions]int8
	SuccessStrings       [RogueActions]StringRef
	FailureStrings       [RogueActions]StringRef
	SuccessSounds        [RogueActions]int16
	FailureSounds        [RogueActions]int16

	TrapSpell              int16
	TrapDamageLow          int16
	TrapDamageHigh         int16
	LockTumblers           int16
	Prompt                 StringRef
	TrapSound              int16
	TrapSpellPower         int16
	PromptSound            int16
	PercentPerLevelOpen    int16
	PercentPerLevelDisable int16
}

func decodeRogueEncounter(r *record.Reader) RogueEncounter {
	var e RogueEncounter
	r.I8s(e.ActionsAvailable[:])
	e.TrapAffectsRogueOnly = r.I8()
	e.IsTrapped = r.I8()
	r.I8s(e.PercentModify[:])
	r.I8s(e.SuccessResultCodes[:])
	r.I8s(e.FailureResultCodes[:])
	for i := range e.SuccessStrings {
		e.SuccessStrings[i] = NewStringRef(r.I16())
	}
	for i := range e.FailureStrings {
		e.FailureStrings[i] = NewStringRef(r.I16())
	}
	r.I16s(e.SuccessSounds[:])
	r.I16s(e.FailureSounds[:])

	e.TrapSpell = r.I16()
	e.TrapDamageLow = r.I16()
	e.TrapDamageHigh = r.I16()
	e.LockTumblers = r.I16()
	e.Prompt = NewStringRef(r.I16())
	e.TrapSound = r.I16()
	e.TrapSpellPower = r.I16()
	e.PromptSound = r.I16()
	e.PercentPerLevelOpen = r.I16()
	e.PercentPerLevelDisable = r.I16()
	return e
}

// LoadRogueEncounters reads a data_td2 file.
func LoadRogueEncounters(path string) ([]RogueEncounter, error) {
	return record.LoadTable(path, RogueEncounterSize, decodeRogueEncounter)
}

// DecodeRogueEncounters decodes an in-memory data_td2 buffer.
func DecodeRogueEncounters(raw []byte) ([]RogueEncounter, error) {
	return record.DecodeTable("data_td2", raw, RogueEncounterSize, decodeRogueEncounter)
}
