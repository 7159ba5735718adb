package scenario

import "realmz-dasm/internal/record"

const (
	ChoiceCount   = 4
	ChoiceOpcodes = 8

	SimpleEncounterSize  = 426
	ComplexEncounterSize = 520

	simpleTextWidth  = 80
	complexTextWidth = 40
)

// ChoiceBlock holds the 4x8 opcode grid embedded in simple and complex
// encounters. Codes are stored as single bytes.
type ChoiceBlock struct {
	Codes [ChoiceCount][ChoiceOpcodes]int8
	Args  [ChoiceCount][ChoiceOpcodes]int16
}

// Slot returns one (command, argument) pair widened for disassembly.
func (c *ChoiceBlock) Slot(choice, n int) (int16, int16) {
	return int16(c.Codes[choice][n]), c.Args[choice][n]
}

// SlotBlank reports a slot with zero code and zero argument.
func (c *ChoiceBlock) SlotBlank(choice, n int) bool {
	return c.Codes[choice][n] == 0 && c.Args[choice][n] == 0
}

// ChoiceBlank reports whether every slot of a choice is blank.
func (c *ChoiceBlock) ChoiceBlank(choice int) bool {
	for n := 0; n < ChoiceOpcodes; n++ {
		if !c.SlotBlank(choice, n) {
			return false
		}
	}
	return true
}

func decodeChoiceBlock(r *record.Reader) ChoiceBlock {
	var c ChoiceBlock
	for i := range c.Codes {
		r.I8s(c.Codes[i][:])
	}
	for i := range c.Args {
		r.I16s(c.Args[i][:])
	}
	return c
}

// SimpleEncounter is one data_ed record.
type SimpleEncounter struct {
	Choices     ChoiceBlock
	ResultIndex [ChoiceCount]int8
	CanBackout  int8
	MaxTimes    int8
	Unknown     int16
	Prompt      StringRef
	ChoiceText  [ChoiceCount]string
}

func decodeSimpleEncounter(r *record.Reader) SimpleEncounter {
	var e SimpleEncounter
	e.Choices = decodeChoiceBlock(r)
	r.I8s(e.ResultIndex[:])
	e.CanBackout = r.I8()
	e.MaxTimes = r.I8()
	e.Unknown = r.I16()
	e.Prompt = NewStringRef(r.I16())
	for i := range e.ChoiceText {
		e.ChoiceText[i] = decodeFixedText(r.Bytes(simpleTextWidth))
	}
	return e
}

// LoadSimpleEncounters reads a data_ed file.
func LoadSimpleEncounters(path string) ([]SimpleEncounter, error) {
	return record.LoadTable(path, SimpleEncounterSize, decodeSimpleEncounter)
}

// DecodeSimpleEncounters decodes an in-memory data_ed buffer.
func DecodeSimpleEncounters(raw []byte) ([]SimpleEncounter, error) {
	return record.DecodeTable("data_ed", raw, SimpleEncounterSize, decodeSimpleEncounter)
}

// ComplexEncounter is one data_ed2 record.
type ComplexEncounter struct {
	Choices           ChoiceBlock
	ActionResult      int8
	SpeakResult       int8
	ActionsSelected   [8]int8
	SpellCodes        [10]int16
	SpellResultCodes  [10]int8
	ItemCodes         [5]int16
	ItemResultCodes   [5]int8
	CanBackout        int8
	HasRogueEncounter int8
	MaxTimes          int8
	RogueEncounterID  int16
	RogueResetFlag    int8
	Unknown           int8
	Prompt            StringRef
	ActionText        [8]string
	SpeakText         string
}

func decodeComplexEncounter(r *record.Reader) ComplexEncounter {
	var e ComplexEncounter
	e.Choices = decodeChoiceBlock(r)
	e.ActionResult = r.I8()
	e.SpeakResult = r.I8()
	r.I8s(e.ActionsSelected[:])
	r.I16s(e.SpellCodes[:])
	r.I8s(e.SpellResultCodes[:])
	r.I16s(e.ItemCodes[:])
	r.I8s(e.ItemResultCodes[:])
	e.CanBackout = r.I8()
	e.HasRogueEncounter = r.I8()
	e.MaxTimes = r.I8()
	e.RogueEncounterID = r.I16()
	e.RogueResetFlag = r.I8()
	e.Unknown = r.I8()
	e.Prompt = NewStringRef(r.I16())
	for i := range e.ActionText {
		e.ActionText[i] = decodeFixedText(r.Bytes(complexTextWidth))
	}
	e.SpeakText = decodeFixedText(r.Bytes(complexTextWidth))
	return e
}

// LoadComplexEncounters reads a data_ed2 file.
func LoadComplexEncounters(path string) ([]ComplexEncounter, error) {
	return record.LoadTable(path, ComplexEncounterSize, decodeComplexEncounter)
}

// DecodeComplexEncounters decodes an in-memory data_ed2 buffer.
func DecodeComplexEncounters(raw []byte) ([]ComplexEncounter, error) {
	return record.DecodeTable("data_ed2", raw, ComplexEncounterSize, decodeComplexEncounter)
}
