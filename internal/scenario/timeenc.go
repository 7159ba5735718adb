package scenario

import "realmz-dasm/internal/record"

const TimeEncounterSize = 40

// TimeEncounter is one data_td3 record. LandOrDungeon is 1 for land levels
// and 2 for dungeon levels.
type TimeEncounter struct {
	Day            int16
	Increment      int16
	PercentChance  int16
	XAPID          int16
	RequiredLevel  int16
	RequiredRect   int16
	RequiredX      int16
	RequiredY      int16
	RequiredItemID int16
	RequiredQuest  int16
	LandOrDungeon  int16
}

// OnLand reports whether RequiredLevel names a land level.
func (e TimeEncounter) OnLand() bool {
	return e.LandOrDungeon == 1
}

func decodeTimeEncounter(r *record.Reader) TimeEncounter {
	return TimeEncounter{
		Day:            r.I16(),
		Increment:      r.I16(),
		PercentChance:  r.I16(),
		XAPID:          r.I16(),
		RequiredLevel:  r.I16(),
		RequiredRect:   r.I16(),
		RequiredX:      r.I16(),
		RequiredY:      r.I16(),
		RequiredItemID: r.I16(),
		RequiredQuest:  r.I16(),
		LandOrDungeon:  r.I16(),
	}
}

// LoadTimeEncounters reads a data_td3 file.
func LoadTimeEncounters(path string) ([]TimeEncounter, error) {
	return record.LoadTable(path, TimeEncounterSize, decodeTimeEncounter)
}

// DecodeTimeEncounters decodes an in-memory data_td3 buffer.
func DecodeTimeEncounters(raw []byte) ([]TimeEncounter, error) {
	return record.DecodeTable("data_td3", raw, TimeEncounterSize, decodeTimeEncounter)
}
