package scenario

import "realmz-dasm/internal/record"

const (
	GlobalMetadataSize   = 60
	ScenarioMetadataSize = 20
)

// GlobalMetadata is the scenario's "global" file: the XAPs run on
// scenario-wide events.
type GlobalMetadata struct {
	StartXAP     int16
	DeathXAP     int16
	QuitXAP      int16
	Reserved1XAP int16
	ShopXAP      int16
	TempleXAP    int16
	Reserved2XAP int16
	Unknown      [23]int16
}

func decodeGlobalMetadata(r *record.Reader) GlobalMetadata {
	var g GlobalMetadata
	g.StartXAP = r.I16()
	g.DeathXAP = r.I16()
	g.QuitXAP = r.I16()
	g.Reserved1XAP = r.I16()
	g.ShopXAP = r.I16()
	g.TempleXAP = r.I16()
	g.Reserved2XAP = r.I16()
	r.I16s(g.Unknown[:])
	return g
}

// LoadGlobalMetadata reads the "global" file.
func LoadGlobalMetadata(path string) (GlobalMetadata, error) {
	return record.LoadSingle(path, GlobalMetadataSize, decodeGlobalMetadata)
}

// ScenarioMetadata is the known prefix of the file named after the
// scenario. Everything past the first 20 bytes is ignored.
type ScenarioMetadata struct {
	RecommendedStartingLevels int32
	Unknown1                  int32
	StartLevel                int32
	StartX                    int32
	StartY                    int32
}

func decodeScenarioMetadata(r *record.Reader) ScenarioMetadata {
	return ScenarioMetadata{
		RecommendedStartingLevels: r.I32(),
		Unknown1:                  r.I32(),
		StartLevel:                r.I32(),
		StartX:                    r.I32(),
		StartY:                    r.I32(),
	}
}

// LoadScenarioMetadata reads the scenario metadata file.
func LoadScenarioMetadata(path string) (ScenarioMetadata, error) {
	return record.LoadSingle(path, ScenarioMetadataSize, decodeScenarioMetadata)
}
