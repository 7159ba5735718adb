package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"realmz-dasm/internal/dasm"
	"realmz-dasm/internal/opcode"
	"realmz-dasm/internal/scenario"
)

const usage = `usage: inspect [-scenario dir] [-debug] what [index]

what:
  opcodes                      the opcode table (no scenario needed)
  disasm CMD ARG               disassemble one command/argument pair
  treasure|simple|complex|rogue|time [index]
  land-ap|dungeon-ap [level]   action points of one level, or all
  extra-ap                     extra action points
  strings|ecodes [index]
  land-meta|dungeon-meta [level]
  layout                       layout grid and its connected components
  global|info                  global and scenario metadata
`

func dumpOpcodes() {
	for _, id := range opcode.IDs() {
		def, _ := opcode.Lookup(id)
		fmt.Printf("%3d %s", id, def.Name)
		if def.NegativeName != "" {
			fmt.Printf(" / %s", def.NegativeName)
		}
		if def.ForceEcodes {
			fmt.Print(" (ecodes)")
		}
		fmt.Println()
		for i, a := range def.Args {
			var attrs []string
			if a.StringRef {
				attrs = append(attrs, "string")
			}
			if a.NegativeSuffix != "" {
				attrs = append(attrs, "neg="+a.NegativeSuffix)
			}
			if len(a.Values) > 0 {
				keys := make([]int, 0, len(a.Values))
				for k := range a.Values {
					keys = append(keys, k)
				}
				sort.Ints(keys)
				vals := make([]string, len(keys))
				for j, k := range keys {
					vals[j] = fmt.Sprintf("%d=%s", k, a.Values[k])
				}
				attrs = append(attrs, "values{"+strings.Join(vals, " ")+"}")
			}
			name := a.Name
			if name == "" {
				name = "-"
			}
			fmt.Printf("      %d %s %s\n", i, name, strings.Join(attrs, " "))
		}
	}
}

// pick renders entry index of n entries, or all of them when index < 0.
func pick(n, index int, one func(int) string) (string, error) {
	if index < 0 {
		var b strings.Builder
		for i := 0; i < n; i++ {
			b.WriteString(one(i))
		}
		return b.String(), nil
	}
	if index >= n {
		return "", fmt.Errorf("index %d out of range [0,%d)", index, n)
	}
	return one(index), nil
}

func dumpLayout(s *scenario.Scenario) string {
	if !s.HasLayout {
		return "no layout file\n"
	}
	var b strings.Builder
	b.WriteString("==== LAYOUT\n")
	for _, row := range s.Layout {
		for _, id := range row {
			fmt.Fprintf(&b, " %3d", id)
		}
		b.WriteByte('\n')
	}
	for i, comp := range s.Layout.Components() {
		fmt.Fprintf(&b, "component %d: %v\n", i, comp.Levels())
	}
	return b.String()
}

func inspect(s *scenario.Scenario, what string, index int) (string, error) {
	e := opcode.New(s.Ecodes, s.Strings)
	switch what {
	case "treasure":
		return pick(len(s.Treasures), index, func(i int) string { return dasm.Treasure(i, s.Treasures[i]) })
	case "simple":
		return pick(len(s.SimpleEncounters), index, func(i int) string { return dasm.SimpleEncounter(e, i, s.SimpleEncounters[i]) })
	case "complex":
		return pick(len(s.ComplexEncounters), index, func(i int) string { return dasm.ComplexEncounter(e, i, s.ComplexEncounters[i]) })
	case "rogue":
		return pick(len(s.RogueEncounters), index, func(i int) string { return dasm.RogueEncounter(e, i, s.RogueEncounters[i]) })
	case "time":
		return pick(len(s.TimeEncounters), index, func(i int) string { return dasm.TimeEncounter(i, s.TimeEncounters[i]) })
	case "land-ap":
		return pick(len(s.LandAPs), index, func(i int) string { return dasm.LevelAPs(e, scenario.LandAP, i, s.LandAPs[i]) })
	case "dungeon-ap":
		return pick(len(s.DungeonAPs), index, func(i int) string { return dasm.LevelAPs(e, scenario.DungeonAP, i, s.DungeonAPs[i]) })
	case "extra-ap":
		return dasm.LevelAPs(e, scenario.ExtraAP, 0, s.ExtraAPs), nil
	case "strings":
		return pick(len(s.Strings), index, func(i int) string {
			return fmt.Sprintf("%d %s\n", i, opcode.RenderStringRef(s.Strings, i))
		})
	case "ecodes":
		return pick(len(s.Ecodes), index, func(i int) string { return fmt.Sprintf("%d %v\n", i, s.Ecodes[i]) })
	case "land-meta":
		return pick(len(s.LandMetadata), index, func(i int) string { return dasm.MapMetadata("LAND", i, s.LandMetadata[i]) })
	case "dungeon-meta":
		return pick(len(s.DungeonMetadata), index, func(i int) string { return dasm.MapMetadata("DUNGEON", i, s.DungeonMetadata[i]) })
	case "layout":
		return dumpLayout(s), nil
	case "global":
		if !s.HasGlobal {
			return "no global file\n", nil
		}
		return dasm.Globals(s.Global), nil
	case "info":
		if !s.HasMetadata {
			return "no scenario metadata file\n", nil
		}
		return dasm.ScenarioInfo(s.Metadata), nil
	}
	return "", fmt.Errorf("unknown table %q", what)
}

func main() {
	scenarioDir := flag.String("scenario", ".", "Scenario directory")
	debug := flag.Bool("debug", false, "Log table loading")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}
	what := flag.Arg(0)

	if what == "opcodes" {
		dumpOpcodes()
		return
	}

	log := zap.NewNop()
	if *debug {
		if l, err := zap.NewDevelopment(); err == nil {
			log = l
		}
	}
	defer log.Sync()

	s, err := scenario.LoadDir(*scenarioDir, log)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if what == "disasm" {
		if flag.NArg() != 3 {
			flag.Usage()
			os.Exit(1)
		}
		cmd, err1 := strconv.ParseInt(flag.Arg(1), 10, 16)
		arg, err2 := strconv.ParseInt(flag.Arg(2), 10, 16)
		if err1 != nil || err2 != nil {
			fmt.Println("Error: CMD and ARG must be 16-bit integers")
			os.Exit(1)
		}
		fmt.Println(opcode.New(s.Ecodes, s.Strings).Disassemble(int16(cmd), int16(arg)))
		return
	}

	index := -1
	if flag.NArg() > 1 {
		index, err = strconv.Atoi(flag.Arg(1))
		if err != nil {
			fmt.Printf("Error: bad index %q\n", flag.Arg(1))
			os.Exit(1)
		}
	}

	out, err := inspect(s, what, index)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(out)
}
