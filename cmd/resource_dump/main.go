package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"realmz-dasm/internal/resfork"
)

// Raw output policies.
const (
	saveNever        = "no"
	saveIfDecodeFail = "if-decode-fails"
	saveAlways       = "yes"
)

var rawExt = map[uint32]string{
	resfork.TypeMOOV: "mov",
}

type dumper struct {
	outDir     string
	types      map[uint32]bool
	ids        map[int16]bool
	remap      [][2]uint32
	saveRaw    string
	skipDecode bool
	dataFork   bool
	log        *zap.Logger
	written    int
}

// listFlag collects repeated or comma-separated flag values.
type listFlag []string

func (l *listFlag) String() string { return strings.Join(*l, ",") }

func (l *listFlag) Set(v string) error {
	*l = append(*l, strings.Split(v, ",")...)
	return nil
}

func outputPrefix(dir, base string, typ uint32, id int16) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%s_%d", base, resfork.TypeString(typ), id))
}

func (d *dumper) write(path string, data []byte) {
	if err := os.WriteFile(path, data, 0644); err != nil {
		d.log.Warn("write failed", zap.String("path", path), zap.Error(err))
		return
	}
	d.written++
	fmt.Printf("... %s\n", path)
}

// decode writes the decoded form of text resources. It reports false for
// types it has no decoder for.
func (d *dumper) decode(prefix string, typ uint32, data []byte) bool {
	switch typ {
	case resfork.TypeTEXT:
		d.write(prefix+".txt", []byte(resfork.DecodeText(data)))
	case resfork.TypeSTR:
		s, trailing := resfork.DecodeString(data)
		d.write(prefix+".txt", []byte(s))
		if len(trailing) > 0 {
			d.write(prefix+"_data.bin", trailing)
		}
	case resfork.TypeSTRN:
		for i, s := range resfork.DecodeStringList(data) {
			d.write(fmt.Sprintf("%s_%d.txt", prefix, i), []byte(s))
		}
	default:
		return false
	}
	return true
}

func (d *dumper) exportResource(f *resfork.File, outDir, base string, ref resfork.Ref) {
	data, err := f.Load(ref.Type, ref.ID)
	if err != nil {
		d.log.Warn("failed to load resource", zap.Stringer("resource", ref), zap.Error(err))
		return
	}

	prefix := outputPrefix(outDir, base, ref.Type, ref.ID)
	writeRaw := d.saveRaw == saveAlways
	decoded := !d.skipDecode && d.decode(prefix, ref.Type, data)
	if !decoded && d.saveRaw == saveIfDecodeFail {
		writeRaw = true
	}
	if writeRaw {
		ext, ok := rawExt[ref.Type]
		if !ok {
			ext = "raw"
		}
		d.write(prefix+"."+ext, data)
	}
}

// forkPath finds a file's resource fork unless the data fork is requested.
func (d *dumper) forkPath(path string) string {
	if d.dataFork {
		return path
	}
	for _, p := range []string{filepath.Join(path, "..namedfork", "rsrc"), filepath.Join(path, "rsrc")} {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return path
}

func (d *dumper) dumpFile(path, outDir string) {
	fmt.Fprintf(os.Stderr, ">>> %s\n", path)
	f, err := resfork.Open(d.forkPath(path))
	if err != nil {
		d.log.Warn("can't enumerate resources, skipping file", zap.String("path", path), zap.Error(err))
		return
	}
	for _, r := range d.remap {
		f.Remap(r[0], r[1])
	}

	base := filepath.Base(path)
	for _, ref := range f.Enumerate() {
		if len(d.types) > 0 && !d.types[ref.Type] {
			continue
		}
		if len(d.ids) > 0 && !d.ids[ref.ID] {
			continue
		}
		d.exportResource(f, outDir, base, ref)
	}
}

func (d *dumper) dumpPath(path, outDir string) {
	info, err := os.Stat(path)
	if err != nil {
		d.log.Warn("can't stat", zap.String("path", path), zap.Error(err))
		return
	}
	if !info.IsDir() {
		d.dumpFile(path, outDir)
		return
	}

	fmt.Fprintf(os.Stderr, ">>> %s (directory)\n", path)
	entries, err := os.ReadDir(path)
	if err != nil {
		d.log.Warn("can't list directory", zap.String("path", path), zap.Error(err))
		return
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)

	sub := filepath.Join(outDir, filepath.Base(path))
	if err := os.MkdirAll(sub, 0755); err != nil {
		d.log.Warn("can't create output directory", zap.String("path", sub), zap.Error(err))
		return
	}
	for _, name := range names {
		d.dumpPath(filepath.Join(path, name), sub)
	}
}

func main() {
	var types, ids, copyHandlers listFlag
	flag.Var(&types, "target-type", "Only dump resources of this type (repeatable)")
	flag.Var(&ids, "target-id", "Only dump resources with this id (repeatable)")
	flag.Var(&copyHandlers, "copy-handler", "TYP1,TYP2: treat TYP2 resources as TYP1")
	skipDecode := flag.Bool("skip-decode", false, "Dump raw contents only")
	saveRaw := flag.String("save-raw", saveIfDecodeFail, "Raw files: no, if-decode-fails or yes")
	dataFork := flag.Bool("data-fork", false, "Read data forks as if they were resource forks")
	debug := flag.Bool("debug", false, "Verbose development logging")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [options] filename out_directory\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}

	var log *zap.Logger
	var err error
	if *debug {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		log = zap.NewNop()
	}
	defer log.Sync()

	d := &dumper{
		outDir:     flag.Arg(1),
		types:      make(map[uint32]bool),
		ids:        make(map[int16]bool),
		saveRaw:    *saveRaw,
		skipDecode: *skipDecode,
		dataFork:   *dataFork,
		log:        log,
	}
	switch d.saveRaw {
	case saveNever, saveIfDecodeFail, saveAlways:
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid -save-raw %q\n", d.saveRaw)
		os.Exit(1)
	}
	if d.skipDecode && d.saveRaw == saveNever {
		d.saveRaw = saveIfDecodeFail
	}

	for _, s := range types {
		t, err := resfork.ParseType(s)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		d.types[t] = true
	}
	for _, s := range ids {
		id, err := strconv.ParseInt(s, 10, 16)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid -target-id %q\n", s)
			os.Exit(1)
		}
		d.ids[int16(id)] = true
	}
	if len(copyHandlers)%2 != 0 {
		fmt.Fprintln(os.Stderr, "Error: -copy-handler takes TYP1,TYP2 pairs")
		os.Exit(1)
	}
	for i := 0; i < len(copyHandlers); i += 2 {
		to, err1 := resfork.ParseType(copyHandlers[i])
		from, err2 := resfork.ParseType(copyHandlers[i+1])
		if err1 != nil || err2 != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid -copy-handler %s,%s\n", copyHandlers[i], copyHandlers[i+1])
			os.Exit(1)
		}
		d.remap = append(d.remap, [2]uint32{from, to})
	}

	if err := os.MkdirAll(d.outDir, 0755); err != nil {
		log.Fatal("can't create output directory", zap.Error(err))
	}
	d.dumpPath(flag.Arg(0), d.outDir)
	fmt.Printf("\nDone. %d file(s) written.\n", d.written)
}
