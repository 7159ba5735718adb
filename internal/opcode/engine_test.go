package opcode

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realmz-dasm/internal/scenario"
)

func col(name string) string {
	return fmt.Sprintf("%-24s ", name)
}

func testEngine() *Engine {
	return New([]scenario.Ecodes{
		{0, 0, 0, 0, 0},
		{6, 7, 8, 9, 10},
		{100, 1, 2, 33, 44},
		{3, 4, 1, 2, -1},
		{10, 20, 30, 40, 0},
		{-5, 7, 3, 2, 10},
		{2, 0, 0, 0, 0},
		{-1, 10, -1, 0, 0},
	}, scenario.StringPool{"", "a", `say "hi"`})
}

// ---- Unknown opcodes ----

func TestDisassemble_UnknownWithEcodes(t *testing.T) {
	e := testEngine()
	assert.Equal(t, "[79 1 [6 7 8 9 10]]", e.Disassemble(79, 1))
	assert.Equal(t, "[-79 -1 [6 7 8 9 10]]", e.Disassemble(-79, -1))
	assert.Equal(t, "[0 0 [0 0 0 0 0]]", e.Disassemble(0, 0))
}

func TestDisassemble_UnknownOutOfRange(t *testing.T) {
	e := testEngine()
	assert.Equal(t, "[79 8]", e.Disassemble(79, 8))
	assert.Equal(t, "[200 -32768]", e.Disassemble(200, -32768))
}

// ---- Direct arguments ----

func TestDisassemble_ZeroArg(t *testing.T) {
	e := testEngine()
	assert.Equal(t, "exit_ap", e.Disassemble(24, 0))
	assert.Equal(t, "exit_ap", e.Disassemble(-24, 123))
}

func TestDisassemble_OneArgDirect(t *testing.T) {
	e := testEngine()
	assert.Equal(t, col("simple_enc")+"12", e.Disassemble(4, 12))
	assert.Equal(t, col("simple_enc")+"-12", e.Disassemble(4, -12))
}

func TestDisassemble_StringWithNegativeModifier(t *testing.T) {
	e := testEngine()
	assert.Equal(t, col("string")+`"say \"hi\""#2`, e.Disassemble(1, 2))
	assert.Equal(t, col("string")+`"say \"hi\""#2, no_wait`, e.Disassemble(1, -2))
	assert.Equal(t, col("string")+"0", e.Disassemble(1, 0))
	assert.Equal(t, col("string")+"7", e.Disassemble(1, 7))
}

func TestDisassemble_DirectValueName(t *testing.T) {
	e := testEngine()
	assert.Equal(t, col("change_dir")+"random", e.Disassemble(95, -1))
	assert.Equal(t, col("change_dir")+"west", e.Disassemble(95, 4))
}

// ---- Ecodes arguments ----

func TestDisassemble_EcodesArgs(t *testing.T) {
	e := testEngine()
	assert.Equal(t, col("use_ap")+"level=6, id=7", e.Disassemble(8, 1))
}

func TestDisassemble_NegativeArgSelectsVariant(t *testing.T) {
	e := testEngine()
	want := col("jmp_if_item_link") + "item=100, target_type=simple, nonposs_action=string_exit, target=33, other_target=44"
	assert.Equal(t, want, e.Disassemble(21, -2))
	assert.Equal(t, want, e.Disassemble(-21, 2))
	assert.Equal(t, col("option_link")+"continue_option=100, target_type=xap, target=2, left_prompt=33, right_prompt=44",
		e.Disassemble(-3, 2))
}

func TestDisassemble_NegativeArgWithoutVariant(t *testing.T) {
	e := testEngine()
	assert.Equal(t, col("use_ap")+"level=6, id=7", e.Disassemble(8, -1))
}

func TestDisassemble_NegativeModifiersAndStrings(t *testing.T) {
	e := testEngine()
	want := col("battle") + `low=5, surprise, high=7, sound_or_lose_xap=3, string="say \"hi\""#2, treasure_mode=xap_on_lose`
	assert.Equal(t, want, e.Disassemble(2, 5))
}

func TestDisassemble_NegativeValueNames(t *testing.T) {
	e := testEngine()
	assert.Equal(t, col("tele")+"level=same, x=10, y=same, sound=0", e.Disassemble(45, 7))
}

func TestDisassemble_ForceEcodes(t *testing.T) {
	e := testEngine()
	assert.Equal(t, col("save_restore_loc")+"restore", e.Disassemble(70, 6))
	assert.Equal(t, fmt.Sprintf("%-24s [bad ecode id 0063]", "save_restore_loc"), e.Disassemble(70, 99))
}

func TestDisassemble_TwoEntryOpcode(t *testing.T) {
	e := testEngine()
	want := col("change_rect_size") +
		"level=3, rect=4, level_type=dungeon, times_in_10k_mult=2, action=none, left_h=10, right_v=20, top=30, bottom=40"
	assert.Equal(t, want, e.Disassemble(92, 3))
}

// ---- Bad ecodes ----

func TestDisassemble_BadEcode(t *testing.T) {
	e := testEngine()
	assert.Equal(t, "use_ap                   [bad ecode id 0009]", e.Disassemble(8, 9))
	assert.Equal(t, "use_ap                   [bad ecode id 8000]", e.Disassemble(8, math.MinInt16))
	assert.Equal(t, "jmp_if_item_link         [bad ecode id 0008]", e.Disassemble(21, -8))
}

func TestDisassemble_BadTwoEcode(t *testing.T) {
	e := testEngine()
	assert.Equal(t, "change_rect_size         [bad 2-ecode id 0007]", e.Disassemble(92, 7))
	assert.Equal(t, "change_rect_size         [bad ecode id 0008]", e.Disassemble(92, 8))
}

// ---- Totality ----

func TestDisassemble_NeverPanics(t *testing.T) {
	engines := []*Engine{testEngine(), New(nil, nil), New([]scenario.Ecodes{{-32768, 32767, -1, 0, 1}}, nil)}
	edges := []int16{math.MinInt16, math.MinInt16 + 1, -1000, -2, -1, 0, 1, 2, 1000, math.MaxInt16}

	for _, e := range engines {
		for cmd := -130; cmd <= 130; cmd++ {
			for _, arg := range edges {
				out := ""
				require.NotPanics(t, func() { out = e.Disassemble(int16(cmd), arg) })
				assert.NotEmpty(t, out)
			}
		}
		for _, cmd := range edges {
			for _, arg := range edges {
				require.NotPanics(t, func() { e.Disassemble(cmd, arg) })
			}
		}
	}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20000; i++ {
		cmd := int16(rng.Intn(1 << 16))
		arg := int16(rng.Intn(1 << 16))
		for _, e := range engines {
			require.NotPanics(t, func() { e.Disassemble(cmd, arg) })
		}
	}
}

func TestDisassemble_EmptyEcodes(t *testing.T) {
	e := New(nil, nil)
	assert.Equal(t, "[79 0]", e.Disassemble(79, 0))
	assert.Equal(t, "use_ap                   [bad ecode id 0000]", e.Disassemble(8, 0))
	assert.Equal(t, col("simple_enc")+"3", e.Disassemble(4, 3))
}

// ---- String references ----

func TestRenderStringRef(t *testing.T) {
	pool := scenario.StringPool{"a", "b", "c"}
	assert.Equal(t, "0", RenderStringRef(pool, 0))
	assert.Equal(t, "5", RenderStringRef(pool, 5))
	assert.Equal(t, "-5", RenderStringRef(pool, -5))
	assert.Equal(t, "3", RenderStringRef(pool, 3))
	assert.Equal(t, `"c"#2`, RenderStringRef(pool, 2))
	assert.Equal(t, `"c"#-2`, RenderStringRef(pool, -2))
	assert.Equal(t, "0", RenderStringRef(nil, 0))
	assert.Equal(t, "1", RenderStringRef(nil, 1))
}

func TestRenderStringRef_Escapes(t *testing.T) {
	pool := scenario.StringPool{"", `he said "go"`}
	assert.Equal(t, `"he said \"go\""#1`, RenderStringRef(pool, 1))
}

func TestEngine_StringRef(t *testing.T) {
	e := testEngine()
	assert.Equal(t, `"a"#-1`, e.StringRef(scenario.NewStringRef(-1)))
	assert.Equal(t, "0", e.StringRef(scenario.StringRef{}))
}

// ---- Table ----

func TestIDs_Sparse(t *testing.T) {
	ids := IDs()
	require.Len(t, ids, 117)
	assert.Equal(t, 1, ids[0])
	assert.Equal(t, 127, ids[len(ids)-1])
	for _, missing := range []int{0, 79, 80, 109, 110, 113, 118, 128} {
		_, ok := Lookup(missing)
		assert.False(t, ok, "opcode %d", missing)
	}
}

func TestLookup_Definitions(t *testing.T) {
	d, ok := Lookup(70)
	require.True(t, ok)
	assert.True(t, d.ForceEcodes)

	forced := 0
	for _, id := range IDs() {
		d, _ := Lookup(id)
		if d.ForceEcodes {
			forced++
		}
		assert.LessOrEqual(t, len(d.Args), 2*scenario.EcodesPerEntry, "opcode %d", id)
	}
	assert.Equal(t, 1, forced)

	d, _ = Lookup(92)
	assert.Len(t, d.Args, 9)
	d, _ = Lookup(40)
	assert.Equal(t, "jmp_party_cond_link", d.NegativeName)
	assert.Equal(t, "complex", d.Args[1].Values[3])
}
