package opcode

import "sort"

// Arg describes one argument of an opcode. Values maps raw values to
// symbolic names. A negative value is negated and followed by
// NegativeSuffix when the suffix is set.
type Arg struct {
	Name           string
	Values         map[int]string
	StringRef      bool
	NegativeSuffix string
}

// Def is the static description of one opcode. NegativeName is used when
// the command or its ecodes index is negative.
type Def struct {
	Name         string
	NegativeName string
	ForceEcodes  bool
	Args         []Arg
}

var partyConditionNames = map[int]string{
	0: "torch", 1: "waterworld", 2: "ogre_dragon_hide", 3: "detect_secret",
	4: "wizard_eye", 5: "search", 6: "free_fall_levitate", 7: "sentry",
	8: "charm_resist",
}

var charConditionNames = map[int]string{
	0: "run_away", 1: "helpless", 2: "tangled", 3: "cursed", 4: "magic_aura",
	5: "stupid", 6: "slow", 7: "shield_from_hits", 8: "shield_from_proj",
	9: "poisoned", 10: "regenerating", 11: "fire_protection",
	12: "cold_protection", 13: "electrical_protection",
	14: "chemical_protection", 15: "mental_protection",
	16: "1st_level_protection", 17: "2nd_level_protection",
	18: "3rd_level_protection", 19: "4th_level_protection",
	20: "5th_level_protection", 21: "strong", 22: "protection_from_evil",
	23: "speedy", 24: "invisible", 25: "animated", 26: "stoned", 27: "blind",
	28: "diseased", 29: "confused", 30: "reflecting_spells",
	31: "reflecting_attacks", 32: "attack_bonus", 33: "absorbing_energy",
	34: "energy_drain", 35: "absorbing_energy_from_attacks",
	36: "hindered_attack", 37: "hindered_defense", 38: "defense_bonus",
	39: "silenced",
}

var optionTargetNames = map[int]string{
	0: "back_up", 1: "xap", 2: "simple", 3: "complex", 4: "eliminate",
}

var jumpTargetNames = map[int]string{0: "xap", 1: "simple", 2: "complex"}

var jumpOrExitNames = map[int]string{1: "jump", 2: "exit_ap", -2: "exit_ap_delete"}

// table is keyed by opcode id. Ids 79, 80, 109, 110 and 113-118 are unused.
var table = map[int]Def{
	1: {"string", "", false, []Arg{
		{"", nil, true, "no_wait"},
	}},

	2: {"battle", "", false, []Arg{
		{"low", nil, false, "surprise"},
		{"high", nil, false, "surprise"},
		{"sound_or_lose_xap", nil, false, ""},
		{"string", nil, true, ""},
		{"treasure_mode", map[int]string{0: "all", 5: "no_enemy", 10: "xap_on_lose"}, false, ""},
	}},

	3: {"option", "option_link", false, []Arg{
		{"continue_option", map[int]string{1: "yes", 2: "no"}, false, ""},
		{"target_type", optionTargetNames, false, ""},
		{"target", nil, false, ""},
		{"left_prompt", nil, true, ""},
		{"right_prompt", nil, true, ""},
	}},

	4: {"simple_enc", "", false, []Arg{
		{"", nil, false, ""},
	}},

	5: {"complex_enc", "", false, []Arg{
		{"", nil, false, ""},
	}},

	6: {"shop", "", false, []Arg{
		{"", nil, false, "auto_enter"},
	}},

	7: {"modify_ap", "", false, []Arg{
		{"level", map[int]string{-2: "simple", -3: "complex"}, false, ""},
		{"id", nil, false, ""},
		{"source_xap", nil, false, ""},
		{"level_type", map[int]string{0: "same", 1: "land", 2: "dungeon"}, false, ""},
		{"result_code", nil, false, ""},
	}},

	8: {"use_ap", "", false, []Arg{
		{"level", nil, false, ""},
		{"id", nil, false, ""},
	}},

	9: {"sound", "", false, []Arg{
		{"", nil, false, "pause"},
	}},

	10: {"treasure", "", false, []Arg{
		{"", nil, false, ""},
	}},

	11: {"victory_points", "", false, []Arg{
		{"", nil, false, ""},
	}},

	12: {"change_tile", "", false, []Arg{
		{"level", nil, false, ""},
		{"x", nil, false, ""},
		{"y", nil, false, ""},
		{"new_tile", nil, false, ""},
		{"level_type", map[int]string{0: "land", 1: "dungeon"}, false, ""},
	}},

	13: {"enable_ap", "", false, []Arg{
		{"level", nil, false, ""},
		{"id", nil, false, ""},
		{"percent_chance", nil, false, ""},
		{"low", nil, false, "dungeon"},
		{"high", nil, false, "dungeon"},
	}},

	14: {"pick_chars", "", false, []Arg{
		{"", nil, false, "only_conscious"},
	}},

	15: {"heal_picked", "", false, []Arg{
		{"mult", nil, false, ""},
		{"low_range", nil, false, ""},
		{"high_range", nil, false, ""},
		{"sound", nil, false, ""},
		{"string", nil, true, ""},
	}},

	16: {"heal_party", "", false, []Arg{
		{"mult", nil, false, ""},
		{"low_range", nil, false, ""},
		{"high_range", nil, false, ""},
		{"sound", nil, false, ""},
		{"string", nil, true, ""},
	}},

	17: {"spell_picked", "", false, []Arg{
		{"spell", nil, false, ""},
		{"power", nil, false, ""},
		{"drv_modifier", nil, false, ""},
		{"can_drv", map[int]string{0: "yes", 1: "no"}, false, ""},
	}},

	18: {"spell_party", "", false, []Arg{
		{"spell", nil, false, ""},
		{"power", nil, false, ""},
		{"drv_modifier", nil, false, ""},
		{"can_drv", map[int]string{0: "yes", 1: "no"}, false, ""},
	}},

	19: {"rand_string", "", false, []Arg{
		{"low", nil, true, ""},
		{"high", nil, true, ""},
	}},

	20: {"tele_and_run", "", false, []Arg{
		{"level", map[int]string{-1: "same"}, false, ""},
		{"x", map[int]string{-1: "same"}, false, ""},
		{"y", map[int]string{-1: "same"}, false, ""},
		{"sound", nil, false, ""},
		{"string", nil, true, ""},
	}},

	21: {"jmp_if_item", "jmp_if_item_link", false, []Arg{
		{"item", nil, false, ""},
		{"target_type", jumpTargetNames, false, ""},
		{"nonposs_action", map[int]string{0: "jump_other", 1: "continue", 2: "string_exit"}, false, ""},
		{"target", nil, false, ""},
		{"other_target", nil, false, ""},
	}},

	22: {"change_item", "", false, []Arg{
		{"item", nil, false, ""},
		{"num", nil, false, ""},
		{"action", map[int]string{1: "drop", 2: "charge", 3: "change_type"}, false, ""},
		{"charges", nil, false, ""},
		{"new_item", nil, false, ""},
	}},

	23: {"change_rect", "change_rect_dungeon", false, []Arg{
		{"level", nil, false, ""},
		{"id", nil, false, ""},
		{"times_in_10k", nil, false, ""},
		{"new_battle_low", map[int]string{-1: "same"}, false, ""},
		{"new_battle_high", map[int]string{-1: "same"}, false, ""},
	}},

	24: {"exit_ap", "", false, nil},

	25: {"exit_ap_delete", "", false, nil},

	26: {"mouse_click", "", false, nil},

	27: {"picture", "", false, []Arg{
		{"", nil, false, ""},
	}},

	28: {"redraw", "", false, nil},

	29: {"give_map", "", false, []Arg{
		{"", nil, false, "auto_show"},
	}},

	30: {"pick_ability", "", false, []Arg{
		{"ability", nil, false, "choose_failure"},
		{"success_mod", nil, false, ""},
		{"who", map[int]string{0: "picked", 1: "all", 2: "alive"}, false, ""},
		{"what", map[int]string{0: "special", 1: "attribute"}, false, ""},
	}},

	31: {"jmp_ability", "jmp_ability_link", false, []Arg{
		{"ability", nil, false, "choose_failure"},
		{"success_mod", nil, false, ""},
		{"what", map[int]string{0: "special", 1: "attribute"}, false, ""},
		{"success_xap", nil, false, ""},
		{"failure_xap", nil, false, ""},
	}},

	32: {"temple", "", false, []Arg{
		{"inflation_percent", nil, false, ""},
	}},

	33: {"take_money", "", false, []Arg{
		{"", nil, false, "gems"},
		{"action", map[int]string{0: "cont_if_poss", 1: "cont_if_not_poss", 2: "force", -1: "jmp_back_if_not_poss"}, false, ""},
		{"target_type", jumpTargetNames, false, ""},
		{"target", nil, false, ""},
		{"code_index", nil, false, ""},
	}},

	34: {"break_enc", "", false, nil},

	35: {"simple_enc_del", "", false, []Arg{
		{"", nil, false, ""},
	}},

	36: {"stash_items", "", false, []Arg{
		{"", map[int]string{0: "restore", 1: "stash"}, false, ""},
	}},

	37: {"set_dungeon", "", false, []Arg{
		{"", map[int]string{0: "dungeon", 1: "land"}, false, ""},
		{"level", nil, false, ""},
		{"x", nil, false, ""},
		{"y", nil, false, ""},
		{"dir", map[int]string{1: "north", 2: "east", 3: "south", 4: "west"}, false, ""},
	}},

	38: {"jmp_if_item_enc", "", false, []Arg{
		{"item", nil, false, ""},
		{"continue", map[int]string{0: "if_poss", 1: "if_not_poss"}, false, ""},
		{"target_type", jumpTargetNames, false, ""},
		{"target", nil, false, ""},
		{"code_index", nil, false, ""},
	}},

	39: {"jmp_xap", "", false, []Arg{
		{"", nil, false, ""},
	}},

	40: {"jmp_party_cond", "jmp_party_cond_link", false, []Arg{
		{"jmp_cond", map[int]string{1: "if_exists", 2: "if_not_exists"}, false, ""},
		{"target_type", map[int]string{0: "none", 1: "xap", 2: "simple", 3: "complex"}, false, ""},
		{"target", nil, false, ""},
		{"condition", partyConditionNames, false, ""},
	}},

	41: {"simple_enc_del_any", "", false, []Arg{
		{"", nil, false, ""},
		{"choice", nil, false, ""},
	}},

	42: {"jmp_random", "jmp_random_link", false, []Arg{
		{"percent_chance", nil, false, ""},
		{"action", jumpOrExitNames, false, ""},
		{"target_type", jumpTargetNames, false, ""},
		{"target", nil, false, ""},
		{"code_index", nil, false, ""},
	}},

	43: {"give_cond", "", false, []Arg{
		{"who", map[int]string{0: "all", 1: "picked", 2: "alive"}, false, ""},
		{"condition", charConditionNames, false, ""},
		{"duration", nil, false, ""},
		{"sound", nil, false, ""},
	}},

	44: {"complex_enc_del", "", false, []Arg{
		{"", nil, false, ""},
	}},

	45: {"tele", "", false, []Arg{
		{"level", map[int]string{-1: "same"}, false, ""},
		{"x", map[int]string{-1: "same"}, false, ""},
		{"y", map[int]string{-1: "same"}, false, ""},
		{"sound", nil, false, ""},
	}},

	46: {"jmp_quest", "jmp_quest_link", false, []Arg{
		{"", nil, false, ""},
		{"check", map[int]string{0: "set", 1: "not_set"}, false, ""},
		{"target_type", jumpTargetNames, false, ""},
		{"target", nil, false, ""},
		{"code_index", nil, true, ""},
	}},

	47: {"set_quest", "", false, []Arg{
		{"", nil, false, "clear"},
	}},

	48: {"pick_battle", "", false, []Arg{
		{"low", nil, false, ""},
		{"high", nil, false, ""},
		{"sound", nil, false, ""},
		{"string", nil, true, ""},
		{"treasure", nil, false, ""},
	}},

	49: {"bank", "", false, nil},

	50: {"pick_attribute", "", false, []Arg{
		{"type", map[int]string{0: "race", 1: "gender", 2: "caste", 3: "rase_class", 4: "caste_class"}, false, ""},
		{"gender", map[int]string{1: "male", 2: "female"}, false, ""},
		{"race_caste", nil, false, ""},
		{"race_caste_class", nil, false, ""},
		{"who", map[int]string{0: "all", 1: "alive"}, false, ""},
	}},

	51: {"change_shop", "", false, []Arg{
		{"", nil, false, ""},
		{"inflation_percent_change", nil, false, ""},
		{"item_id", nil, false, ""},
		{"item_count", nil, false, ""},
	}},

	52: {"pick_misc", "", false, []Arg{
		{"type", map[int]string{0: "move", 1: "position", 2: "item_poss", 3: "pct_chance", 4: "save_vs_attr", 5: "save_vs_spell_type", 6: "currently_selected", 7: "item_equipped", 8: "party_position"}, false, ""},
		{"parameter", nil, false, ""},
		{"who", map[int]string{0: "all", 1: "alive", 2: "picked"}, false, ""},
	}},

	53: {"pick_caste", "", false, []Arg{
		{"caste", nil, false, ""},
		{"caste_type", map[int]string{1: "fighter", 2: "magical", 3: "monk_rogue"}, false, ""},
		{"who", map[int]string{0: "all", 1: "alive", 2: "picked"}, false, ""},
	}},

	54: {"change_time_enc", "", false, []Arg{
		{"", nil, false, ""},
		{"percent_chance", map[int]string{-1: "same"}, false, ""},
		{"new_day_incr", map[int]string{-1: "same"}, false, ""},
		{"reset_to_current", map[int]string{0: "no", 1: "yes"}, false, ""},
		{"days_to_next_instance", map[int]string{-1: "same"}, false, ""},
	}},

	55: {"jmp_picked", "jmp_picked_link", false, []Arg{
		{"pc_id", map[int]string{0: "any"}, false, ""},
		{"fail_action", map[int]string{0: "exit_ap", 1: "xap", 2: "string_exit"}, false, ""},
		{"unused", nil, false, ""},
		{"success_xap", nil, false, ""},
		{"failure_parameter", nil, false, ""},
	}},

	56: {"jmp_battle", "jmp_battle_link", false, []Arg{
		{"battle_low", nil, false, ""},
		{"battle_high", nil, false, ""},
		{"loss_xap", map[int]string{-1: "back_up"}, false, ""},
		{"sound", nil, false, ""},
		{"string", nil, true, ""},
	}},

	57: {"change_tileset", "", false, []Arg{
		{"new_tileset", nil, false, ""},
		{"dark", map[int]string{0: "no", 1: "yes"}, false, ""},
		{"level", nil, false, ""},
	}},

	58: {"jmp_difficulty", "jmp_difficulty_link", false, []Arg{
		{"difficulty", map[int]string{1: "novice", 2: "easy", 3: "normal", 4: "hard", 5: "veteran"}, false, ""},
		{"action", jumpOrExitNames, false, ""},
		{"target_type", jumpTargetNames, false, ""},
		{"target", nil, false, ""},
		{"code_index", nil, false, ""},
	}},

	59: {"jmp_tile", "jmp_tile_link", false, []Arg{
		{"tile", nil, false, ""},
		{"action", jumpOrExitNames, false, ""},
		{"target_type", jumpTargetNames, false, ""},
		{"target", nil, false, ""},
		{"code_index", nil, false, ""},
	}},

	60: {"drop_all_money", "", false, []Arg{
		{"type", map[int]string{1: "gold", 2: "gems", 3: "jewelry"}, false, ""},
		{"who", map[int]string{0: "all", 1: "picked"}, false, ""},
	}},

	61: {"incr_party_loc", "", false, []Arg{
		{"unused", nil, false, ""},
		{"x", nil, false, ""},
		{"y", nil, false, ""},
		{"move_type", map[int]string{0: "exact", 1: "random"}, false, ""},
	}},

	62: {"story", "", false, []Arg{
		{"", nil, false, ""},
	}},

	63: {"change_time", "", false, []Arg{
		{"base", map[int]string{1: "absolute", 2: "relative"}, false, ""},
		{"days", map[int]string{-1: "same"}, false, ""},
		{"hours", map[int]string{-1: "same"}, false, ""},
		{"minutes", map[int]string{-1: "same"}, false, ""},
	}},

	64: {"jmp_time", "jmp_time_link", false, []Arg{
		{"day", map[int]string{-1: "any"}, false, ""},
		{"hour", map[int]string{-1: "any"}, false, ""},
		{"unused", nil, false, ""},
		{"before_equal_xap", nil, false, ""},
		{"after_xap", nil, false, ""},
	}},

	65: {"give_rand_item", "", false, []Arg{
		{"count", nil, false, "random"},
		{"item_low", nil, false, ""},
		{"item_high", nil, false, ""},
	}},

	66: {"allow_camping", "", false, []Arg{
		{"", map[int]string{0: "enable", 1: "disable"}, false, ""},
	}},

	67: {"jmp_item_charge", "jmp_item_charge_link", false, []Arg{
		{"", nil, false, ""},
		{"target_type", jumpTargetNames, false, ""},
		{"min_charges", nil, false, ""},
		{"target_if_enough", map[int]string{-1: "continue"}, false, ""},
		{"target_if_not_enough", map[int]string{-1: "continue"}, false, ""},
	}},

	68: {"change_fatigue", "", false, []Arg{
		{"", map[int]string{1: "set_full", 2: "set_empty", 3: "modify"}, false, ""},
		{"factor_percent", nil, false, ""},
	}},

	69: {"change_casting_flags", "", false, []Arg{
		{"enable_char_casting", map[int]string{0: "yes", 1: "no"}, false, ""},
		{"enable_npc_casting", map[int]string{0: "yes", 1: "no"}, false, ""},
		{"enable_recharging", map[int]string{0: "yes", 1: "no"}, false, ""},
	}},

	70: {"save_restore_loc", "", true, []Arg{
		{"", map[int]string{1: "save", 2: "restore"}, false, ""},
	}},

	71: {"enable_coord_display", "", false, []Arg{
		{"", map[int]string{0: "enable", 1: "disable"}, false, ""},
	}},

	72: {"jmp_quest_range", "jmp_quest_range_link", false, []Arg{
		{"quest_low", nil, false, ""},
		{"quest_high", nil, false, ""},
		{"unused", nil, false, ""},
		{"target_type", jumpTargetNames, false, ""},
		{"target", nil, false, ""},
	}},

	73: {"shop_restrict", "", false, []Arg{
		{"", nil, false, "auto_enter"},
		{"item_low1", nil, false, ""},
		{"item_high1", nil, false, ""},
		{"item_low2", nil, false, ""},
		{"item_high2", nil, false, ""},
	}},

	74: {"give_spell_pts_picked", "", false, []Arg{
		{"mult", nil, false, ""},
		{"pts_low", nil, false, ""},
		{"pts_high", nil, false, ""},
	}},

	75: {"jmp_spell_pts", "jmp_spell_pts_link", false, []Arg{
		{"who", map[int]string{1: "picked", 2: "alive"}, false, ""},
		{"min_pts", nil, false, ""},
		{"fail_action", map[int]string{0: "continue", 1: "exit_ap"}, false, ""},
		{"target_type", jumpTargetNames, false, ""},
		{"target", nil, false, ""},
	}},

	76: {"incr_quest_value", "", false, []Arg{
		{"", nil, false, ""},
		{"incr", nil, false, ""},
		{"target_type", map[int]string{0: "none", 1: "xap", 2: "simple", 3: "complex"}, false, ""},
		{"jump_min_value", nil, false, ""},
		{"target", nil, false, ""},
	}},

	77: {"jmp_quest_value", "jmp_quest_value_link", false, []Arg{
		{"", nil, false, ""},
		{"value", nil, false, ""},
		{"target_type", jumpTargetNames, false, ""},
		{"target_less", map[int]string{0: "continue"}, false, ""},
		{"target_equal_greater", map[int]string{0: "continue"}, false, ""},
	}},

	78: {"jmp_tile_params", "jmp_tile_params_link", false, []Arg{
		{"attr", map[int]string{1: "shoreline", 2: "is_needs_boat", 3: "path", 4: "blocks_los", 5: "need_fly_float", 6: "special", 7: "tile_id"}, false, ""},
		{"tile_id", nil, false, ""},
		{"target_type", jumpTargetNames, false, ""},
		{"target_false", map[int]string{0: "continue"}, false, ""},
		{"target_true", map[int]string{0: "continue"}, false, ""},
	}},

	81: {"jmp_char_cond", "jmp_char_cond_link", false, []Arg{
		{"cond", nil, false, ""},
		{"who", map[int]string{-1: "picked", 0: "party"}, false, ""},
		{"fail_string", nil, true, ""},
		{"success_xap", nil, false, ""},
		{"failure_xap", nil, false, ""},
	}},

	82: {"enable_turning", "", false, nil},

	83: {"disable_turning", "", false, nil},

	84: {"check_scen_registered", "", false, nil},

	85: {"jmp_random_xap", "jmp_random_xap_link", false, []Arg{
		{"target_type", jumpTargetNames, false, ""},
		{"target_low", nil, false, ""},
		{"target_high", nil, false, ""},
		{"sound", nil, false, ""},
		{"string", nil, true, ""},
	}},

	86: {"jmp_misc", "jmp_misc_link", false, []Arg{
		{"", map[int]string{0: "caste_present", 1: "race_present", 2: "gender_present", 3: "in_boat", 4: "camping", 5: "caste_class_present", 6: "race_class_present", 7: "total_party_levels", 8: "picked_char_levels"}, false, ""},
		{"value", nil, false, "picked_only"},
		{"target_type", jumpTargetNames, false, ""},
		{"target_true", map[int]string{0: "continue"}, false, ""},
		{"target_false", map[int]string{0: "continue"}, false, ""},
	}},

	87: {"jmp_npc", "jmp_npc_link", false, []Arg{
		{"", nil, false, ""},
		{"target_type", jumpTargetNames, false, "picked_only"},
		{"fail_action", map[int]string{0: "jmp_other", 1: "continue", 2: "string_exit"}, false, ""},
		{"target", nil, false, ""},
		{"other_param", nil, false, ""},
	}},

	88: {"drop_npc", "", false, []Arg{
		{"", nil, false, ""},
	}},

	89: {"add_npc", "", false, []Arg{
		{"", nil, false, ""},
	}},

	90: {"take_victory_pts", "", false, []Arg{
		{"", nil, false, ""},
		{"who", map[int]string{0: "each", 1: "picked", 2: "total"}, false, ""},
	}},

	91: {"drop_all_items", "", false, nil},

	92: {"change_rect_size", "", false, []Arg{
		{"level", nil, false, ""},
		{"rect", nil, false, ""},
		{"level_type", map[int]string{0: "land", 1: "dungeon"}, false, ""},
		{"times_in_10k_mult", nil, false, ""},
		{"action", map[int]string{-1: "none", 0: "set_coords", 1: "offset", 2: "resize", 3: "warp"}, false, ""},
		{"left_h", nil, false, ""},
		{"right_v", nil, false, ""},
		{"top", nil, false, ""},
		{"bottom", nil, false, ""},
	}},

	93: {"enable_compass", "", false, nil},

	94: {"disable_compass", "", false, nil},

	95: {"change_dir", "", false, []Arg{
		{"", map[int]string{-1: "random", 1: "north", 2: "east", 3: "south", 4: "west"}, false, ""},
	}},

	96: {"disable_dungeon_map", "", false, nil},

	97: {"enable_dungeon_map", "", false, nil},

	98: {"require_registration", "", false, nil},

	99: {"get_registration", "", false, nil},

	100: {"end_battle", "", false, nil},

	101: {"back_up", "", false, nil},

	102: {"level_up_picked", "", false, nil},

	103: {"cont_boat_camping", "", false, []Arg{
		{"if_boat", map[int]string{1: "true", 2: "false"}, false, ""},
		{"if_camping", map[int]string{1: "true", 2: "false"}, false, ""},
		{"set_boat", map[int]string{1: "true", 2: "false"}, false, ""},
	}},

	104: {"enable_random_battles", "", false, []Arg{
		{"", map[int]string{0: "false", 1: "true"}, false, ""},
	}},

	105: {"enable_allies", "", false, []Arg{
		{"", map[int]string{1: "false", 2: "true"}, false, ""},
	}},

	106: {"set_dark_los", "", false, []Arg{
		{"dark", map[int]string{1: "false", 2: "true"}, false, ""},
		{"skip_if_dark_same", map[int]string{0: "false", 1: "true"}, false, ""},
		{"los", map[int]string{1: "true", 2: "false"}, false, ""},
		{"skip_if_los_same", map[int]string{0: "false", 1: "true"}, false, ""},
	}},

	107: {"pick_battle_2", "", false, []Arg{
		{"battle_low", nil, false, ""},
		{"battle_high", nil, false, ""},
		{"sound", nil, false, ""},
		{"loss_xap", nil, false, ""},
	}},

	108: {"change_picked", "", false, []Arg{
		{"what", map[int]string{1: "attacks_round", 2: "spells_round", 3: "movement", 4: "damage", 5: "spell_pts", 6: "hand_to_hand", 7: "stamina", 8: "armor_rating", 9: "to_hit", 10: "missile_adjust", 11: "magic_resistance", 12: "prestige"}, false, ""},
		{"count", nil, false, ""},
	}},

	111: {"ret", "", false, nil},

	112: {"pop", "", false, nil},

	119: {"revive_npc_after", "", false, nil},

	120: {"change_monster", "", false, []Arg{
		{"", map[int]string{1: "npc", 2: "monster"}, false, ""},
		{"", nil, false, ""},
		{"count", nil, false, ""},
		{"new_icon", nil, false, ""},
		{"new_traitor", map[int]string{-1: "same"}, false, ""},
	}},

	121: {"kill_lower_undead", "", false, nil},

	122: {"fumble_weapon", "", false, []Arg{
		{"string", nil, true, ""},
		{"sound", nil, false, ""},
	}},

	123: {"rout_monsters", "", false, []Arg{
		{"", nil, false, ""},
		{"", nil, false, ""},
		{"", nil, false, ""},
		{"", nil, false, ""},
		{"", nil, false, ""},
	}},

	124: {"summon_monsters", "", false, []Arg{
		{"type", map[int]string{0: "individual"}, false, ""},
		{"", nil, false, ""},
		{"count", nil, false, ""},
		{"sound", nil, false, ""},
	}},

	125: {"destroy_related", "", false, []Arg{
		{"", nil, false, ""},
		{"count", map[int]string{0: "all"}, false, ""},
		{"unused", nil, false, ""},
		{"unused", nil, false, ""},
		{"force", map[int]string{0: "false", 1: "true"}, false, ""},
	}},

	126: {"macro_criteria", "", false, []Arg{
		{"when", map[int]string{0: "round_number", 1: "percent_chance", 2: "flee_fail"}, false, ""},
		{"round_percent_chance", nil, false, ""},
		{"repeat", map[int]string{0: "none", 1: "each_round", 2: "jmp_random"}, false, ""},
		{"xap_low", nil, false, ""},
		{"xap_high", nil, false, ""},
	}},

	127: {"cont_monster_present", "", false, []Arg{
		{"", nil, false, ""},
	}},
}

// Lookup returns the definition of opcode id. The returned value shares
// its argument slices and maps with the table and must not be modified.
func Lookup(id int) (Def, bool) {
	d, ok := table[id]
	return d, ok
}

// IDs returns every defined opcode id in ascending order.
func IDs() []int {
	ids := make([]int, 0, len(table))
	for id := range table {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
