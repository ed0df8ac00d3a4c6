// Package token holds the catalog of known random map script words: their
// argument signatures and the contexts they may legally appear in.
package token

// ArgType is the expected type of a single token argument.
type ArgType uint8

const (
	// ArgNone marks an unused argument slot.
	ArgNone ArgType = iota
	// ArgWord is a literal string without spaces.
	ArgWord
	// ArgNumber is a numeric argument.
	ArgNumber
	// ArgToken is a token with a value, declared with #const.
	ArgToken
	// ArgOptionalToken is a possibly-defined token, declared with #define.
	ArgOptionalToken
	// ArgFilename is a file name argument.
	ArgFilename
)

func (a ArgType) String() string {
	switch a {
	case ArgWord:
		return "Word"
	case ArgNumber:
		return "Number"
	case ArgToken:
		return "Token"
	case ArgOptionalToken:
		return "OptionalToken"
	case ArgFilename:
		return "Filename"
	}
	return "None"
}

// ContextKind identifies where a token can appear.
type ContextKind uint8

const (
	// CtxFlow is a flow control token that can appear just about anywhere.
	CtxFlow ContextKind = iota
	// CtxSection is a <SECTION> header, top level only.
	CtxSection
	// CtxCommand is a top-level command with braces.
	CtxCommand
	// CtxTopLevelAttribute is an attribute at the top level.
	CtxTopLevelAttribute
	// CtxAttribute is an attribute inside a command block.
	CtxAttribute
	// CtxAnyOf allows several alternative contexts.
	CtxAnyOf
)

// Context describes where a token may legally appear. Scope restricts the
// placement further: the <SECTION> name for commands and top-level
// attributes, the parent command name for attributes. An empty Scope means
// any section or parent is allowed.
type Context struct {
	Kind         ContextKind
	Scope        string
	Alternatives []Context
}

func flow() Context            { return Context{Kind: CtxFlow} }
func section() Context         { return Context{Kind: CtxSection} }
func command(s string) Context { return Context{Kind: CtxCommand, Scope: s} }
func topAttr(s string) Context { return Context{Kind: CtxTopLevelAttribute, Scope: s} }
func attr(parent string) Context {
	return Context{Kind: CtxAttribute, Scope: parent}
}
func anyOf(cs ...Context) Context {
	return Context{Kind: CtxAnyOf, Alternatives: cs}
}

// Type describes a known token.
type Type struct {
	// Name as it appears in source code.
	Name string
	// Context describes where the token may appear.
	Context Context
	// ArgTypes are the token's argument types; unused slots are ArgNone.
	ArgTypes [4]ArgType
}

// ArgType returns the type of the n'th argument, or ArgNone when out of
// range.
func (t *Type) ArgType(n int) ArgType {
	if n < 0 || n >= len(t.ArgTypes) {
		return ArgNone
	}
	return t.ArgTypes[n]
}

// ArgLen returns the number of arguments the token requires.
func (t *Type) ArgLen() int {
	for i, a := range t.ArgTypes {
		if a == ArgNone {
			return i
		}
	}
	return len(t.ArgTypes)
}

var catalog = map[string]*Type{}

func def(name string, ctx Context, args ...ArgType) {
	t := &Type{Name: name, Context: ctx}
	copy(t.ArgTypes[:], args)
	catalog[name] = t
}

// Lookup finds a token type by its exact name.
func Lookup(name string) (*Type, bool) {
	t, ok := catalog[name]
	return t, ok
}

// All returns the catalog keyed by token name. Callers must not modify it.
func All() map[string]*Type {
	return catalog
}

func init() {
	def("#define", flow(), ArgWord)
	def("#undefine", flow(), ArgWord)
	def("#const", flow(), ArgWord, ArgNumber)

	def("if", flow(), ArgOptionalToken)
	def("elseif", flow(), ArgOptionalToken)
	def("else", flow())
	def("endif", flow())

	def("start_random", flow())
	def("percent_chance", flow(), ArgNumber)
	def("end_random", flow())

	def("#include", flow(), ArgFilename)
	def("#include_drs", flow(), ArgFilename, ArgNumber)

	def("<PLAYER_SETUP>", section())
	def("<LAND_GENERATION>", section())
	def("<ELEVATION_GENERATION>", section())
	def("<TERRAIN_GENERATION>", section())
	def("<CLIFF_GENERATION>", section())
	def("<OBJECTS_GENERATION>", section())
	def("<CONNECTION_GENERATION>", section())

	def("color_correction", topAttr(""), ArgToken)
	def("ai_info_map_type", topAttr("<PLAYER_SETUP>"), ArgToken, ArgNumber, ArgNumber, ArgNumber)
	def("random_placement", topAttr("<PLAYER_SETUP>"))
	def("direct_placement", topAttr("<PLAYER_SETUP>"))
	def("circle_placement", topAttr("<PLAYER_SETUP>"))
	def("circle_radius", topAttr("<PLAYER_SETUP>"), ArgNumber)
	def("nomad_resources", topAttr("<PLAYER_SETUP>"))
	def("grouped_by_team", topAttr("<PLAYER_SETUP>"))
	def("terrain_state", topAttr("<PLAYER_SETUP>"), ArgNumber, ArgNumber, ArgNumber, ArgNumber)
	def("weather_type", topAttr("<PLAYER_SETUP>"), ArgNumber, ArgNumber, ArgNumber, ArgNumber)
	def("guard_state", topAttr("<PLAYER_SETUP>"), ArgToken, ArgToken, ArgNumber, ArgNumber)
	def("enable_waves", topAttr("<PLAYER_SETUP>"), ArgNumber)
	def("terrain_mask", topAttr("<PLAYER_SETUP>"), ArgNumber)

	landAttr := anyOf(
		attr("create_land"),
		attr("create_player_lands"),
	)

	def("create_land", command("<LAND_GENERATION>"))
	def("create_player_lands", command("<LAND_GENERATION>"))
	def("land_percent", landAttr, ArgNumber)
	def("land_position", landAttr, ArgNumber, ArgNumber)
	def("land_id", landAttr, ArgNumber)
	def("terrain_type", anyOf(
		attr("create_land"),
		attr("create_player_lands"),
		attr("create_terrain"),
	), ArgToken)
	def("base_size", landAttr, ArgNumber)
	def("base_elevation", landAttr, ArgNumber)
	def("left_border", landAttr, ArgNumber)
	def("right_border", landAttr, ArgNumber)
	def("top_border", landAttr, ArgNumber)
	def("bottom_border", landAttr, ArgNumber)
	def("border_fuzziness", landAttr, ArgNumber)
	def("zone", landAttr, ArgNumber)
	def("set_zone_by_team", landAttr)
	def("set_zone_randomly", landAttr)
	def("other_zone_avoidance_distance", landAttr, ArgNumber)
	def("assign_to_player", attr("create_land"), ArgNumber)
	def("assign_to", attr("create_land"), ArgToken, ArgNumber, ArgNumber, ArgNumber)

	def("base_terrain", anyOf(
		topAttr("<LAND_GENERATION>"),
		attr("create_land"),
		attr("create_player_lands"),
		attr("create_elevation"),
		attr("create_terrain"),
		attr("create_object"),
	), ArgToken)

	def("min_number_of_cliffs", topAttr("<CLIFF_GENERATION>"), ArgNumber)
	def("max_number_of_cliffs", topAttr("<CLIFF_GENERATION>"), ArgNumber)
	def("min_length_of_cliff", topAttr("<CLIFF_GENERATION>"), ArgNumber)
	def("max_length_of_cliff", topAttr("<CLIFF_GENERATION>"), ArgNumber)
	def("cliff_curliness", topAttr("<CLIFF_GENERATION>"), ArgNumber)
	def("min_distance_cliffs", topAttr("<CLIFF_GENERATION>"), ArgNumber)
	def("min_terrain_distance", topAttr("<CLIFF_GENERATION>"), ArgNumber)

	def("create_terrain", command("<TERRAIN_GENERATION>"), ArgToken)
	def("percent_of_land", attr("create_terrain"), ArgNumber)
	def("number_of_tiles", anyOf(
		attr("create_terrain"),
		attr("create_elevation"),
	), ArgNumber)
	def("number_of_clumps", anyOf(
		attr("create_terrain"),
		attr("create_elevation"),
	), ArgNumber)
	def("set_scale_by_groups", anyOf(
		attr("create_terrain"),
		attr("create_elevation"),
	))
	def("set_scale_by_size", anyOf(
		attr("create_terrain"),
		attr("create_elevation"),
	))
	def("spacing_to_other_terrain_types", attr("create_terrain"), ArgNumber)
	def("height_limits", attr("create_terrain"), ArgNumber, ArgNumber)
	def("set_flat_terrain_only", attr("create_terrain"))
	def("set_avoid_player_start_areas", attr("create_terrain"))
	def("clumping_factor", attr("create_terrain"), ArgNumber)
	def("base_layer", attr("create_terrain"), ArgToken)

	def("create_object", command("<OBJECTS_GENERATION>"), ArgToken)
	objAttr := attr("create_object")
	def("set_scaling_to_map_size", objAttr)
	def("set_scaling_to_player_number", objAttr)
	def("number_of_groups", objAttr, ArgNumber)
	def("number_of_objects", objAttr, ArgNumber)
	def("group_variance", objAttr, ArgNumber)
	def("group_placement_radius", objAttr, ArgNumber)
	def("set_loose_grouping", objAttr)
	def("set_tight_grouping", objAttr)
	def("terrain_to_place_on", objAttr, ArgToken)
	def("layer_to_place_on", objAttr, ArgToken)
	def("set_gaia_object_only", objAttr)
	def("set_place_for_every_player", objAttr)
	def("place_on_specific_land_id", objAttr, ArgNumber)
	def("min_distance_to_players", objAttr, ArgNumber)
	def("max_distance_to_players", objAttr, ArgNumber)
	def("max_distance_to_other_zones", objAttr, ArgNumber)
	def("min_distance_group_placement", objAttr, ArgNumber)
	def("temp_min_distance_group_placement", objAttr, ArgNumber)
	def("resource_delta", objAttr, ArgNumber)
	def("avoid_forest_zone", objAttr, ArgNumber)
	def("place_on_forest_zone", objAttr)
	def("avoid_cliff_zone", objAttr, ArgNumber)
	def("actor_area", objAttr, ArgNumber)
	def("actor_area_radius", objAttr, ArgNumber)
	def("actor_area_to_place_in", objAttr, ArgNumber)
	def("avoid_actor_area", objAttr, ArgNumber)
	def("avoid_all_actor_areas", objAttr)
	def("force_placement", objAttr)
	def("find_closest", objAttr)
	def("second_object", objAttr, ArgToken)

	connectAttr := anyOf(
		attr("create_connect_all_players_land"),
		attr("create_connect_teams_land"),
		attr("create_connect_same_land_zones"),
		attr("create_connect_all_lands"),
	)

	def("create_connect_all_players_land", command("<CONNECTION_GENERATION>"))
	def("create_connect_teams_lands", command("<CONNECTION_GENERATION>"))
	def("create_connect_same_land_zones", command("<CONNECTION_GENERATION>"))
	def("create_connect_all_lands", command("<CONNECTION_GENERATION>"))
	def("create_connect_to_nonplayer_land", command("<CONNECTION_GENERATION>"))
	def("replace_terrain", connectAttr, ArgToken, ArgToken)
	def("terrain_cost", connectAttr, ArgToken, ArgNumber)
	def("terrain_size", connectAttr, ArgToken, ArgNumber, ArgNumber)
	def("default_terrain_replacement", connectAttr, ArgToken)

	def("create_elevation", command("<ELEVATION_GENERATION>"), ArgNumber)
	def("spacing", attr("create_elevation"), ArgNumber)
	def("enable_balanced_elevation", attr("create_elevation"))

	// effect_amount and effect_percent also appear as <PLAYER_SETUP>
	// top-level attributes; the command form is the one the game documents,
	// so it wins here.
	def("effect_amount", command("<PLAYER_SETUP>"), ArgToken, ArgToken, ArgToken, ArgNumber)
	def("effect_percent", command("<PLAYER_SETUP>"), ArgToken, ArgToken, ArgToken, ArgNumber)
}
