// Package library parses and validates JSON action libraries into
// goap.Action slices. The document shape and validation order mirror the
// reference C planner's goap_parse_json: an "actions" array of objects
// each carrying a string name, a numeric cost, and preConditions /
// postConditions objects of boolean predicates.
package library
