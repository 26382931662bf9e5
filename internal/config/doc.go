// Package config loads and validates the tally configuration file.
//
// Configuration is a small YAML document:
//
//	precision: 2
//	log:
//	  level: info
//	  format: text
//
// Loading is strict (unknown keys are rejected) and layered over
// defaults, so a partial file only overrides what it names. The decoded
// result is validated against a CUE schema, which gives range and enum
// checking without hand-written field checks.
package config
