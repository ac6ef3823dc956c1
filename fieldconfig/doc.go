// Package fieldconfig holds the configuration of an external URL field.
//
// A Config has four slots. Two are component maps and two are scalars:
//
//	defaultparts     component map  values used for missing URL components
//	removeparts      component map  components stripped before storing
//	html5validation  scalar         whether browsers validate the input
//	validregex       scalar         pattern a value must match on submit
//
// Setting a component map slot merges the new entries into the existing map;
// setting a scalar slot replaces it. The kind of each slot is fixed by the
// schema (see Slot.Kind), not inferred from the value.
//
//	cfg := fieldconfig.Default()
//	cfg.MustSet("removeparts", map[string]bool{"query": true, "fragment": true})
//	// user and pass stay removed, query and fragment are now removed too
//
// Configuration can also be read from YAML with LoadFile and overridden from
// the environment with ApplyEnv:
//
//	defaultparts:
//	  scheme: http
//	removeparts:
//	  query: true
//	html5validation: false
//
// Passing a non-mapping value to a component map slot is a programming error
// and is reported as ErrNotMapping.
package fieldconfig
