// Package config loads the searchlab YAML configuration and hot-reloads it.
//
// A file looks like:
//
//	step_delay_ms: 250
//	node_count: 12
//	weighted: true
//	randomize_weights: false
//	seed: 42
//	algorithm: astar
//	start: 0
//	goal: 7
//	log_level: info
//
// Omitted keys take the values of Default. Loader re-reads the file when it
// changes and hands valid configurations to OnChange callbacks; an invalid
// rewrite is logged and the previous configuration stays current.
package config
