// Package filament describes the filaments a project uses and loads them
// from a YAML project file.
//
// A project file looks like:
//
//	name: benchy-multicolor
//	filaments:
//	  - name: Generic PLA
//	    type: PLA
//	    color: "#e03c31"
//	    usage_grams: 12.4
//	  - index: 1
//	    name: Generic PETG
//	    type: PETG
//
// A missing index defaults to the filament's position in the list. Only
// the order and count of descriptors matter to the assignment engine; the
// remaining fields exist for display.
package filament
