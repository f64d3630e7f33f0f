// Package jobconfig serializes a committed filament mapping into the
// print-job configuration and reads it back.
//
// The file records, for every project filament, the printer slot it was
// mapped to, together with the slot count and the slots that were still
// shared when the mapping was committed:
//
//	version: "1"
//	printer: Prusa XL 5T
//	slot_count: 5
//	entries:
//	  - filament: 0
//	    name: Generic PLA
//	    slot: 1
//	  - filament: 1
//	    name: Generic PETG
//	    slot: 1
//	conflicts: [1]
//
// Reading a file back yields slot values in entry order, which a session
// feeds to mapping.Store.SetMapping to resume where it left off.
package jobconfig
