/*
Package operation implements the batch rename of pending request files.

	+-------------+
	|   Runner    |
	|  (Input)    |
	+------+------+
	       |
	+------+------+
	|   Renamer   |
	| (Core Loop) |
	+------+------+
	       |
	+------+------+
	|   Ledger    |
	|  (Status)   |
	+-------------+

🎯 Purpose:
- Turns an input (manifest or previous ledger) into store codes
- Renames REQCNTL.NEW to REQCNTL.dat on each store's data share
- Records one outcome per store and persists the failures

🔄 Flow:
1. Runner obtains store codes from its Input
2. Renamer visits each code in order: existence check, then rename
3. Each code ends as Renamed, SourceMissing or Failed
4. Codes that did not end Renamed are written to the ledger once, at the end

⚡ Guarantees:
- Codes are processed strictly in input order, one at a time
- The outcome of one code never affects another; there is no early abort
- Nothing escapes Run as an error; faults become outcomes or diagnostics
- The ledger is rewritten on every run, even when empty
- A ledger write failure is reported and does not undo any rename

🔍 Example:

	renamer, err := operation.New(operation.Options{
		FS:      share.OSFS{},
		Locator: share.NewLocator("", "", ""),
		Ledger:  status.NewLedger("failed_stores.txt"),
		Sink:    sink,
	})
	result := renamer.Run(ctx, codes)
*/
package operation
