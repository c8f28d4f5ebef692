/*
Package status tracks per-store outcomes of a rename batch and persists the
failure ledger.

	            +-------------+
	            |   Status    |
	            |  (Outcomes) |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	|  Ledger   |           | Report  |
	|  (File)   |           | (UI/UX) |
	+-----------+           +---------+

🎯 Purpose:
- Names the three terminal outcomes of a store: renamed, source missing, failed
- Writes the failure ledger, one store code per line, replacing the previous run
- Formats outcomes and progress for the console

🔄 Flow:
1. The renamer records an Outcome per store code
2. The failed and missing codes are handed to a Ledger once the batch is done
3. A Reporter prints the per-store lines and the final tally

📝 Notes:
The ledger is always rewritten, even when nothing failed, so a stale ledger
from an earlier run never survives. Writes go through a temp file and a rename
in the same directory.

🔍 Example:

	ledger := status.NewLedger("failed_stores.txt")
	err := ledger.Write(ctx, []string{"00007D101"})

	reporter := status.NewReporter(os.Stdout)
	reporter.Summary(renamed, missing, failed, ledger.Path(), nil)
*/
package status
