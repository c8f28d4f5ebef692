/*
Package config loads the optional reqcntl configuration file.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +-----------+-----------+-----------+
	      |           |                       |
	+-----+-----+ +---+-----+           +----+----+
	|   YAML    | |  JSON   |           |   HCL   |
	+-----------+ +---------+           +---------+

🎯 Purpose:
- Decides where manifests are looked for and which files never count as one
- Describes the per-store share: root template, pending and active file names
- Names the failure ledger

🔄 Flow:
1. Picks a decoder from the file extension
2. Decodes with unknown fields rejected
3. Validates and fills defaults

Every field is optional. Without a config file the defaults reproduce the
classic layout: manifests are *.txt in the working directory, shares live at
\\<store>\c$\Chainlnk\data and failures go to failed_stores.txt.

🔍 Example (.reqcntl.yaml):

	manifest:
	  pattern: "*.txt"
	  exclude: ["README.txt"]
	share:
	  root: '\\{store}\c$\Chainlnk\data'
	  source: REQCNTL.NEW
	  target: REQCNTL.dat
	ledger: failed_stores.txt

🔍 Example (.reqcntl.hcl):

	manifest {
	  pattern = "*.txt"
	}
	share {
	  root = "\\\\{store}\\c$\\Chainlnk\\data"
	}
	ledger = "failed_stores.txt"
*/
package config
