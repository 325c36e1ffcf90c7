package cli

// Command descriptions
const (
	MsgRootShort = "Convert a Mod Organizer load order into a LOOT userlist"
	MsgRootLong  = `lootifier reads a Mod Organizer load order (loadorder.txt) and writes a LOOT
userlist (userlist.yaml) that pins that order: every plugin is placed after
the one before it and gets a group of its own.

Blank lines and lines starting with '#' or '/' are skipped. The masterlist
is emptied afterwards so LOOT sorts by the userlist alone.`
	MsgRootExample = `  # Convert ./loadorder.txt into ./userlist.yaml
  lootifier

  # Explicit paths
  lootifier -i profiles/Default/loadorder.txt -o userlist.yaml -m masterlist.yaml

  # Read from a pipe and only show the result
  cat loadorder.txt | lootifier -i - --dry-run`

	MsgVersionShort    = "Print version information"
	MsgManShort        = "Generate man pages into a directory"
	MsgConfigShort     = "Inspect and create lootifier configuration"
	MsgConfigShowShort = "Print the effective configuration"
	MsgConfigInitShort = "Write the default configuration file"
)

// Flag descriptions
const (
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig     = "Config file (default ./lootifier.toml)"
	MsgFlagInput      = "Input Mod Organizer load order, '-' for stdin"
	MsgFlagOutput     = "Output LOOT userlist"
	MsgFlagMasterlist = "Masterlist path, cleared if it exists"
	MsgFlagNoClear    = "Leave the masterlist untouched"
	MsgFlagPrint      = "Echo the generated userlist to stdout"
	MsgFlagDryRun     = "Generate and print without writing any file"
	MsgFlagFormat     = "Message and help topic style: auto, term or text"
	MsgFlagForce      = "Overwrite an existing file"
)

// Error messages
const (
	MsgErrInvalidFormat = "invalid --format: %w"
	MsgErrManDir        = "failed to create man directory: %w"
)
