package cli

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Generate and inspect mixed line-ending test files"
	MsgGenerateShort   = "Write the nine mixed line-ending fixtures f1..f9"
	MsgVerifyShort     = "Check generated fixtures byte for byte"
	MsgDetectShort     = "Report the line-ending style of files"
	MsgNormalizeShort  = "Rewrite every line ending in files"
	MsgManifestShort   = "Print the fixture table as JSON, YAML, TOML or XML"
	MsgExplainShort    = "Explain the fixtures and how detection works"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	MsgRootLong = `eolmix writes a fixed set of small text files that mix CR, LF and CRLF
line endings, for testing line-ending detection and normalization code.

Running 'eolmix generate' with no arguments writes f1 through f9 into the
current directory.`

	MsgGenerateLong = `Generate writes f1 through f9 into DIR (default: output.dir from the
configuration, which is the current directory unless changed).

Each file holds Line1, Line2 and Line3, each followed by the separator
listed in 'eolmix help fixtures'. Existing files are overwritten. The first
filesystem error stops the run.`

	MsgGenerateExample = `  eolmix generate
  eolmix generate testdata/eol --parents
  eolmix generate --dry-run`

	MsgNormalizeExample = `  eolmix normalize --to lf f1 f2
  eolmix normalize --to crlf --backup notes.txt
  eolmix normalize --to auto f7`

	// Status messages
	MsgGenerated      = "Wrote %d fixtures to %s"
	MsgDryRunNotice   = "DRY RUN MODE - No files were written"
	MsgVerifyOK       = "All %d fixtures in %s match"
	MsgNormalized     = "Normalized %s to %s"
	MsgAlreadyNormal  = "%s already uses %s only"
	MsgStatusOK       = "ok"
	MsgStatusMismatch = "MISMATCH"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig   = "Config file (default: ./eolmix.toml or $XDG_CONFIG_HOME/eolmix/config.toml)"
	MsgFlagColor    = "Colour output: auto, always or never"
	MsgFlagSet      = "Override a configuration key, e.g. --set output.dir=testdata"
	MsgFlagDryRun   = "Show what would be written without touching the filesystem"
	MsgFlagParents  = "Create the output directory if it does not exist"
	MsgFlagTo       = "Target line ending: lf, crlf, cr, or auto for each file's detected style (default: normalize.target)"
	MsgFlagBackup   = "Keep the previous content as .~<name> (default: normalize.backup)"
	MsgFlagFormat   = "Manifest format: json, yaml, toml or xml (default: manifest.format)"
	MsgFlagOutput   = "Write the manifest to this file instead of stdout"
	MsgFlagShow     = "Also print each file with its line endings made visible"
	MsgFlagDefaults = "Print the built-in default configuration"
)
