package lint

// Flag descriptions for the lint command.
const (
	flagDescTargetVersion = "release the system is upgraded to (e.g., 8.10, 9.2)"
	flagDescFlavour       = "upgrade flavour (default|saphana)"
	flagDescArch          = "architecture of the upgraded system (defaults to the host architecture)"
	flagDescFacts         = "path to the YAML or JSON facts document collected on the system"
	flagDescAnswerFile    = "path to the TOML answer file holding confirmations"
	flagDescInteractive   = "ask unanswered confirmations on the terminal"
	flagDescOutput        = "output format (table|json|yaml)"
	flagDescFailInhibitor = "exit with error if inhibiting findings are detected"
	flagDescFailAdvisory  = "exit with error if advisory findings are detected"
	flagDescVerbose       = "show report details and progress information"
	flagDescDebug         = "show detailed diagnostic logs for troubleshooting"
	flagDescTimeout       = "operation timeout (e.g., 1m, 5m)"
	flagDescConfig        = "path to a YAML or TOML file with default flag values"
)

const flagDescChecks = `check selector patterns (glob patterns or groups):
  - '*'             : all checks
  - 'platform'      : all platform checks
  - 'application.*' : all application checks
  - '*saphana*'     : all checks with 'saphana' in ID
  - 'exact.id'      : exact check ID
Can be specified multiple times`

// Upgrade flavours.
const (
	FlavourDefault = "default"
	FlavourSAPHana = "saphana"
)
