package config

const SourceFileExt = ".cml"

// SourceFileExtensions are all recognized source file extensions
var SourceFileExtensions = []string{".cml", ".ml"}

// REPL prompts
const (
	ReplPrompt             = "> "
	ReplContinuationPrompt = "  "
)

// ConfigFileName is looked up in the working directory when no explicit
// config path is given.
const ConfigFileName = "camlet.yaml"
