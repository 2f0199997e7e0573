package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEntry          = errors.New("at least one entry point is required")
	ErrEmptyEntryModules   = errors.New("entry point has no source modules")
	ErrInvalidRulePattern  = errors.New("invalid rule pattern")
	ErrDuplicateRule       = errors.New("duplicate rule pattern")
	ErrOverlappingRules    = errors.New("rules match the same file extension")
	ErrEmptyLoaderChain    = errors.New("rule has no loaders")
	ErrDuplicatePlugin     = errors.New("plugin may only be declared once")
	ErrMissingPlugin       = errors.New("required plugin is missing")
	ErrForbiddenPlugin     = errors.New("plugin is not allowed for profile")
	ErrInvalidBundleSplit  = errors.New("invalid bundle split")
	ErrRuntimeSplitIsEntry = errors.New("runtime split shares its name with an entry point")
	ErrInjectedStyles      = errors.New("style rule injects styles at runtime")
	ErrExtractedStyles     = errors.New("style rule extracts styles into a file")
	ErrHashedFilename      = errors.New("filename contains a content hash")
	ErrUnhashedFilename    = errors.New("filename has no content hash")
	ErrMissingDevServer    = errors.New("dev server is required")
	ErrUnexpectedDevServer = errors.New("dev server is not allowed")
	ErrInvalidDevServer    = errors.New("invalid dev server")
	ErrInvalidDevtool      = errors.New("invalid devtool")
)
