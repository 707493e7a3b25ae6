package gtkcss

// BuildResult contains build stats
type BuildResult struct {
	Output              string // Where the stylesheet was written ("-" for stdout)
	FilesRead           int
	ContentFilesScanned int
	Candidates          int // Distinct class name candidates found in content
	Before              Stats
	After               Stats
	DeclarationsDropped int // Removed by disabled core plugins
	RulesPruned         int // Removed because their classes are unused
	PropertiesInlined   int // Custom properties resolved by the gtk plugin
	Plugins             []string
	Warnings            []string
}
