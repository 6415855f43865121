package constants

const (
	AppName = "faltula"
	Version = "v0.1.0"

	DefaultConfigPath = "~/.config/faltula/faltula.json"
	ProfilesFileName  = "profiles.json"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"
)

// SubjectPalette is the fixed set of colors handed out to new subjects.
// Assignment is round-robin based on the registry size at creation time.
var SubjectPalette = []string{
	"#8B5CF6", "#06B6D4", "#10B981", "#F59E0B", "#EF4444",
	"#EC4899", "#8B5A2B", "#6366F1", "#84CC16", "#F97316",
}
