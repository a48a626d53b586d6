package schema

// Studio describes how the document types are mounted in the hosted
// editing studio.
type Studio struct {
	Name        string   `json:"name" yaml:"name"`
	Title       string   `json:"title" yaml:"title"`
	ProjectID   string   `json:"projectId" yaml:"projectId"`
	Dataset     string   `json:"dataset" yaml:"dataset"`
	Plugins     []string `json:"plugins" yaml:"plugins"`
	AutoUpdates bool     `json:"autoUpdates" yaml:"autoUpdates"`
	Types       []string `json:"types" yaml:"types"`
}

// Studio plugin names.
const (
	PluginStructure = "structureTool"
	PluginVision    = "visionTool"
)

// DefaultStudio returns the wiring of the production studio.
func DefaultStudio() Studio {
	return Studio{
		Name:        "default",
		Title:       "Bend-the-trendd",
		ProjectID:   "f9rxg371",
		Dataset:     "production",
		Plugins:     []string{PluginStructure, PluginVision},
		AutoUpdates: true,
		Types:       Names(),
	}
}
