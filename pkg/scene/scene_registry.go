package scene

import "fmt"

// Info describes one built-in scene for discovery by the CLI and web API
type Info struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

var builtins = []struct {
	info    Info
	builder func() *Scene
}{
	{Info{"default", "One plain mirror routing the beam into a single detector"}, NewDefaultScene},
	{Info{"splitter", "A beam splitter feeding two detectors from one source"}, NewSplitterScene},
	{Info{"grating", "A diffraction grating spreading three orders into three detectors"}, NewGratingScene},
}

// ListScenes returns the available built-in scenes in a stable order
func ListScenes() []Info {
	infos := make([]Info, 0, len(builtins))
	for _, b := range builtins {
		infos = append(infos, b.info)
	}
	return infos
}

// CreateScene builds a built-in scene by name
func CreateScene(name string) (*Scene, error) {
	for _, b := range builtins {
		if b.info.Name == name {
			return b.builder(), nil
		}
	}
	return nil, fmt.Errorf("unknown scene: %s", name)
}
