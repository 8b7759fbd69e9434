package scene

import "fmt"

// SceneInfo describes a built-in scene for listings and UIs
type SceneInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// builtin pairs a scene's metadata with its builder
type builtin struct {
	info  SceneInfo
	build func() *Scene
}

// Order here is the order scenes appear in listings
var builtins = []builtin{
	{
		info: SceneInfo{
			ID:          "sphere",
			Name:        "Shaded Sphere",
			Description: "Phong-shaded purple sphere lit from the upper left",
		},
		build: NewShadedSphereScene,
	},
	{
		info: SceneInfo{
			ID:          "silhouette",
			Name:        "Silhouette",
			Description: "Flat red sphere outline against a black background",
		},
		build: NewSilhouetteScene,
	},
	{
		info: SceneInfo{
			ID:          "squashed",
			Name:        "Squashed Sphere",
			Description: "Shaded sphere flattened along the y axis",
		},
		build: NewSquashedSphereScene,
	},
	{
		info: SceneInfo{
			ID:          "sheared",
			Name:        "Sheared Sphere",
			Description: "Shaded sphere sheared sideways",
		},
		build: NewShearedSphereScene,
	},
}

// List returns the built-in scenes in display order
func List() []SceneInfo {
	infos := make([]SceneInfo, 0, len(builtins))
	for _, b := range builtins {
		infos = append(infos, b.info)
	}
	return infos
}

// New builds the scene with the given ID. Unknown IDs are a caller
// mistake and come back as an error naming the valid choices.
func New(id string) (*Scene, error) {
	for _, b := range builtins {
		if b.info.ID == id {
			return b.build(), nil
		}
	}
	return nil, fmt.Errorf("unknown scene %q (valid scenes: %s)", id, validIDs())
}

func validIDs() string {
	ids := ""
	for i, b := range builtins {
		if i > 0 {
			ids += ", "
		}
		ids += b.info.ID
	}
	return ids
}
