package fractal

// Classic landmarks in the set, handy as starting points for exploration.
// Each is a viewport centered on the feature at a zoom where it fills the
// frame on a roughly square canvas.
var Regions = map[string]Viewport{
	"home":            DefaultViewport(),
	"seahorse-valley": {CenterX: -0.75, CenterY: 0.1, Zoom: 20},
	"elephant-valley": {CenterX: 0.275, CenterY: 0.006, Zoom: 40},
	"spiral-minibrot": {CenterX: -0.74275, CenterY: 0.13175, Zoom: 1300},
	"triple-spiral":   {CenterX: -0.7465, CenterY: 0.0965, Zoom: 650},
	"dragon-valley":   {CenterX: -0.7375, CenterY: 0.1825, Zoom: 400},
}

// RegionNames lists the landmarks in a stable order for menus and key
// bindings.
var RegionNames = []string{
	"home",
	"seahorse-valley",
	"elephant-valley",
	"spiral-minibrot",
	"triple-spiral",
	"dragon-valley",
}

// Region looks up a named landmark, falling back to the default view for
// unknown names.
func Region(name string) Viewport {
	if v, ok := Regions[name]; ok {
		return v
	}
	return DefaultViewport()
}
