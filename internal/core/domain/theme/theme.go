/*
Package theme defines the color profiles a console can switch between.
*/
package theme

// Profile is a named set of four colors. Values are either CSS color names
// or #rrggbb hex strings.
type Profile struct {
	Name     string `yaml:"name"`
	OutputBg string `yaml:"output_bg"`
	OutputFg string `yaml:"output_fg"`
	InputBg  string `yaml:"input_bg"`
	InputFg  string `yaml:"input_fg"`
}

/*
Catalog is the fixed set of profiles known at startup.
Lookups for unknown names fall back to the default profile.
*/
type Catalog struct {
	profiles    map[string]Profile
	order       []string
	defaultName string
}

// NewCatalog builds a catalog from profiles. defaultName must name one of them.
func NewCatalog(profiles []Profile, defaultName string) Catalog {
	c := Catalog{
		profiles:    make(map[string]Profile, len(profiles)),
		defaultName: defaultName,
	}
	for _, p := range profiles {
		if _, exists := c.profiles[p.Name]; !exists {
			c.order = append(c.order, p.Name)
		}
		c.profiles[p.Name] = p
	}
	return c
}

// Lookup returns the profile called name, or the default profile and false.
func (c Catalog) Lookup(name string) (Profile, bool) {
	if p, ok := c.profiles[name]; ok {
		return p, true
	}
	return c.profiles[c.defaultName], false
}

// DefaultName returns the name of the fallback profile.
func (c Catalog) DefaultName() string {
	return c.defaultName
}

// Profiles returns all profiles in their declared order.
func (c Catalog) Profiles() []Profile {
	out := make([]Profile, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.profiles[name])
	}
	return out
}
