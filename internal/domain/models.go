package domain

// ModuleRef identifies a module type by plugin slug and model slug
type ModuleRef struct {
	Plugin string `json:"plugin"`
	Model  string `json:"model"`
}

// String returns the ref as "plugin/model"
func (r ModuleRef) String() string {
	return r.Plugin + "/" + r.Model
}

// ModuleDescriptor is one instantiable module type contributed by a plugin
type ModuleDescriptor struct {
	Plugin       string // owning plugin slug
	Slug         string // module slug, unique within the plugin
	Name         string // display name
	Manufacturer string
	Tags         []TagID
}

// Ref returns the identity pair of the descriptor
func (m *ModuleDescriptor) Ref() ModuleRef {
	return ModuleRef{Plugin: m.Plugin, Model: m.Slug}
}

// HasTag reports whether the module carries tag
func (m *ModuleDescriptor) HasTag(tag TagID) bool {
	for _, t := range m.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Plugin is a named collection of modules, in manifest order
type Plugin struct {
	Slug    string
	Name    string
	Version string
	Models  []*ModuleDescriptor
}
