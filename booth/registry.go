package booth

import (
	"image"
	"image/color"
	"sync"
)

// option is one declared configuration entry
type option struct {
	value       interface{}
	def         interface{}
	description string
	hints       []interface{}
}

// Registry is an in-memory option registry implementing the plugin's Config
// contract. Options are declared with defaults during Configure and may be
// overridden before startup.
type Registry struct {
	mutex    sync.RWMutex
	sections map[string]map[string]*option
}

// NewRegistry creates an empty option registry
func NewRegistry() *Registry {
	return &Registry{
		sections: make(map[string]map[string]*option),
	}
}

// AddOption declares an option with its default value
func (r *Registry) AddOption(section, name string, def interface{}, description string, hints ...interface{}) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	opts, ok := r.sections[section]
	if !ok {
		opts = make(map[string]*option)
		r.sections[section] = opts
	}
	opts[name] = &option{
		value:       def,
		def:         def,
		description: description,
		hints:       hints,
	}
}

// Set overrides an option's value, declaring it on the fly when unknown
func (r *Registry) Set(section, name string, value interface{}) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	opts, ok := r.sections[section]
	if !ok {
		opts = make(map[string]*option)
		r.sections[section] = opts
	}
	if opt, ok := opts[name]; ok {
		opt.value = value
		return
	}
	opts[name] = &option{value: value, def: value}
}

// lookup returns the stored value for an option, nil when undeclared
func (r *Registry) lookup(section, name string) interface{} {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if opts, ok := r.sections[section]; ok {
		if opt, ok := opts[name]; ok {
			return opt.value
		}
	}
	return nil
}

// GetString reads a string option, empty when absent
func (r *Registry) GetString(section, name string) string {
	if v, ok := r.lookup(section, name).(string); ok {
		return v
	}
	return ""
}

// GetBool reads a boolean option, false when absent
func (r *Registry) GetBool(section, name string) bool {
	if v, ok := r.lookup(section, name).(bool); ok {
		return v
	}
	return false
}

// GetColor reads a color option, transparent when absent
func (r *Registry) GetColor(section, name string) color.RGBA {
	if v, ok := r.lookup(section, name).(color.RGBA); ok {
		return v
	}
	return color.RGBA{}
}

// GetPoint reads a coordinate-pair option, the origin when absent
func (r *Registry) GetPoint(section, name string) image.Point {
	if v, ok := r.lookup(section, name).(image.Point); ok {
		return v
	}
	return image.Point{}
}
