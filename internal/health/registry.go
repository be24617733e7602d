package health

import "github.com/rileyhilliard/panicribbon/internal/config"

// ServiceSpec is one configured service. It is never mutated after startup.
type ServiceSpec struct {
	Name           string
	HealthCheckURL string
	RestartCommand string
}

// Registry is the ordered, read-only list of services.
// Index i in the registry is index i in the Store and the i-th segment from
// the top of the ribbon. It needs no locking.
type Registry struct {
	services []ServiceSpec
}

// NewRegistry creates a registry holding a copy of specs.
func NewRegistry(specs []ServiceSpec) *Registry {
	services := make([]ServiceSpec, len(specs))
	copy(services, specs)
	return &Registry{services: services}
}

// RegistryFromConfig builds a registry from resolved configuration, keeping file order.
func RegistryFromConfig(cfg *config.Config) *Registry {
	specs := make([]ServiceSpec, 0, len(cfg.Services))
	for _, svc := range cfg.Services {
		specs = append(specs, ServiceSpec{
			Name:           svc.Name,
			HealthCheckURL: svc.HealthCheckURL,
			RestartCommand: svc.RestartScriptPath,
		})
	}
	return NewRegistry(specs)
}

// Len returns the number of services.
func (r *Registry) Len() int {
	return len(r.services)
}

// At returns the service at index i.
func (r *Registry) At(i int) (ServiceSpec, bool) {
	if i < 0 || i >= len(r.services) {
		return ServiceSpec{}, false
	}
	return r.services[i], true
}

// All returns a copy of every service in order.
func (r *Registry) All() []ServiceSpec {
	out := make([]ServiceSpec, len(r.services))
	copy(out, r.services)
	return out
}

// IndexOf returns the index of the first service with the given name.
func (r *Registry) IndexOf(name string) (int, bool) {
	for i, svc := range r.services {
		if svc.Name == name {
			return i, true
		}
	}
	return -1, false
}
