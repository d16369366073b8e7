package memgraph

import (
	"hearth-mirror/core/graph"
)

// Image is an in-memory graph.Image.
type Image struct {
	Classes  map[string]any `yaml:"classes" json:"classes"`
	Services map[string]any `yaml:"services" json:"services"`
	Caches   map[string]any `yaml:"caches" json:"caches"`

	// Fail, when set, fails every root lookup. It simulates a detached process.
	Fail error `yaml:"-" json:"-"`
}

// NewImage returns an empty image ready to be populated.
func NewImage() *Image {
	return &Image{
		Classes:  map[string]any{},
		Services: map[string]any{},
		Caches:   map[string]any{},
	}
}

// Class implements graph.Image.
func (img *Image) Class(name string) (graph.Node, error) {
	return img.lookup(img.Classes, name)
}

// Service implements graph.Image.
func (img *Image) Service(name string) (graph.Node, error) {
	return img.lookup(img.Services, name)
}

// CacheService implements graph.Image.
func (img *Image) CacheService(name string) (graph.Node, error) {
	return img.lookup(img.Caches, name)
}

func (img *Image) lookup(roots map[string]any, name string) (graph.Node, error) {
	if img.Fail != nil {
		return nil, img.Fail
	}
	return resolve(roots[name])
}
