package pipeline

import (
	"sort"

	"github.com/sfxlab/sfxgraph/internal/registry"
)

// ParamInfo describes one declared parameter of a registered transform.
type ParamInfo struct {
	Name        string
	Description string
	Default     string
}

// TransformInfo is the introspection record spec.md §6's list_transforms
// interface returns for one registered transform.
type TransformInfo struct {
	Name        string
	Description string
	Params      []ParamInfo
}

// ListTransforms enumerates every registered transform with its description
// and parameter schema, in stable name order.
func ListTransforms(reg *registry.Registry) []TransformInfo {
	names := reg.Enumerate()
	infos := make([]TransformInfo, 0, len(names))
	for _, name := range names {
		d, err := reg.Lookup(name)
		if err != nil {
			continue
		}
		info := TransformInfo{Name: d.Name, Description: d.Description}
		for paramName, spec := range d.Params {
			info.Params = append(info.Params, ParamInfo{
				Name:        paramName,
				Description: spec.Description,
				Default:     spec.Default,
			})
		}
		sort.Slice(info.Params, func(i, j int) bool { return info.Params[i].Name < info.Params[j].Name })
		infos = append(infos, info)
	}
	return infos
}
