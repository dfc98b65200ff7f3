package recycling

import (
	"fmt"
	"strings"

	"reco/internal/pkg/errs"
)

// Material is a waste stream a partner accepts.
type Material int

const (
	MaterialUnknown Material = iota
	MaterialElectronics
	MaterialBatteries
	MaterialMetals
)

var materialNames = map[Material]string{
	MaterialElectronics: "electronics",
	MaterialBatteries:   "batteries",
	MaterialMetals:      "metals",
}

func ParseMaterial(s string) (Material, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for m, name := range materialNames {
		if name == needle {
			return m, nil
		}
	}
	return MaterialUnknown, errs.NewValueIsInvalidErrorWithCause("material", fmt.Errorf("%q is not an accepted material", s))
}

// ParseMaterials parses names, dropping duplicates while keeping order.
func ParseMaterials(names []string) ([]Material, error) {
	out := make([]Material, 0, len(names))
	seen := make(map[Material]struct{}, len(names))
	for _, n := range names {
		m, err := ParseMaterial(n)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out, nil
}

func (m Material) String() string {
	if name, ok := materialNames[m]; ok {
		return name
	}
	return "unknown"
}

func (m Material) Validate() error {
	if _, ok := materialNames[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("material", fmt.Errorf("%d is not a valid material", m))
	}
	return nil
}

// MaterialNames renders materials for persistence.
func MaterialNames(ms []Material) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.String()
	}
	return out
}
