package types

import (
	"github.com/lingproj/metatype/meta"
)

// resolveCtor returns the constructor of t whose parameters are closest to the
// given argument types. A constructor is a candidate when it declares as many
// parameters as there are arguments and every argument has a distance to its
// parameter. The candidate with the smallest total distance wins and ties go to
// the constructor that was defined first
func resolveCtor(c meta.Catalog, t meta.Type, argTypes []meta.Type) (meta.Constructor, bool) {
	var best meta.Constructor
	bestDist := -1
	for _, ct := range c.Constructors(t) {
		ps := ct.Parameters()
		if len(ps) != len(argTypes) {
			continue
		}
		total := 0
		viable := true
		for i, p := range ps {
			d, ok := c.Distance(p, argTypes[i])
			if !ok {
				viable = false
				break
			}
			total += d
		}
		if viable && (bestDist < 0 || total < bestDist) {
			best = ct
			bestDist = total
		}
	}
	return best, best != nil
}
