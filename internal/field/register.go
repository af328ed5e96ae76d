package field

import "procnoise/pkg/noise"

func init() {
	for _, kind := range []noise.Kind{
		noise.KindPerlin,
		noise.KindSimplex,
		noise.KindValue,
		noise.KindWorley,
	} {
		kind := kind
		Register(kind.String(), func(cfg map[string]string) (*Field, error) {
			c := FromMap(cfg)
			c.Kind = kind
			return New(kind.String(), c)
		})
	}
}
