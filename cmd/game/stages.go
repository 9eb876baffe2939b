package main

import (
	"fmt"
	"slices"

	"github.com/younwookim/abode/internal/infrastructure/config"
)

// stageChain checks that start is a shipped stage and that every next
// link after it names one too. It returns the stages in play order.
func stageChain(loader *config.Loader, start string) ([]string, error) {
	names, err := loader.ListStages()
	if err != nil {
		return nil, err
	}

	var chain []string
	for name := start; name != ""; {
		if !slices.Contains(names, name) {
			if len(chain) == 0 {
				return nil, fmt.Errorf("unknown stage %q (have %v)", name, names)
			}
			return nil, fmt.Errorf("stage %s links to unknown stage %q", chain[len(chain)-1], name)
		}
		if slices.Contains(chain, name) {
			return nil, fmt.Errorf("stage chain loops back to %s", name)
		}
		chain = append(chain, name)

		cfg, err := loader.LoadStage(name)
		if err != nil {
			return nil, err
		}
		name = cfg.Next
	}
	return chain, nil
}
