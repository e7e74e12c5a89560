package cli

import (
	"github.com/pkg/errors"

	"github.com/mailund/stralg-go/pkg/search"
)

func algorithmByName(name string) (search.Algorithm, error) {
	switch name {
	case "naive":
		return search.Naive, nil
	case "border":
		return search.BorderSearch, nil
	case "kmp":
		return search.KMP, nil
	case "bmh":
		return search.BMH, nil
	default:
		return nil, errors.Errorf("unknown algorithm %q (want naive, border, kmp or bmh)", name)
	}
}
