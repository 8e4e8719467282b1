package practices

import (
	"github.com/louisbranch/man3/internal/services/content/catalog"
	apperrors "github.com/louisbranch/man3/internal/services/web/platform/errors"
)

type service struct {
	source CatalogSource
}

func newService(source CatalogSource) service {
	return service{source: source}
}

func (s service) current() *catalog.Catalog {
	if s.source != nil {
		if c := s.source.Current(); c != nil {
			return c
		}
	}
	return catalog.Default()
}

func (s service) list() []catalog.BasePractice {
	return s.current().Practices()
}

func (s service) practice(id string) (catalog.BasePractice, error) {
	practice, ok := s.current().Practice(id)
	if !ok {
		return catalog.BasePractice{}, apperrors.E(apperrors.KindNotFound, "practice not found")
	}
	return practice, nil
}
