package install

import (
	"github.com/arthur-debert/dolink/pkg/errors"
	"github.com/arthur-debert/dolink/pkg/types"
	"go.uber.org/multierr"
)

// ValidateSelection returns the names to install and an error combining one
// INVALID_ITEM error per unknown name. Unknown names are left out of the
// returned list; the rest keep their order with duplicates removed. An empty
// selection means every item, sorted by name.
func ValidateSelection(cfg *types.Config, selected []string) ([]string, error) {
	if len(selected) == 0 {
		return cfg.ItemNames(), nil
	}

	var (
		names []string
		errs  error
	)
	seen := make(map[string]bool, len(selected))
	for _, name := range selected {
		if seen[name] {
			continue
		}
		seen[name] = true

		if !cfg.HasItem(name) {
			errs = multierr.Append(errs, errors.Newf(errors.ErrInvalidItem, "invalid item '%s'", name).
				WithDetail("item", name))
			continue
		}
		names = append(names, name)
	}

	return names, errs
}

// InvalidItems lists the item names carried by an error from
// ValidateSelection.
func InvalidItems(err error) []string {
	var names []string
	for _, e := range multierr.Errors(err) {
		if !errors.IsErrorCode(e, errors.ErrInvalidItem) {
			continue
		}
		if name, ok := errors.GetErrorDetails(e)["item"].(string); ok {
			names = append(names, name)
		}
	}
	return names
}
