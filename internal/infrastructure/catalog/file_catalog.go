package catalog

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/seesamjagan/bakery-storefront-api/internal/domain"
)

// Load reads the static product catalog from a JSON file. Unlike the cart
// slot, a missing or malformed catalog is fatal: without products there is no
// storefront.
func Load(path string, logger *slog.Logger) (domain.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read catalog file %q", path)
	}

	var products domain.Catalog
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, errors.Wrapf(err, "parse catalog file %q", path)
	}

	logger.Info("Catalog loaded",
		slog.String("path", path),
		slog.Int("products", len(products)),
	)
	return products, nil
}
