package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName checks that a style or template name maps to exactly one
// file directly inside its asset directory. The loader appends the extension,
// so names carry no dots or separators.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
