package dto

import (
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// merchandiseGIDRe matches the Storefront GID form for variants and products,
// e.g. gid://shopify/ProductVariant/123456.
var merchandiseGIDRe = regexp.MustCompile(`^gid://shopify/[A-Za-z]+/\d+$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("merchandise_gid", validateMerchandiseGID)
	}
}

// validateMerchandiseGID accepts Storefront GIDs and bare numeric IDs.
func validateMerchandiseGID(fl validator.FieldLevel) bool {
	raw := strings.TrimSpace(fl.Field().String())
	if raw == "" {
		return false
	}
	if merchandiseGIDRe.MatchString(raw) {
		return true
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
