package context

import (
	"github.com/labstack/echo/v4"

	"storefront/internal/domain/entity"
)

// GetPrincipal extracts the resolved principal from echo.Context.
// A nil result means the request is anonymous.
func GetPrincipal(c echo.Context) *entity.Principal {
	if principal, ok := c.Get(string(KeyPrincipal)).(*entity.Principal); ok {
		return principal
	}

	return nil
}

// SetPrincipal stores the resolved principal on echo.Context.
func SetPrincipal(c echo.Context, principal *entity.Principal) {
	c.Set(string(KeyPrincipal), principal)
}
