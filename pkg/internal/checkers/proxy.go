package checkers

import (
	"errors"

	"github.com/grovesocial/grove/pkg/internal/localize"
	"github.com/grovesocial/grove/pkg/internal/proxy"
)

// CheckURLCanBeProxied applies the media-proxy whitelist policy to a
// free-form input string.
func (k *Checkers) CheckURLCanBeProxied(raw string) error {
	if err := k.proxy.CheckURLCanBeProxied(raw); err != nil {
		if errors.Is(err, proxy.ErrNoValidURL) {
			return newPermissionDenied(localize.MsgNoValidURL)
		}
		return newPermissionDenied(localize.MsgURLNotProxiable)
	}
	return nil
}
