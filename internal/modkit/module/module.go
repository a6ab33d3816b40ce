// Package module defines the minimal contract for a modkit module plus the
// port lookup helpers main uses to cross wire modules
package module

import (
	phttp "jbatoolkit/internal/platform/net/http"
)

// Module is the sibling of modkit.Module kept here so a module that also
// exports its own ports type does not import modkit twice
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
