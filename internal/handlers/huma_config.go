package handlers

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/operacoes-server/internal/apierror"
)

const (
	APITitle   = "Operacoes API"
	APIVersion = "1.0.0"
)

// NewHumaConfig returns the huma config shared by the server and handler
// tests. Response bodies carry no $schema link so the JSON contract is
// exactly the documented fields.
func NewHumaConfig() huma.Config {
	apierror.Install()

	config := huma.DefaultConfig(APITitle, APIVersion)
	config.CreateHooks = nil
	return config
}
