package organization_test

import (
	"testing"

	"github.com/jhoicas/Axioma-api/internal/domain/organization"
	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "panaderia-nunez", organization.Slugify("Panadería Núñez"))
	assert.Equal(t, "acme-s-a-de-c-v", organization.Slugify("  ACME, S.A. de C.V. "))
}

func TestValidSlug(t *testing.T) {
	assert.True(t, organization.ValidSlug("mi-empresa"))
	assert.False(t, organization.ValidSlug("ab"), "mínimo 3 caracteres")
	assert.False(t, organization.ValidSlug("Mi_Empresa"))
}
