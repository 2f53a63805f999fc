package reports

import (
	"testing"

	"caces/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveBlocTaxonomy(t *testing.T) {
	themes := []models.Theme{mkTheme(2, "T2", 1)}
	blocs := []models.Bloc{mkBloc(5, "B5", 2)}

	tax := ResolveBlocTaxonomy(5, blocs, themes)

	require.NotNil(t, tax)
	assert.Equal(t, uint(2), tax.ThemeID)
	assert.Equal(t, "T2", tax.ThemeCode)
	assert.Equal(t, "Thème T2", tax.ThemeName)
	assert.Equal(t, uint(1), tax.ReferentielID)
}

func TestResolveBlocTaxonomyMisses(t *testing.T) {
	themes := []models.Theme{mkTheme(2, "T2", 1)}
	blocs := []models.Bloc{mkBloc(5, "B5", 2), mkBloc(6, "B6", 999)}

	assert.Nil(t, ResolveBlocTaxonomy(42, blocs, themes), "unknown bloc")
	assert.Nil(t, ResolveBlocTaxonomy(6, blocs, themes), "theme lookup miss")
	assert.Nil(t, ResolveBlocTaxonomy(5, nil, themes), "empty bloc snapshot")
}

func TestThemeNameForBlocPlaceholder(t *testing.T) {
	themes := []models.Theme{mkTheme(2, "T2", 1)}
	blocs := []models.Bloc{mkBloc(5, "B5", 2), mkBloc(6, "B6", 999)}

	assert.Equal(t, "Thème T2", themeNameForBloc(5, blocs, themes))
	assert.Equal(t, UnspecifiedTheme, themeNameForBloc(6, blocs, themes))
	assert.Equal(t, UnspecifiedTheme, themeNameForBloc(42, blocs, themes))
}
