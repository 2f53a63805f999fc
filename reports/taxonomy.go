package reports

import "caces/models"

// ResolveBlocTaxonomy chains a bloc ID up to its theme and referential using
// the pre-fetched collections. Returns nil when the bloc is absent or its
// theme lookup misses; callers skip nil rows instead of aborting a report.
func ResolveBlocTaxonomy(blocID uint, blocs []models.Bloc, themes []models.Theme) *BlocTaxonomy {
	var bloc *models.Bloc
	for i := range blocs {
		if blocs[i].ID == blocID {
			bloc = &blocs[i]
			break
		}
	}
	if bloc == nil {
		return nil
	}

	for i := range themes {
		if themes[i].ID == bloc.ThemeID {
			return &BlocTaxonomy{
				ThemeID:       themes[i].ID,
				ThemeCode:     themes[i].CodeTheme,
				ThemeName:     themes[i].NomComplet,
				ReferentielID: themes[i].ReferentielID,
			}
		}
	}
	return nil
}

// themeNameForBloc is the degraded variant used when grouping questions by
// theme: a dangling reference yields the placeholder label instead of
// dropping the question from the report.
func themeNameForBloc(blocID uint, blocs []models.Bloc, themes []models.Theme) string {
	tax := ResolveBlocTaxonomy(blocID, blocs, themes)
	if tax == nil || tax.ThemeName == "" {
		return UnspecifiedTheme
	}
	return tax.ThemeName
}

// findReferentiel returns the referential with the given ID, or nil.
func findReferentiel(id uint, referentiels []models.Referentiel) *models.Referentiel {
	for i := range referentiels {
		if referentiels[i].ID == id {
			return &referentiels[i]
		}
	}
	return nil
}
