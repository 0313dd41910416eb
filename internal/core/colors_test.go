package core

import "testing"

func TestColorFor(t *testing.T) {
	cats := []Category{
		{ID: "1", Name: "Mercado", Color: "#ff0000"},
		{ID: "2", Name: "Mercado", Color: "#00ff00"}, // duplicate name, first wins
		{ID: "3", Name: "Salário", Color: "#10b981"},
	}

	if got := ColorFor("Mercado", cats); got != "#ff0000" {
		t.Errorf("ColorFor(Mercado) = %q, want #ff0000", got)
	}
	if got := ColorFor("Salário", cats); got != "#10b981" {
		t.Errorf("ColorFor(Salário) = %q, want #10b981", got)
	}
	if got := ColorFor("Inexistente", cats); got != DefaultCategoryColor {
		t.Errorf("ColorFor(Inexistente) = %q, want fallback %q", got, DefaultCategoryColor)
	}
	// case-sensitive match
	if got := ColorFor("mercado", cats); got != DefaultCategoryColor {
		t.Errorf("ColorFor(mercado) = %q, want fallback (match is case-sensitive)", got)
	}
	if got := ColorFor(SentinelCategory, nil); got != DefaultCategoryColor {
		t.Errorf("ColorFor(sentinel, nil) = %q, want fallback", got)
	}
}

func TestPaletteColor(t *testing.T) {
	if PaletteColor(0) != CategoryPalette[0] {
		t.Error("PaletteColor(0) should be first palette entry")
	}
	if PaletteColor(len(CategoryPalette)) != CategoryPalette[0] {
		t.Error("PaletteColor should cycle")
	}
	if PaletteColor(-1) != CategoryPalette[1] {
		t.Error("PaletteColor should tolerate negative indexes")
	}
}
