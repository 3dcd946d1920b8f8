package render

import (
	"testing"

	"github.com/tessvane/patchboard/pkg/patch"
)

func TestValidateFormat(t *testing.T) {
	for _, f := range []string{FormatSVG, FormatPNG, FormatDOT, FormatGraphvizSVG} {
		if err := ValidateFormat(f); err != nil {
			t.Errorf("ValidateFormat(%s) = %v", f, err)
		}
	}
	if err := ValidateFormat("pdf"); err == nil {
		t.Error("unknown format accepted")
	}
	if err := ValidateFormats([]string{FormatSVG, "bmp"}); err == nil {
		t.Error("format list with an unknown entry accepted")
	}
}

func TestOptionsDefaults(t *testing.T) {
	var o Options
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error: %v", err)
	}

	if o.Theme != patch.DefaultTheme() {
		t.Error("Theme did not default")
	}
	if o.Padding != DefaultPadding {
		t.Errorf("Padding = %v, want %v", o.Padding, DefaultPadding)
	}
	if o.Scale != DefaultScale {
		t.Errorf("Scale = %v, want %v", o.Scale, DefaultScale)
	}
	if o.Logger == nil {
		t.Error("Logger did not default")
	}
}

func TestOptionsKeepsExplicitValues(t *testing.T) {
	th := &patch.Theme{Name: "custom"}
	o := Options{Theme: th, Padding: 4, Scale: 1}
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error: %v", err)
	}

	if o.Theme != th || o.Padding != 4 || o.Scale != 1 {
		t.Errorf("explicit values overwritten: %+v", o)
	}
}

func TestOptionsRejectsNegatives(t *testing.T) {
	o := Options{Padding: -1}
	if err := o.ValidateAndSetDefaults(); err == nil {
		t.Error("negative padding accepted")
	}

	o = Options{Scale: -2}
	if err := o.ValidateAndSetDefaults(); err == nil {
		t.Error("negative scale accepted")
	}
}

func TestOptionsIdempotent(t *testing.T) {
	var o Options
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	th := o.Theme
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if o.Theme != th {
		t.Error("second validation changed the options")
	}
}
