package language

import "testing"

func TestDetect_HintShortCircuits(t *testing.T) {
	d := Shared()

	if got := d.Detect("texto claramente en otro idioma", "EN"); got != "en" {
		t.Errorf("Detect() = %q, want en from hint", got)
	}
}

func TestDetect_English(t *testing.T) {
	d := Shared()

	text := "Solar panels convert sunlight into electricity and are commonly installed on residential rooftops across the country."
	if got := d.Detect(text, ""); got != "en" {
		t.Errorf("Detect() = %q, want en", got)
	}
}

func TestDetect_Spanish(t *testing.T) {
	d := Shared()

	text := "Los paneles solares convierten la luz del sol en electricidad y se instalan habitualmente en los tejados de las viviendas."
	if got := d.Detect(text, ""); got != "es" {
		t.Errorf("Detect() = %q, want es", got)
	}
}

func TestDetect_EmptyDefaultsToEnglish(t *testing.T) {
	d := Shared()

	if got := d.Detect("", ""); got != "en" {
		t.Errorf("Detect() = %q, want en", got)
	}
	if got := d.Detect("   \n\t  ", ""); got != "en" {
		t.Errorf("Detect() = %q, want en for blank text", got)
	}
}
