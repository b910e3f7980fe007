package e2e

import (
	"strings"
	"testing"
)

func Test_Render_Default(t *testing.T) {
	r := NewRunner(t)

	stdout, stderr, code := r.Run("render")

	if code != 0 {
		t.Fatalf("render exited with %d\nstderr:\n%s", code, stderr)
	}

	for _, want := range []string{"folio", "About", "Experience", "Contact"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("render output missing %q\nOutput:\n%s", want, stdout)
		}
	}
}

func Test_Render_SpanishFlag(t *testing.T) {
	r := NewRunner(t)

	stdout, stderr, code := r.Run("render", "--lang", "es")

	if code != 0 {
		t.Fatalf("render exited with %d\nstderr:\n%s", code, stderr)
	}

	if !strings.Contains(stdout, "Habilidades") {
		t.Errorf("render output not localized\nOutput:\n%s", stdout)
	}
}

func Test_Render_UnsupportedLanguage(t *testing.T) {
	r := NewRunner(t)

	_, _, code := r.Run("render", "--lang", "fr")

	if code == 0 {
		t.Error("expected non-zero exit for unsupported language")
	}
}

func Test_Render_LocaleOverride(t *testing.T) {
	r := NewRunner(t)

	r.WriteFile("locales/en.json", `{"nav.about": "Who I Am"}`)
	r.WriteConfig("locales: locales\n")

	stdout, stderr, code := r.Run("render")

	if code != 0 {
		t.Fatalf("render exited with %d\nstderr:\n%s", code, stderr)
	}

	if !strings.Contains(stdout, "Who I Am") {
		t.Errorf("locale override not applied\nOutput:\n%s", stdout)
	}
}

func Test_Version(t *testing.T) {
	r := NewRunner(t)

	stdout, _, code := r.Run("version")

	if code != 0 {
		t.Fatalf("version exited with %d", code)
	}

	if !strings.Contains(stdout, "folio v") {
		t.Errorf("unexpected version output: %q", stdout)
	}
}

func Test_NoUI_PipesPlainOutput(t *testing.T) {
	r := NewRunner(t)

	stdout, stderr, code := r.Run("--no-ui")

	if code != 0 {
		t.Fatalf("--no-ui exited with %d\nstderr:\n%s", code, stderr)
	}

	if !strings.Contains(stdout, "About") {
		t.Errorf("plain output missing sections\nOutput:\n%s", stdout)
	}
}
