package systems

import "testing"

// initTestPersistence points gdata at a temp dir and restores the package
// state afterwards.
func initTestPersistence(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	prevManager, prevInit := gdataManager, gdataInitialized
	t.Cleanup(func() {
		gdataManager, gdataInitialized = prevManager, prevInit
	})
	gdataManager, gdataInitialized = nil, false

	if err := InitPersistence(); err != nil {
		t.Skipf("persistence unavailable: %v", err)
	}
}

func TestSaveCurrentSettingsRoundTrip(t *testing.T) {
	initTestPersistence(t)

	prevVolume := globalSFXVolume
	defer func() { globalSFXVolume = prevVolume }()

	globalSFXVolume = 0.3
	SaveCurrentSettings()

	saved, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if saved == nil {
		t.Fatal("no settings on disk after SaveCurrentSettings")
	}
	if saved.SFXVolume != 0.3 {
		t.Fatalf("saved volume = %v, want 0.3", saved.SFXVolume)
	}
	if saved.Muted {
		t.Fatal("non-zero volume saved as muted")
	}

	globalSFXVolume = 0
	SaveCurrentSettings()

	saved, err = LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if saved == nil || !saved.Muted {
		t.Fatal("zero volume not saved as muted")
	}
}

func TestLoadSettingsWithNothingSaved(t *testing.T) {
	initTestPersistence(t)

	saved, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if saved != nil {
		t.Fatalf("expected nil settings on a fresh store, got %+v", saved)
	}
}
