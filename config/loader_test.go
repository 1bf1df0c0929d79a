package config

import (
	"path/filepath"
	"testing"
)

const sampleConfig = `
sheets:
  slime_idle:
    cols: 6
    rows: 1
    speed: 10
timelines:
  - tag: intro
    in: SlideIn
    out: FadeOut
    in_delay: 0.5
    duration: 1.5
    start: -400
    end: 300
    y: 120
    texture: warning_banner
  - tag: callout
    in: TextPopUp
    duration: 1
    text: "BOSS"
    font_size: 24
    inactive: true
`

func TestParseOverlay(t *testing.T) {
	fc, err := Parse([]byte(sampleConfig))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	sheet, ok := fc.Sheets["slime_idle"]
	if !ok {
		t.Fatal("sheet slime_idle missing")
	}
	if sheet.Cols != 6 || sheet.Rows != 1 || sheet.Speed != 10 {
		t.Fatalf("sheet = %+v, want {6 1 10}", sheet)
	}

	if len(fc.Timelines) != 2 {
		t.Fatalf("got %d timelines, want 2", len(fc.Timelines))
	}
	intro := fc.Timelines[0]
	if intro.Tag != "intro" || intro.In != "SlideIn" || intro.Out != "FadeOut" {
		t.Fatalf("intro = %+v", intro)
	}
	if intro.InDelay != 0.5 || intro.Duration != 1.5 || intro.Start != -400 || intro.End != 300 || intro.Y != 120 {
		t.Fatalf("intro numbers = %+v", intro)
	}
	callout := fc.Timelines[1]
	if callout.Text != "BOSS" || !callout.Inactive {
		t.Fatalf("callout = %+v", callout)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := Parse([]byte("{not yaml")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestApplyMergesSheets(t *testing.T) {
	fc, err := Parse([]byte(sampleConfig))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if _, ok := Sheets["slime_idle"]; ok {
		t.Fatal("test sheet present before Apply")
	}
	fc.Apply()
	defer delete(Sheets, "slime_idle")

	sheet, ok := Sheets["slime_idle"]
	if !ok {
		t.Fatal("Apply did not merge the overlay sheet")
	}
	if sheet.Speed != 10 {
		t.Fatalf("merged sheet = %+v", sheet)
	}

	// Built-in entries survive the merge.
	if _, ok := Sheets["player_idle"]; !ok {
		t.Fatal("built-in sheet lost during merge")
	}
}

func TestLoadMissingFileIsEmptyConfig(t *testing.T) {
	fc, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if len(fc.Sheets) != 0 || len(fc.Timelines) != 0 {
		t.Fatalf("missing file produced non-empty config: %+v", fc)
	}
}
