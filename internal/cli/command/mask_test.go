package command

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/yndnr/cpucaps-go/pkg/cpucaps"
)

func TestResolution(t *testing.T) {
	tests := []struct {
		forced, runtime bool
		want            string
	}{
		{false, true, "static+runtime"},
		{false, false, "static"},
		{true, true, "runtime"},
		{true, false, "dropped"},
	}

	for _, tt := range tests {
		if got := resolution(tt.forced, tt.runtime); got != tt.want {
			t.Errorf("resolution(%v, %v) = %q, want %q", tt.forced, tt.runtime, got, tt.want)
		}
	}
}

func TestNewMaskView(t *testing.T) {
	v := newMaskView(cpucaps.ForceDynamicDetection, cpucaps.RuntimeChecked)

	if v.Mask != "0xfffffffe" {
		t.Errorf("Mask = %q, want 0xfffffffe", v.Mask)
	}
	if len(v.Capabilities) != len(cpucaps.All()) {
		t.Fatalf("got %d entries, want %d", len(v.Capabilities), len(cpucaps.All()))
	}

	for _, e := range v.Capabilities {
		want := "dropped"
		if e.Capability == cpucaps.NEON {
			want = "static+runtime"
		}
		if e.Resolution != want {
			t.Errorf("%s resolution = %q, want %q", e.Capability, e.Resolution, want)
		}
	}
}

func TestMask_JSON(t *testing.T) {
	out, err := runApp(t, "-o", "json", "mask")
	if err != nil {
		t.Fatalf("mask: %v", err)
	}

	var v struct {
		Mask         string `json:"mask"`
		Capabilities []struct {
			Capability string `json:"capability"`
			Forced     bool   `json:"forced_dynamic"`
		} `json:"capabilities"`
	}
	if err := json.Unmarshal([]byte(out), &v); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if v.Mask != "0xfffffffe" {
		t.Errorf("mask = %q", v.Mask)
	}
	if len(v.Capabilities) == 0 || v.Capabilities[0].Capability != "neon" || v.Capabilities[0].Forced {
		t.Errorf("first entry = %+v, want unforced neon", v.Capabilities)
	}
}

func TestMask_Table(t *testing.T) {
	out, err := runApp(t, "mask")
	if err != nil {
		t.Fatalf("mask: %v", err)
	}
	for _, want := range []string{"CAPABILITY", "RESOLUTION", "sha512", "dropped"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}
