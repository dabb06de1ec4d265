package config

import (
	"errors"
	"testing"
)

func TestOutlineCountFitsPopulation(t *testing.T) {
	if OutlineCount <= 0 || OutlineCount >= ParticleCount {
		t.Fatalf("OutlineCount %d must be within (0, %d)", OutlineCount, ParticleCount)
	}
}

func TestDefaultValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if Default().Snapshot() {
		t.Error("default options should not request a snapshot")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{"zero width", func(o *Options) { o.Width = 0 }},
		{"negative height", func(o *Options) { o.Height = -4 }},
		{"single section", func(o *Options) { o.Sections = 1 }},
		{"progress above one", func(o *Options) { o.SnapshotProgress = 1.5 }},
		{"negative progress", func(o *Options) { o.SnapshotProgress = -0.1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Default()
			tt.mutate(&o)
			err := o.Validate()
			if !errors.Is(err, ErrInvalidOptions) {
				t.Errorf("Validate() = %v, want ErrInvalidOptions", err)
			}
		})
	}
}
