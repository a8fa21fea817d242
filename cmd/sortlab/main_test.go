package main

import (
	"testing"

	"github.com/spf13/cobra"

	"github.com/avelis/sortlab/internal/config"
)

func TestPresetDelayNeedsDelayFlag(t *testing.T) {
	defer func() { preset = ""; delayMs = config.DefaultDelayMs }()

	// run and compare carry no --delay flag; a preset must not touch the
	// delay through them
	cmd := &cobra.Command{Use: "run"}
	addGenFlags(cmd)
	preset = "small"
	delayMs = 999

	cfg, err := resolveConfig(cmd, "bubble")
	if err != nil {
		t.Fatalf("resolveConfig: %v", err)
	}
	if cfg.Size != 15 {
		t.Errorf("expected preset size 15, got %d", cfg.Size)
	}
	if delayMs != 999 {
		t.Errorf("preset changed delay on a command without --delay: %d", delayMs)
	}
}

func TestPresetDelayAppliesToLive(t *testing.T) {
	defer func() { preset = ""; delayMs = config.DefaultDelayMs }()

	cmd := &cobra.Command{Use: "live"}
	addGenFlags(cmd)
	cmd.Flags().IntVar(&delayMs, "delay", config.DefaultDelayMs, "milliseconds per step")
	preset = "small"

	if _, err := resolveConfig(cmd, "bubble"); err != nil {
		t.Fatalf("resolveConfig: %v", err)
	}
	if delayMs != 150 {
		t.Errorf("expected preset delay 150, got %d", delayMs)
	}
}

func TestExplicitDelayBeatsPreset(t *testing.T) {
	defer func() { preset = ""; delayMs = config.DefaultDelayMs }()

	cmd := &cobra.Command{Use: "live"}
	addGenFlags(cmd)
	cmd.Flags().IntVar(&delayMs, "delay", config.DefaultDelayMs, "milliseconds per step")
	if err := cmd.Flags().Set("delay", "25"); err != nil {
		t.Fatalf("set delay: %v", err)
	}
	preset = "small"

	if _, err := resolveConfig(cmd, "bubble"); err != nil {
		t.Fatalf("resolveConfig: %v", err)
	}
	if delayMs != 25 {
		t.Errorf("expected explicit delay 25, got %d", delayMs)
	}
}
