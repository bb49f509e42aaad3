package flatpak

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pikaos/birdnest/pkg/core"
)

func TestParseColumnsList(t *testing.T) {
	sample := "org.mozilla.firefox\t121.0\norg.gnome.Calculator\t45.0.2\n"

	got := ParseColumns(sample, false)
	assert.Equal(t, []core.PackageRecord{
		{Name: "org.mozilla.firefox", Version: "121.0"},
		{Name: "org.gnome.Calculator", Version: "45.0.2"},
	}, got)
}

func TestParseColumnsUpgradable(t *testing.T) {
	got := ParseColumns("org.mozilla.firefox\t122.0\n", true)

	assert.Equal(t, []core.PackageRecord{
		{Name: "org.mozilla.firefox", NewVersion: "122.0", Upgradable: true},
	}, got)
}

func TestParseColumnsSearch(t *testing.T) {
	sample := "org.mozilla.firefox\t121.0\tFast, private browser\n"

	got := ParseColumns(sample, false)
	assert.Equal(t, []core.PackageRecord{
		{Name: "org.mozilla.firefox", Version: "121.0", Description: "Fast, private browser"},
	}, got)
}

func TestParseColumnsSkipsHeaderAndBlank(t *testing.T) {
	sample := "Application ID\tVersion\n\norg.mozilla.firefox\t121.0\n"

	got := ParseColumns(sample, false)
	assert.Len(t, got, 1)
}
