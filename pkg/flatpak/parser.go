package flatpak

import (
	"bufio"
	"strings"

	"github.com/pikaos/birdnest/pkg/core"
)

// ParseColumns parses tab-separated flatpak column output. The first
// column is the application ID, the second the version, and a third —
// when requested — the description. Lines that do not fit are skipped.
// When upgradable is set the version column is the candidate version.
func ParseColumns(out string, upgradable bool) []core.PackageRecord {
	var records []core.PackageRecord
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		cols := strings.Split(line, "\t")
		id := strings.TrimSpace(cols[0])
		if id == "" || id == "Application ID" {
			continue
		}

		rec := core.PackageRecord{Name: id}
		if len(cols) > 1 {
			rec.Version = strings.TrimSpace(cols[1])
		}
		if len(cols) > 2 {
			rec.Description = strings.TrimSpace(cols[2])
		}
		if upgradable {
			rec.Upgradable = true
			rec.NewVersion = rec.Version
			rec.Version = ""
		}
		records = append(records, rec)
	}
	return records
}
