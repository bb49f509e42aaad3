package syspkg

import (
	"bufio"
	"strings"

	"github.com/pikaos/birdnest/pkg/core"
)

const upgradableMarker = "[upgradable from: "

// ParseAptList parses `apt list` output into normalized records. Lines
// look like
//
//	vim/stable 2:9.0.1378-2 amd64 [upgradable from: 2:9.0.1000-1]
//
// Header lines and anything that does not match the layout are skipped,
// never fatal.
func ParseAptList(out string) []core.PackageRecord {
	var records []core.PackageRecord
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		rec, ok := parseAptLine(strings.TrimSpace(sc.Text()))
		if !ok {
			continue
		}
		records = append(records, rec)
	}
	return records
}

// ParsePikmanList parses `pikman list` output. pikman emits the apt
// layout, optionally prefixed with the container the package lives in,
// e.g.
//
//	[arch] vim/extra 9.0.1378-2 x86_64 [upgradable from: 9.0.1000-1]
func ParsePikmanList(out string) []core.PackageRecord {
	var records []core.PackageRecord
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, "[") {
			if end := strings.Index(line, "] "); end >= 0 {
				line = strings.TrimSpace(line[end+2:])
			}
		}
		rec, ok := parseAptLine(line)
		if !ok {
			continue
		}
		records = append(records, rec)
	}
	return records
}

func parseAptLine(line string) (core.PackageRecord, bool) {
	if line == "" ||
		strings.HasPrefix(line, "Listing") ||
		strings.HasPrefix(line, "WARNING") ||
		strings.HasPrefix(line, "N:") {
		return core.PackageRecord{}, false
	}

	fields := strings.Fields(line)
	if len(fields) < 2 {
		return core.PackageRecord{}, false
	}
	name, _, found := strings.Cut(fields[0], "/")
	if !found || name == "" {
		return core.PackageRecord{}, false
	}

	rec := core.PackageRecord{Name: name, Version: fields[1]}
	if i := strings.Index(line, upgradableMarker); i >= 0 {
		current := strings.TrimSuffix(line[i+len(upgradableMarker):], "]")
		rec.Upgradable = true
		rec.NewVersion = fields[1]
		rec.Version = strings.TrimSpace(current)
	}
	return rec, true
}

// ParseDpkgList parses `dpkg -l` output. Only properly installed
// packages (status "ii") are reported.
func ParseDpkgList(out string) []core.PackageRecord {
	var records []core.PackageRecord
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 3 || fields[0] != "ii" {
			continue
		}
		rec := core.PackageRecord{Name: fields[1], Version: fields[2]}
		if len(fields) > 4 {
			rec.Description = strings.Join(fields[4:], " ")
		}
		records = append(records, rec)
	}
	return records
}

// ParseSearch parses `apt search` / `pikman search` output. Result
// entries use the list layout followed by an indented description line:
//
//	vim/stable 2:9.0.1378-2 amd64
//	  Vi IMproved - enhanced vi editor
func ParseSearch(out string) []core.PackageRecord {
	var records []core.PackageRecord
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		raw := sc.Text()
		if strings.HasPrefix(raw, " ") || strings.HasPrefix(raw, "\t") {
			if n := len(records); n > 0 && records[n-1].Description == "" {
				records[n-1].Description = strings.TrimSpace(raw)
			}
			continue
		}
		line := strings.TrimSpace(raw)
		if strings.HasPrefix(line, "Sorting") || strings.HasPrefix(line, "Full Text Search") {
			continue
		}
		rec, ok := parseAptLine(line)
		if !ok {
			continue
		}
		records = append(records, rec)
	}
	return records
}
