package syspkg

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pikaos/birdnest/pkg/core"
)

const aptUpgradableSample = `Listing... Done
vim/stable 2:9.0.1378-2 amd64 [upgradable from: 2:9.0.1000-1]
htop/stable 3.2.2-2 amd64 [upgradable from: 3.2.1-1]

WARNING: apt does not have a stable CLI interface. Use with caution in scripts.
`

const pikmanUpgradableSample = `Listing... Done
vim/stable 2:9.0.1378-2 amd64 [upgradable from: 2:9.0.1000-1]
[arch] htop/extra 3.2.2-2 x86_64 [upgradable from: 3.2.1-1]
`

func TestParseAptListUpgradable(t *testing.T) {
	got := ParseAptList(aptUpgradableSample)

	assert.Equal(t, []core.PackageRecord{
		{Name: "vim", Version: "2:9.0.1000-1", NewVersion: "2:9.0.1378-2", Upgradable: true},
		{Name: "htop", Version: "3.2.1-1", NewVersion: "3.2.2-2", Upgradable: true},
	}, got)
}

// Equivalent input in the two backend formats must normalize to
// identical records.
func TestPikmanAndAptFormatsNormalizeIdentically(t *testing.T) {
	apt := ParseAptList("vim/stable 2:9.0.1378-2 amd64 [upgradable from: 2:9.0.1000-1]\n")
	pikman := ParsePikmanList("[arch] vim/stable 2:9.0.1378-2 amd64 [upgradable from: 2:9.0.1000-1]\n")

	assert.Equal(t, apt, pikman)
}

func TestParsePikmanList(t *testing.T) {
	got := ParsePikmanList(pikmanUpgradableSample)

	assert.Equal(t, []core.PackageRecord{
		{Name: "vim", Version: "2:9.0.1000-1", NewVersion: "2:9.0.1378-2", Upgradable: true},
		{Name: "htop", Version: "3.2.1-1", NewVersion: "3.2.2-2", Upgradable: true},
	}, got)
}

func TestParseAptListInstalled(t *testing.T) {
	got := ParseAptList("vim/stable,now 2:9.0.1378-2 amd64 [installed]\n")

	assert.Equal(t, []core.PackageRecord{
		{Name: "vim", Version: "2:9.0.1378-2"},
	}, got)
}

func TestParseAptListSkipsGarbage(t *testing.T) {
	got := ParseAptList("Listing... Done\nnot-a-package-line\nN: some notice\n\n%%%\n")
	assert.Empty(t, got)
}

func TestParseDpkgList(t *testing.T) {
	sample := `Desired=Unknown/Install/Remove/Purge/Hold
| Status=Not/Inst/Conf-files/Unpacked/halF-conf/Half-inst/trig-aWait/Trig-pend
||/ Name           Version      Architecture Description
+++-==============-============-============-=================================
ii  vim            2:9.0.1378-2 amd64        Vi IMproved - enhanced vi editor
rc  old-package    1.0-1        amd64        removed, config files remain
ii  htop           3.2.2-2      amd64        interactive processes viewer
`
	got := ParseDpkgList(sample)

	assert.Equal(t, []core.PackageRecord{
		{Name: "vim", Version: "2:9.0.1378-2", Description: "Vi IMproved - enhanced vi editor"},
		{Name: "htop", Version: "3.2.2-2", Description: "interactive processes viewer"},
	}, got)
}

func TestParseSearch(t *testing.T) {
	sample := `Sorting... Done
Full Text Search... Done
vim/stable 2:9.0.1378-2 amd64
  Vi IMproved - enhanced vi editor

neovim/stable 0.7.2-7 amd64
  heavily refactored vim fork
`
	got := ParseSearch(sample)

	assert.Equal(t, []core.PackageRecord{
		{Name: "vim", Version: "2:9.0.1378-2", Description: "Vi IMproved - enhanced vi editor"},
		{Name: "neovim", Version: "0.7.2-7", Description: "heavily refactored vim fork"},
	}, got)
}
