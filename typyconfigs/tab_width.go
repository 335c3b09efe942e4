package typyconfigs

import (
	"github.com/reusee/typy/cmds"
	"github.com/reusee/typy/configs"
	"github.com/reusee/typy/lexers"
)

type TabWidth int

var tabWidthFlag = cmds.Var[int]("-tab-width", "columns a tab advances indentation to")

func (Module) TabWidth(
	loader configs.Loader,
) TabWidth {
	if *tabWidthFlag > 0 {
		return TabWidth(*tabWidthFlag)
	}
	return TabWidth(configs.First(loader, "tab_width", lexers.DefaultTabWidth))
}
