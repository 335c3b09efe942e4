package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/typy/debugs"
	"github.com/reusee/typy/parsers"
)

type Module struct {
	dscope.Module
	Parsers parsers.Module
	Debugs  debugs.Module
}
