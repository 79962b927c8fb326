package main

import (
	"github.com/ltungv/lox/jlox/internal/configs"
	"github.com/ltungv/lox/jlox/internal/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
