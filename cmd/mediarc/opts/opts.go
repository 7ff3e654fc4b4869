package opts

import (
	"github.com/walteh/mediarc/pkg/config"
	"github.com/walteh/mediarc/pkg/probe"
	"github.com/walteh/mediarc/pkg/rename"
	"github.com/walteh/mediarc/pkg/scan"
	"github.com/walteh/mediarc/pkg/status"
)

// RootOpts contains shared dependencies used by all commands
type RootOpts struct {
	Version    string
	Config     *config.Config
	Renamer    *rename.Renamer
	Scanner    *scan.Scanner
	Prober     *probe.Prober
	UserLogger *status.UserLogger
}
