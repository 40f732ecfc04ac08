package app

import (
	"github.com/vk/relaycore/internal/native"
	"github.com/vk/relaycore/modules/arrays"
	"github.com/vk/relaycore/modules/http"
	"github.com/vk/relaycore/modules/socketio"
	"github.com/vk/relaycore/modules/system"
)

// coreModules is the definitive list of native modules compiled into the
// binary.
var coreModules = []native.Module{
	&arrays.Module{},
	&system.Module{},
	&http.Module{},
	&socketio.Module{},
}
