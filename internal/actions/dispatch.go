package actions

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Handler performs one action.
type Handler func(ctx context.Context, s *Session, req Request) error

var handlers = map[Action]Handler{
	ListServers:  listServers,
	ShowServer:   showServer,
	DeleteServer: deleteServer,

	ListZones:  listZones,
	ShowZone:   showZone,
	AddZone:    addZone,
	EditZone:   editZone,
	DeleteZone: deleteZone,

	ShowRRsets:        showRRsets,
	EditRRset:         editRRset,
	DeleteRRset:       deleteRRset,
	EditRRsetComments: editRRsetComments,

	ListConfig:   listConfig,
	Notify:       notifyZone,
	AXFRRetrieve: axfrRetrieve,
	Export:       exportZone,
	Rectify:      rectifyZone,

	ListMetadata:   listMetadata,
	ShowMetadata:   showMetadata,
	AddMetadata:    addMetadata,
	EditMetadata:   editMetadata,
	DeleteMetadata: deleteMetadata,

	ListCryptokeys:  listCryptokeys,
	ShowCryptokey:   showCryptokey,
	AddCryptokey:    addCryptokey,
	EditCryptokey:   editCryptokey,
	DeleteCryptokey: deleteCryptokey,

	FlushCache: flushCache,
	Search:     search,
	Statistics: statistics,

	StoreKey: storeKey,
	ClearKey: clearKey,

	InitConfig:     initConfig,
	ValidateConfig: validateConfig,
	ShowSettings:   showSettings,
}

// Missing returns the actions that have no handler. It is empty in a
// correct build.
func Missing() []Action {
	var missing []Action
	for _, a := range All() {
		if _, ok := handlers[a]; !ok {
			missing = append(missing, a)
		}
	}
	return missing
}

// CheckHandlers fails when any action lacks a handler.
func CheckHandlers() error {
	if missing := Missing(); len(missing) > 0 {
		return fmt.Errorf("actions without handlers: %v", missing)
	}
	return nil
}

// Dispatch runs the handler for req.Action after checking the requirements
// of its scope.
func Dispatch(ctx context.Context, s *Session, req Request) error {
	handler, ok := handlers[req.Action]
	if !ok {
		return fmt.Errorf("action %s has no handler", req.Action)
	}

	switch req.Action.Scope() {
	case ScopeZone:
		if req.Zone == "" {
			return usagef("%s: zone is required", req.Action)
		}
		fallthrough
	case ScopeServer:
		if req.Server == "" {
			return usagef("%s: server id is required (--server or default-server in the configuration file)", req.Action)
		}
		fallthrough
	case ScopeAPI:
		if s.API == nil {
			return fmt.Errorf("%s: no API connection", req.Action)
		}
	case ScopeLocal:
	}

	log.Debugf("dispatching %s (server=%q zone=%q)", req.Action, req.Server, req.Zone)
	return handler(ctx, s, req)
}
