package service

import (
	"github.com/MKhiriev/linkdir/internal/adapter"
	"github.com/MKhiriev/linkdir/internal/config"
	"github.com/MKhiriev/linkdir/internal/logger"
	"github.com/MKhiriev/linkdir/internal/store"
	"github.com/MKhiriev/linkdir/internal/validators"
)

type ClientServices struct {
	ForestStorage      ForestStorage
	InterchangeService InterchangeService
	LinkTreeService    LinkTreeService
}

func NewClientServices(storages *store.ClientStorages, clipboard adapter.Clipboard, fs adapter.FileSystem, cfg *config.ClientConfig, logger *logger.Logger) *ClientServices {
	forestStorage := NewForestStorage(storages.KeyValue, cfg.Storage.Key, logger)
	interchange := NewInterchangeService(clipboard, fs, cfg.Export.FileName, logger)

	return &ClientServices{
		ForestStorage:      forestStorage,
		InterchangeService: interchange,
		LinkTreeService:    NewLinkTreeService(forestStorage, interchange, validators.NewItemValidator(), logger),
	}
}
