package services

import "encoding/json"

// DataService handles whole-store operations: exporting everything the app
// has persisted and wiping it.
type DataService struct {
	store KeyValueStore
}

func NewDataService(store KeyValueStore) *DataService {
	return &DataService{store: store}
}

// Export returns every persisted payload keyed by its store key. Keys that
// were never written are omitted.
func (service *DataService) Export() (map[string]json.RawMessage, error) {
	export := make(map[string]json.RawMessage)
	for _, key := range PersistedKeys() {
		raw, found, err := service.store.Get(key)
		if err != nil {
			return nil, err
		}
		if !found {
			continue
		}
		if !json.Valid([]byte(raw)) {
			continue
		}
		export[key] = json.RawMessage(raw)
	}
	return export, nil
}

// ClearAll erases every persisted value. There is no undo.
func (service *DataService) ClearAll() error {
	return service.store.Clear()
}
