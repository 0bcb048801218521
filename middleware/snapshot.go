package middleware

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/oldbig/redux-lite/errors"
	"github.com/oldbig/redux-lite/logging"
	"github.com/oldbig/redux-lite/store"
)

// Snapshot returns middleware that persists the committed state to a
// YAML file after every dispatch. Persistence failures are logged, never
// surfaced through dispatch: losing a snapshot must not break the
// store.
func Snapshot(path string) store.Middleware {
	logger := logging.NewLogger("snapshot")
	return func(api store.API) func(next store.DispatchFunc) store.DispatchFunc {
		return func(next store.DispatchFunc) store.DispatchFunc {
			return func(action store.Action) store.Action {
				out := next(action)
				if err := writeSnapshot(path, api.GetState()); err != nil {
					logger.WithError(err).Warn("snapshot write failed")
				}
				return out
			}
		}
	}
}

// writeSnapshot saves the state to the snapshot file.
func writeSnapshot(path string, state store.State) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.SnapshotFailed(path, err)
	}

	data, err := yaml.Marshal(state)
	if err != nil {
		return errors.SnapshotFailed(path, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.SnapshotFailed(path, err)
	}
	return nil
}

// LoadSnapshot reads a snapshot file back as an override, suitable for
// seeding a binding with the persisted state. A missing file yields an
// empty override.
func LoadSnapshot(path string) (store.Override, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return store.Override{}, nil
		}
		return nil, errors.SnapshotFailed(path, err)
	}

	var override store.Override
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, errors.SnapshotFailed(path, err)
	}
	if override == nil {
		override = store.Override{}
	}
	return override, nil
}
