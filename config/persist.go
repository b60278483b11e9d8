package config

// PersistConfig selects the save-game backends. RemoteURL is optional; when
// set, the remote endpoint is preferred and the local file acts as fallback.
type PersistConfig struct {
	RemoteURL string `json:"remote_url"`
	LocalPath string `json:"local_path"`
}

// SetDefaults applies sane defaults.
func (c *PersistConfig) SetDefaults() {
	if c.LocalPath == "" {
		c.LocalPath = "savegame.json"
	}
}
