package config

import "testing"

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "valid custom values",
			mutate: func(c *Config) { c.Server.Port = 9090; c.Store.WatchDebounce = "250ms" },
		},
		{
			name:    "bad debounce",
			mutate:  func(c *Config) { c.Store.WatchDebounce = "soon" },
			wantErr: true,
		},
		{
			name:    "negative port",
			mutate:  func(c *Config) { c.Server.Port = -1 },
			wantErr: true,
		},
		{
			name:    "negative rate",
			mutate:  func(c *Config) { c.Server.RequestsPerSecond = -5 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
