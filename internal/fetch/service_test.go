package fetch

import (
	"testing"
	"time"
)

func TestNewService(t *testing.T) {
	tests := []struct {
		name             string
		expectedQuality  string
		expectedTimeout  time.Duration
		expectedEnumerte time.Duration
	}{
		{
			name:             "should create service with defaults",
			expectedQuality:  DefaultAudioQuality,
			expectedTimeout:  DefaultFetchTimeout,
			expectedEnumerte: DefaultEnumerateTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewService("/tmp/staging")

			if service == nil {
				t.Fatal("service should not be nil")
			}

			if service.stagingDir != "/tmp/staging" {
				t.Errorf("expected stagingDir '/tmp/staging', got '%s'", service.stagingDir)
			}

			if service.quality != tt.expectedQuality {
				t.Errorf("expected quality %s, got %s", tt.expectedQuality, service.quality)
			}

			if service.fetchTimeout != tt.expectedTimeout {
				t.Errorf("expected fetch timeout %v, got %v", tt.expectedTimeout, service.fetchTimeout)
			}

			if service.enumerateTimeout != tt.expectedEnumerte {
				t.Errorf("expected enumerate timeout %v, got %v", tt.expectedEnumerte, service.enumerateTimeout)
			}
		})
	}
}

func TestSetAudioQuality(t *testing.T) {
	service := NewService("/tmp/staging")

	service.SetAudioQuality("128K")
	if service.quality != "128K" {
		t.Errorf("expected quality 128K, got %s", service.quality)
	}

	// Empty quality keeps the previous value
	service.SetAudioQuality("")
	if service.quality != "128K" {
		t.Errorf("expected quality 128K after empty set, got %s", service.quality)
	}
}

func TestSetFetchTimeout(t *testing.T) {
	service := NewService("/tmp/staging")

	service.SetFetchTimeout(30 * time.Second)
	if service.fetchTimeout != 30*time.Second {
		t.Errorf("expected timeout 30s, got %v", service.fetchTimeout)
	}

	// Non-positive timeout keeps the previous value
	service.SetFetchTimeout(0)
	if service.fetchTimeout != 30*time.Second {
		t.Errorf("expected timeout 30s after zero set, got %v", service.fetchTimeout)
	}
}
