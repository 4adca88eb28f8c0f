package core

import (
	"log"
)

// HapticService provides access to haptic feedback devices features.
type HapticService interface {
	UpdateAndroidViewRef(uintptr)
	Buzz()
}

// Buzzer is the platform vibration device, normally a *haptic.Buzzer.
type Buzzer interface {
	SetView(uintptr)
	Buzz()
}

type hapticService struct {
	Buzzer
}

var _ HapticService = &hapticService{}

// NewHapticService wraps b. A nil Buzzer yields a service that does
// nothing.
func NewHapticService(b Buzzer) HapticService {
	if b == nil {
		return noopHaptics{}
	}
	return &hapticService{
		Buzzer: b,
	}
}

func (h *hapticService) UpdateAndroidViewRef(view uintptr) {
	h.Buzzer.SetView(view)
}

// Buzz vibrates once. Buzzers that panic (no vibration motor, no view
// reference yet) are logged and otherwise ignored.
func (h *hapticService) Buzz() {
	defer func() {
		if err := recover(); err != nil {
			log.Printf("Recovered from buzz panic: %v", err)
		}
	}()
	h.Buzzer.Buzz()
}

type noopHaptics struct{}

func (noopHaptics) UpdateAndroidViewRef(uintptr) {}
func (noopHaptics) Buzz() {}
