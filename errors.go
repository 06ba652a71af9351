package winhotkeys

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is. The concrete *RegistrationError
// and *UnregistrationError values returned by the Manager unwrap to these.
var (
	ErrRegistrationFailed   = errors.New("hotkey registration failed")
	ErrUnregistrationFailed = errors.New("hotkey unregistration failed")
)

// RegistrationError reports that Windows declined to bind a key combination,
// typically because it is already registered system-wide.
type RegistrationError struct {
	Key       VKey
	Modifiers []ModKey
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("register %s: %v", comboString(e.Modifiers, e.Key), ErrRegistrationFailed)
}

func (e *RegistrationError) Unwrap() error { return ErrRegistrationFailed }

// UnregistrationError reports that Windows declined to release a binding,
// typically because the identifier is not currently bound.
type UnregistrationError struct {
	ID HotkeyID
}

func (e *UnregistrationError) Error() string {
	return fmt.Sprintf("unregister hotkey %d: %v", e.ID, ErrUnregistrationFailed)
}

func (e *UnregistrationError) Unwrap() error { return ErrUnregistrationFailed }
