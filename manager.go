// Package winhotkeys registers system-wide Windows hotkeys and dispatches
// them to callbacks, without requiring the application to own a window.
//
// A Manager binds (key, modifiers) combinations through RegisterHotKey and
// blocks on the thread's message queue for WM_HOTKEY. Registration and
// dispatch are bound to a single OS thread by Windows message-queue
// semantics; callers driving PollEvent or EventLoop from a goroutine should
// lock it with runtime.LockOSThread and register from that same goroutine.
package winhotkeys

import (
	"sort"

	"github.com/rs/zerolog"
)

// HotkeyID identifies a registered hotkey. It is returned by Register and
// accepted by Unregister. IDs are never reused by the Manager that issued
// them, even after unregistration.
type HotkeyID int32

// registration holds the callback for one bound hotkey plus the extra keys
// that must also be held down when the event is dispatched.
type registration[T any] struct {
	callback  func() T
	extraKeys []VKey
}

// Manager owns a set of hotkey registrations and dispatches their events.
// It is not safe for concurrent use; one goroutine should own a Manager
// for registration and dispatch alike.
type Manager[T any] struct {
	sys      system
	log      zerolog.Logger
	nextID   int32
	handlers map[HotkeyID]*registration[T]
}

type options struct {
	idOffset int32
	logger   zerolog.Logger
	sys      system
}

// Option configures a Manager at construction time.
type Option func(*options)

// WithIDOffset starts the identifier counter at offset instead of 0. Two
// Managers in one process must partition the id space this way or their
// registrations will collide inside Windows; the package does not verify
// that the ranges are disjoint.
func WithIDOffset(offset int32) Option {
	return func(o *options) { o.idOffset = offset }
}

// WithLogger attaches a logger for debug-level dispatch tracing. The
// default is zerolog.Nop.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) { o.logger = log }
}

// withSystem swaps the OS boundary, for tests.
func withSystem(s system) Option {
	return func(o *options) { o.sys = s }
}

// New creates a Manager whose callbacks produce T.
func New[T any](opts ...Option) *Manager[T] {
	o := options{
		logger: zerolog.Nop(),
		sys:    newSystem(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Manager[T]{
		sys:      o.sys,
		log:      o.logger,
		nextID:   o.idOffset,
		handlers: make(map[HotkeyID]*registration[T]),
	}
}

// Register binds key+mods as a global hotkey and stores callback for it.
// Equivalent to RegisterExtraKeys with no extra keys.
func (m *Manager[T]) Register(key VKey, mods []ModKey, callback func() T) (HotkeyID, error) {
	return m.RegisterExtraKeys(key, mods, nil, callback)
}

// RegisterExtraKeys binds key+mods as a global hotkey and stores callback
// for it, gated on extraKeys: every listed key must also be held down at
// dispatch time or the event is discarded. The extra keys are not part of
// the Windows-level binding.
//
// ModNoRepeat is always OR'd into the modifier mask so a held combination
// fires once rather than on every keyboard repeat tick.
//
// The returned identifier is consumed even when registration fails;
// identifiers are never reused either way.
func (m *Manager[T]) RegisterExtraKeys(key VKey, mods []ModKey, extraKeys []VKey, callback func() T) (HotkeyID, error) {
	id := HotkeyID(m.nextID)
	m.nextID++

	if !m.sys.registerHotkey(int32(id), CombineMods(mods)|uint32(ModNoRepeat), uint32(key)) {
		return 0, &RegistrationError{Key: key, Modifiers: mods}
	}

	// Table entry only exists once the Windows binding is live.
	m.handlers[id] = &registration[T]{
		callback:  callback,
		extraKeys: append([]VKey(nil), extraKeys...),
	}

	m.log.Debug().
		Int32("id", int32(id)).
		Str("combo", comboString(mods, key)).
		Int("extra_keys", len(extraKeys)).
		Msg("Registered hotkey")

	return id, nil
}

// Unregister releases the binding for id. On failure the registration stays
// in the table, keeping the Manager's view consistent with what Windows
// actually holds.
func (m *Manager[T]) Unregister(id HotkeyID) error {
	if !m.sys.unregisterHotkey(int32(id)) {
		return &UnregistrationError{ID: id}
	}

	delete(m.handlers, id)
	m.log.Debug().Int32("id", int32(id)).Msg("Unregistered hotkey")
	return nil
}

// UnregisterAll releases every live registration, lowest identifier first.
// The first failure aborts the walk and is returned; registrations not yet
// visited stay bound.
func (m *Manager[T]) UnregisterAll() error {
	ids := make([]HotkeyID, 0, len(m.handlers))
	for id := range m.handlers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		if err := m.Unregister(id); err != nil {
			return err
		}
	}
	return nil
}

// PollEvent blocks until the next hotkey event, runs its callback and
// returns the result. ok is false when no callback ran: the message queue
// shut down, the message was not a hotkey event, the identifier is no
// longer registered, or an extra key was up when the event arrived. Those
// are normal non-events, not errors.
func (m *Manager[T]) PollEvent() (result T, ok bool) {
	var zero T

	msg, ok := m.sys.nextMessage()
	if !ok {
		return zero, false
	}
	if msg.class != wmHotkey {
		return zero, false
	}

	id := HotkeyID(msg.id)
	reg, found := m.handlers[id]
	if !found {
		// An unregister can race a message already in flight.
		m.log.Debug().Int32("id", msg.id).Msg("Dropping event for unknown hotkey id")
		return zero, false
	}

	// Extra keys are checked against live state at dispatch time, not at
	// the time the physical event was posted.
	for _, vk := range reg.extraKeys {
		if !m.sys.keyState(uint32(vk)) {
			m.log.Debug().
				Int32("id", msg.id).
				Str("key", vk.String()).
				Msg("Dropping event, extra key not held")
			return zero, false
		}
	}

	return reg.callback(), true
}

// EventLoop calls PollEvent forever, discarding results. For callers that
// only care about callback side effects. It never returns.
func (m *Manager[T]) EventLoop() {
	for {
		m.PollEvent()
	}
}
