package termcore

// EmitFunc is the host-supplied reply channel of spec §6 ("Output
// (replies to host)"): DSR/DA/DECRQSS-style responses are handed to
// it as they're generated. The interpreter never blocks on this call;
// a nil EmitFunc discards replies. Grounded on the teacher's
// ResponseProvider (providers.go), narrowed to a single function type
// since this core has exactly one reply channel rather than the
// teacher's pluggable io.Writer.
type EmitFunc func(b []byte)

// NotifyFunc is the change-notification callback of spec §4.3:
// "Notifications are a single callback taking a topic tag." Fired on
// every mutating call; the host is expected to throttle/coalesce
// using the display timeout (spec §4.3, §9 "Notification
// throttling"). A nil NotifyFunc is a no-op.
type NotifyFunc func(topic string)

// BellFunc handles C0 BEL (0x07) outside an OSC string, grounded on
// the teacher's BellProvider. A nil BellFunc is a no-op.
type BellFunc func()

// KeypadModeFunc and CursorKeyModeFunc report DEC private mode
// changes (ESC =/> and CSI ?1h/l) that a host-side keyboard encoder
// needs to know about even though this core does not itself encode
// key presses. Grounded on the teacher's provider-per-concern split
// (providers.go), narrowed to the two DEC modes spec §4.2 names.
type KeypadModeFunc func(applicationMode bool)
type CursorKeyModeFunc func(applicationMode bool)

func noopEmit([]byte)        {}
func noopNotify(string)      {}
func noopBell()              {}
func noopKeypadMode(bool)    {}
func noopCursorKeyMode(bool) {}
