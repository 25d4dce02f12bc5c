// Package termcore implements the core of a network-attached terminal
// emulator: a fixed-capacity virtual screen (package grid) driven by a
// byte-level ANSI/VT escape interpreter (package ansi), configured by
// a persisted settings bundle (package config). It is designed to run
// on a small embedded target — the active grid never exceeds 2000
// cells — behind a transport, serializer, and persistent storage that
// live outside this module.
//
// # Quick start
//
//	term := termcore.New(
//	    termcore.WithConfig(config.Defaults()),
//	    termcore.WithEmit(func(b []byte) { ptyIn.Write(b) }),
//	    termcore.WithNotify(func(topic string) { redraw(topic) }),
//	)
//	term.Feed(ptyOutput)
//
// # Architecture
//
//   - [Terminal]: owns one Grid, one ANSI Parser, and the persisted/
//     scratch configuration pair; the single entry point a host wires
//     up once (see SPEC_FULL.md §2, "Terminal facade").
//   - [grid.Grid]: the cell array, cursor, saved-cursor slots, tab
//     stops, scroll region and mode flags.
//   - [ansi.Parser]: the VT500-style state machine that turns an
//     arbitrary byte stream into Grid mutations.
//   - [config.Bundle]: the 200-byte persisted settings record and its
//     codec.
//
// # Feeding input
//
// [Terminal.Feed] accepts any byte slice, including the empty one, and
// is safe to call repeatedly as bytes trickle in from the network —
// an escape sequence split across two Feed calls resumes exactly
// where the parser left off. The core performs no I/O and blocks on
// nothing; DSR/DA replies are handed to the EmitFunc supplied via
// [WithEmit], which must not block either.
//
// # Concurrency
//
// Terminal is not safe for concurrent use. Spec §5 describes a
// single-threaded cooperative host: Feed must never run concurrently
// with a serialization read, and there are no internal locks enforcing
// that — the caller owns sequencing. This is a deliberate divergence
// from the teacher package's sync.RWMutex-guarded Terminal; see
// DESIGN.md.
//
// # Serialization
//
// [Terminal.SerializeScreen] and [Terminal.SerializeLabels] are the
// two read-only hooks a wire-format serializer builds on; both emit
// NUL-free output via [Encode2B]. SerializeScreen resumes across
// calls via a [ScreenCursor] when the output buffer is smaller than
// the remaining grid.
//
// # Configuration
//
// [Terminal.ApplySettings] and [Terminal.RestoreDefaults] implement
// spec §4.3's terminal_apply_settings/terminal_restore_defaults.
// Loading and persisting the 200-byte record itself — the actual
// flash/disk write — is a host responsibility; package config only
// supplies the codec ([config.Encode], [config.Decode]) and a
// human-readable TOML export ([config.DumpTOML], [config.LoadTOML])
// for inspecting a bundle by hand.
package termcore
