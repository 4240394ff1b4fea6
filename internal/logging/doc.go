// Package logging implements the daemon's diagnostic output: named,
// level-filtered loggers writing to the systemd journal or to a
// caller-supplied stream, with an atomic hex/ascii dump mode for binary
// payloads.
//
// # Levels
//
// A [Level] carries a message category (control, error, raw, private,
// audit) and a cumulative detail tier 0-3 in one mask. A logger emits a
// message iff every bit of the requested level is present in its
// enabled mask. The prefix shows both as a two-character group:
//
//	[~1] [ike] initiating exchange
//	[!0] [net] send failed
//
// # Usage
//
// Standalone, with an explicit sink:
//
//	logger := logging.New("ike", logging.Full, false, os.Stderr)
//	logger.Log(logging.Control|logging.Level1, "initiating exchange %d", id)
//	logger.LogBytes(logging.Raw|logging.Level3, "received packet", pkt)
//
// Or through the process-wide registry, which routes to journald when
// available and feeds the history buffer and taps:
//
//	logging.Initialize(logging.Config{
//		Default: "all1",
//		Loggers: map[string]string{"net": "raw3,all2"},
//	})
//	logging.Get("net").Log(logging.Error|logging.Level1, "no route")
//
// # Hex dumps
//
// LogBytes renders one header line plus one body line per 16 bytes:
//
//	[#3] [net] received packet (20 bytes)
//	[=>] [    0 ] 45 00 00 3C 1C 46 40 00 40 06 B1 E6 C0 A8 00 68 E**<*F@*@******h
//	[=>] [   16 ] C0 A8 00 01             ****
//
// The burst is serialized per sink, so dumps from concurrent
// goroutines never interleave. Single-line messages are not covered by
// that lock and may appear between two dumps' bursts, but never inside
// a line.
//
// # Journal output
//
// Journal records carry SYSLOG_IDENTIFIER=charon at info priority:
//
//	journalctl -t charon -f
package logging
