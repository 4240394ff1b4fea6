// Package systemd reports daemon lifecycle state to the service
// manager via sd_notify.
package systemd

import (
	"github.com/coreos/go-systemd/v22/daemon"
)

// NotifyReady tells systemd the daemon finished starting up. Reports
// whether the notification was actually delivered; outside a systemd
// unit there is no notification socket and the call is a no-op.
func NotifyReady() bool {
	sent, err := daemon.SdNotify(false, daemon.SdNotifyReady)
	return err == nil && sent
}

// NotifyStopping tells systemd the daemon began shutting down.
func NotifyStopping() {
	_, _ = daemon.SdNotify(false, daemon.SdNotifyStopping)
}
