// Released under an MIT license. See LICENSE.

//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris
// +build aix darwin dragonfly freebsd linux netbsd openbsd solaris

// Package process puts the interpreter in the foreground process group
// so that an interactive session owns its terminal.
package process

import (
	"os"

	"golang.org/x/sys/unix"
)

//nolint:gochecknoglobals
var (
	id       = unix.Getpid()
	group, _ = unix.Getpgid(id)
	terminal = int(os.Stdin.Fd())
)

// BecomeForegroundGroup performs the Unix incantations necessary to put
// the current process in the foreground.
func BecomeForegroundGroup() (err error) {
	for group != ForegroundGroup() {
		err = unix.Kill(-group, unix.SIGTTIN)
		if err != nil {
			return
		}

		group, err = unix.Getpgid(id)
		if err != nil {
			return
		}
	}

	if id != group {
		err = unix.Setpgid(id, id)
		if err != nil {
			return
		}

		group = id
	}

	SetForegroundGroup(group)

	return
}

// ForegroundGroup returns the current foreground group ID.
func ForegroundGroup() int {
	group, err := unix.IoctlGetInt(terminal, unix.TIOCGPGRP)
	if err != nil {
		return 0
	}

	return group
}

// RestoreForegroundGroup places the group for this process back in the
// foreground.
func RestoreForegroundGroup() {
	if group == ForegroundGroup() {
		return
	}

	SetForegroundGroup(group)
}

// SetForegroundGroup sets the terminal's foreground group to g.
func SetForegroundGroup(g int) {
	err := unix.IoctlSetPointerInt(terminal, unix.TIOCSPGRP, g)
	if err != nil {
		println(err.Error())
	}
}
