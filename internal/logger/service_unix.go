//go:build !windows

package logger

import "syscall"

func isGroupLeader() bool {
	return syscall.Getpgrp() == syscall.Getpid()
}
