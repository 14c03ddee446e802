//go:build !linux

package osabs

func lockMemory() error {
	return ErrNoPrivilege
}

func unlockMemory() error {
	return nil
}
