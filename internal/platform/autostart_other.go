//go:build !linux && !darwin && !windows

package platform

func (item *LoginItem) install() error {
	return ErrAutostartUnsupported
}

func (item *LoginItem) remove() error {
	return nil
}

func (item *LoginItem) installed() (bool, error) {
	return false, nil
}
