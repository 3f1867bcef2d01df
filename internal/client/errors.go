package client

import "errors"

var ErrAlreadyRunning = errors.New("another memclip instance owns the clipboard")
