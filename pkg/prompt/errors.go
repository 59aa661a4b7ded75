package prompt

import "errors"

// ErrAborted is returned when the user interrupts a prompt.
var ErrAborted = errors.New("prompt: aborted")

// ErrTooManyAttempts is returned when an answer is still invalid after the
// attempts allowed by WithMaxAttempts.
var ErrTooManyAttempts = errors.New("prompt: too many invalid attempts")
