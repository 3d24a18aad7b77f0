package dispatcher

import "fmt"

// DispatchError is returned for any failure of the outbound request:
// transport, authentication or a block by the remote side.
type DispatchError struct {
	Model string
	Err   error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("dispatch to %s failed: %v", e.Model, e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}
